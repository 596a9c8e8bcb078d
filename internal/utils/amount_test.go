package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	valid := map[string]int64{
		"100":    100,
		" 2300 ": 2300,
		"+500":   500,
		"-100":   -100,
		"0":      0,
	}
	for raw, want := range valid {
		got, err := ParseAmount(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "abc", "1.5", "100abc", "1e3", "99999999999999999999"} {
		_, err := ParseAmount(raw)
		assert.ErrorIs(t, err, ErrParse, raw)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹1500", FormatAmount("₹", 1500))
	assert.Equal(t, "0", FormatAmount("", 0))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Insufficient balance", Capitalize("insufficient balance"))
	assert.Equal(t, "", Capitalize(""))
}
