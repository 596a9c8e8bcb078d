package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrParse is returned when raw input is not an integer amount.
var ErrParse = errors.New("please enter a valid integer amount")

// ParseAmount parses raw user input as a whole number of currency units.
// Surrounding whitespace and an explicit sign are accepted; fractions are not.
func ParseAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, raw)
	}
	return amount, nil
}

func FormatAmount(symbol string, amount int64) string {
	return fmt.Sprintf("%s%d", symbol, amount)
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
