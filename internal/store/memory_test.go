package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Seed([]Account{{ID: "1234", PIN: "5678", Balance: 1000}}))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AdjustBalance("1234", -100); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	acc, err := s.GetAccount("1234")
	require.NoError(t, err)
	assert.Equal(t, 10, accepted)
	assert.Zero(t, acc.Balance)
}
