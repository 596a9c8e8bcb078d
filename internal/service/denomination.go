package service

import (
	"fmt"
	"slices"

	"github.com/hance08/atm/internal/config"
)

// Denominations is an immutable set of note values, kept largest first.
type Denominations struct {
	values []int64
}

func NewDenominations(values []int64) (Denominations, error) {
	if err := config.ValidateDenominations(values); err != nil {
		return Denominations{}, err
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	return Denominations{values: sorted}, nil
}

// Values returns the set in ascending order.
func (d Denominations) Values() []int64 {
	values := slices.Clone(d.values)
	slices.Reverse(values)
	return values
}

func (d Denominations) Smallest() int64 {
	return d.values[len(d.values)-1]
}

// Dispense is the number of notes of one denomination handed out.
type Dispense struct {
	Denomination int64
	Count        int64
}

// Breakdown lists dispensed notes from the largest denomination down.
type Breakdown []Dispense

func (b Breakdown) Total() int64 {
	var total int64
	for _, d := range b {
		total += d.Denomination * d.Count
	}
	return total
}

func (b Breakdown) Map() map[int64]int64 {
	m := make(map[int64]int64, len(b))
	for _, d := range b {
		m[d.Denomination] = d.Count
	}
	return m
}

// Breakdown splits amount greedily, taking as many of the largest
// denomination as fit before moving to the next one down.
// It fails with ErrNonExhaustible when a remainder is left over.
func (d Denominations) Breakdown(amount int64) (Breakdown, error) {
	var breakdown Breakdown
	remaining := amount

	for _, denom := range d.values {
		if remaining >= denom {
			count := remaining / denom
			breakdown = append(breakdown, Dispense{Denomination: denom, Count: count})
			remaining -= count * denom
		}
	}

	if remaining != 0 {
		return nil, fmt.Errorf("%w: %d left over from %d", ErrNonExhaustible, remaining, amount)
	}
	return breakdown, nil
}
