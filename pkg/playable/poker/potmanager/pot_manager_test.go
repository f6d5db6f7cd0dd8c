package potmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	a := assert.New(t)

	payouts, err := Split(40, []int{2}, 0, 4)
	a.NoError(err)
	a.Equal(map[int]int{2: 40}, payouts)

	payouts, err = Split(40, []int{1, 3}, 0, 4)
	a.NoError(err)
	a.Equal(map[int]int{1: 20, 3: 20}, payouts)
}

func TestSplit_remainder(t *testing.T) {
	a := assert.New(t)

	// seat 3 is left of the dealer (seat 2), so it gets the odd chip
	payouts, err := Split(41, []int{1, 3}, 2, 4)
	a.NoError(err)
	a.Equal(map[int]int{1: 20, 3: 21}, payouts)

	// dealer wins the odd chip only after everybody else
	payouts, err = Split(41, []int{2, 0}, 2, 4)
	a.NoError(err)
	a.Equal(map[int]int{0: 21, 2: 20}, payouts)

	payouts, err = Split(101, []int{0, 1, 2}, 0, 3)
	a.NoError(err)
	a.Equal(map[int]int{1: 34, 2: 34, 0: 33}, payouts)

	total := 0
	for _, amount := range payouts {
		total += amount
	}
	a.Equal(101, total)
}

func TestSplit_errors(t *testing.T) {
	a := assert.New(t)

	_, err := Split(40, nil, 0, 4)
	a.Equal(ErrNoWinners, err)

	_, err = Split(-1, []int{0}, 0, 4)
	a.Equal(ErrNegativePot, err)
}
