// Package potmanager settles a single shared pot between tied winners
package potmanager

import (
	"errors"
	"sort"
)

// ErrNoWinners is returned when a pot is split between nobody
var ErrNoWinners = errors.New("cannot pay a pot without winners")

// ErrNegativePot is returned when the pot amount is below zero
var ErrNegativePot = errors.New("pot cannot be negative")

// Split divides the pot evenly (integer division) between the winners' seats.
// Any chips left over are handed out one at a time, starting with the winner
// seated closest to the dealer's left, so the whole pot is always paid out.
func Split(pot int, winnerSeats []int, dealerIndex, tableSize int) (map[int]int, error) {
	if len(winnerSeats) == 0 {
		return nil, ErrNoWinners
	}

	if pot < 0 {
		return nil, ErrNegativePot
	}

	seats := make([]int, len(winnerSeats))
	copy(seats, winnerSeats)
	sort.Sort(sortByDistanceFromDealer{seats: seats, dealer: dealerIndex, size: tableSize})

	share := pot / len(seats)
	remainder := pot % len(seats)

	payouts := make(map[int]int, len(seats))
	for i, seat := range seats {
		amount := share
		if i < remainder {
			amount++
		}

		payouts[seat] += amount
	}

	return payouts, nil
}

// sortByDistanceFromDealer orders seats clockwise starting left of the dealer
type sortByDistanceFromDealer struct {
	seats  []int
	dealer int
	size   int
}

func (s sortByDistanceFromDealer) distance(seat int) int {
	if s.size <= 0 {
		return seat
	}

	d := (seat - s.dealer) % s.size
	if d <= 0 {
		// the dealer acts last
		d += s.size
	}

	return d
}

func (s sortByDistanceFromDealer) Len() int {
	return len(s.seats)
}

func (s sortByDistanceFromDealer) Less(i, j int) bool {
	return s.distance(s.seats[i]) < s.distance(s.seats[j])
}

func (s sortByDistanceFromDealer) Swap(i, j int) {
	s.seats[i], s.seats[j] = s.seats[j], s.seats[i]
}
