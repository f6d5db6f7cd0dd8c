package texasholdem

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familyhub-server/internal/rng"
	"familyhub-server/pkg/playable/poker/action"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := NewEngine(logrus.StandardLogger(), rng.Seeded(1), DefaultOptions())
	require.NoError(t, err)
	return e
}

// firstCard always picks the lowest value
type firstCard struct{}

func (firstCard) Intn(int) int {
	return 0
}

func testRoster(n int) []Seat {
	seats := make([]Seat, n)
	for i := range seats {
		seats[i] = Seat{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: fmt.Sprintf("Player %d", i+1),
			Type: Human,
		}
	}

	return seats
}

// dealHand seats n players and deals a hand with the button at seat dealer.
// If chips are provided, they replace the starting stacks.
func dealHand(t *testing.T, e *Engine, n, dealer int, chips ...int) GameState {
	t.Helper()

	s, err := e.SeatPlayers(testRoster(n))
	require.NoError(t, err)

	for i, c := range chips {
		s.Players[i].Chips = c
	}

	// the button moves one seat when the hand starts
	s.DealerIndex = dealer - 1
	s = e.Dispatch(s, StartNewHand{})
	require.Equal(t, dealer, s.DealerIndex)
	return s
}

// act dispatches a player action and fails the test if it was rejected
func act(t *testing.T, e *Engine, s GameState, playerID string, a action.Action, amount ...int) GameState {
	t.Helper()

	pa := PlayerAction{PlayerID: playerID, Action: a}
	if len(amount) == 1 {
		pa.Amount = amount[0]
	}

	next := e.Dispatch(s, pa)
	require.Len(t, next.ActionHistory, len(s.ActionHistory)+1, "%s %s was rejected", playerID, a)
	assert.Equal(t, s.TotalChips(), next.TotalChips(), "chips were created or lost")
	return next
}

func assertRejected(t *testing.T, e *Engine, s GameState, cmd Command) {
	t.Helper()
	assert.Equal(t, s, e.Dispatch(s, cmd))
}
