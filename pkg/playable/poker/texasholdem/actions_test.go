package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familyhub-server/pkg/playable/poker/action"
)

func TestGetAvailableActions(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t)

	s := dealHand(t, e, 3, 0)
	a.Equal([]action.Action{action.Fold, action.Call, action.Raise, action.AllIn}, GetAvailableActions(s))
	a.Equal(20, GetCallAmount(s))
	a.Equal(40, GetMinRaise(s))
	a.Equal(1000, GetMaxRaise(s))

	// the big blind gets the option
	s = act(t, e, s, "p1", action.Call)
	s = act(t, e, s, "p2", action.Call)
	a.Equal(2, s.CurrentPlayerIndex)
	a.Equal([]action.Action{action.Fold, action.Check, action.Raise, action.AllIn}, GetAvailableActions(s))
	a.Equal(0, GetCallAmount(s))
	a.Equal(1000, GetMaxRaise(s))

	// not enough for a full raise
	s = dealHand(t, e, 3, 0, 30, 1000, 1000)
	a.Equal([]action.Action{action.Fold, action.Call, action.AllIn}, GetAvailableActions(s))
	a.Equal(20, GetCallAmount(s))
	a.Equal(30, GetMaxRaise(s))

	// not enough to call
	s = dealHand(t, e, 3, 0, 15, 1000, 1000)
	a.Equal([]action.Action{action.Fold, action.Call, action.AllIn}, GetAvailableActions(s))
	a.Equal(15, GetCallAmount(s))

	s = act(t, e, s, "p1", action.Call)
	a.True(s.Players[0].IsAllIn)
	a.Equal(0, s.Players[0].Chips)
	a.Equal(15, s.ActionHistory[0].Amount)

	// nothing while waiting
	s, err := e.SeatPlayers(testRoster(2))
	require.NoError(t, err)
	a.Nil(GetAvailableActions(s))
	a.Equal(0, GetCallAmount(s))
	a.Equal(0, GetMaxRaise(s))
}

func TestIsGameOver(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t)

	a.False(IsGameOver(e.CreateInitialState()))

	s, err := e.SeatPlayers(testRoster(3))
	require.NoError(t, err)
	a.False(IsGameOver(s))
	_, ok := GetGameWinner(s)
	a.False(ok)

	s.Players[0].Chips = 0
	s.Players[2].Chips = 0
	a.True(IsGameOver(s))
	winner, ok := GetGameWinner(s)
	a.True(ok)
	a.Equal("p2", winner.ID)

	// chips in the pot still belong to somebody
	for _, phase := range []Phase{PhasePreFlop, PhaseFlop, PhaseTurn, PhaseRiver, PhaseShowdown} {
		s.Phase = phase
		a.False(IsGameOver(s), phase.String())
	}

	s.Phase = PhaseHandComplete
	a.True(IsGameOver(s))
}

func TestIsGameOver_afterAllIn(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t)

	// play all-in hands until one player has everything
	s := dealHand(t, e, 2, 0, 100, 100)
	for i := 0; i < 100 && !IsGameOver(s); i++ {
		for s.Phase.IsBettingRound() {
			p, _ := s.CurrentPlayer()
			actions := GetAvailableActions(s)
			if action.Contains(actions, action.AllIn) {
				s = act(t, e, s, p.ID, action.AllIn)
			} else {
				s = act(t, e, s, p.ID, actions[1])
			}
		}

		a.Equal(PhaseHandComplete, s.Phase)
		if !IsGameOver(s) {
			s = e.Dispatch(s, StartNewHand{})
		}
	}

	require.True(t, IsGameOver(s))
	winner, ok := GetGameWinner(s)
	a.True(ok)
	a.Equal(200, winner.Chips)
}
