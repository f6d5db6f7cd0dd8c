package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"familyhub-server/pkg/playable/poker/action"
)

func TestHistory_Record(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t)
	h := NewHistory()

	s := riverState(t, e, "2c,7d,9h,11s,13c", "14s,14h", "13d,13h", "14c,14d")
	p3 := &s.Players[2]
	s.Pot += p3.Chips
	p3.TotalBet += p3.Chips
	p3.Chips = 0
	p3.IsAllIn = true

	a.False(h.Record(s), "the hand is not over")

	s = act(t, e, s, "p2", action.Check)
	a.True(h.Record(s))
	a.False(h.Record(s), "already recorded")

	a.Len(h.Hands, 1)
	summary := h.Hands[0]
	a.Equal(1, summary.HandNumber)
	a.Equal(1021, summary.PotSize)
	a.Equal("Three of a kind, Kings", summary.WinningHand)
	a.Len(summary.CommunityCards, 5)
	a.Len(summary.Actions, 1)
	a.Len(summary.Showdown, 2)

	stats, ok := h.StatsFor("Player 1")
	a.True(ok)
	a.Equal(PlayerStats{HandsPlayed: 1, TotalBet: 11, FoldCount: 1}, stats)

	stats, _ = h.StatsFor("Player 2")
	a.Equal(PlayerStats{HandsPlayed: 1, HandsWon: 1, TotalBet: 10}, stats)

	stats, _ = h.StatsFor("Player 3")
	a.Equal(PlayerStats{HandsPlayed: 1, TotalBet: 1000, AllInCount: 1, BluffCaught: 1}, stats)

	_, ok = h.StatsFor("Player 4")
	a.False(ok)

	// the summary does not share memory with the state
	s.Winners[0].Amount = 0
	a.Equal(1021, h.Hands[0].Winners[0].Amount)
}

func TestHistory_Record_accumulates(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine(t)
	h := NewHistory()

	s := dealHand(t, e, 3, 0)
	s = act(t, e, s, "p1", action.Fold)
	s = act(t, e, s, "p2", action.Fold)
	a.True(h.Record(s))

	s = e.Dispatch(s, StartNewHand{})
	a.False(h.Record(s))
	s = act(t, e, s, "p2", action.Fold)
	s = act(t, e, s, "p3", action.Fold)
	a.True(h.Record(s))

	a.Len(h.Hands, 2)
	a.Equal(ReasonEveryoneFolded, h.Hands[1].WinningHand)

	stats, _ := h.StatsFor("Player 1")
	a.Equal(2, stats.HandsPlayed)
	a.Equal(1, stats.HandsWon)
	a.Equal(1, stats.FoldCount)
	a.Equal(20, stats.TotalBet)

	stats, _ = h.StatsFor("Player 3")
	a.Equal(2, stats.HandsPlayed)
	a.Equal(1, stats.HandsWon)
	a.Equal(1, stats.FoldCount)
	a.Equal(30, stats.TotalBet)
}

func TestHistory_Record_bounded(t *testing.T) {
	a := assert.New(t)
	h := NewHistory()

	for i := 1; i <= maxHandSummaries+20; i++ {
		a.True(h.Record(GameState{Phase: PhaseHandComplete, HandNumber: i}))
	}

	a.Len(h.Hands, maxHandSummaries)
	a.Equal(21, h.Hands[0].HandNumber)
	a.Equal(maxHandSummaries+20, h.Hands[maxHandSummaries-1].HandNumber)
}
