package decision

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"familyhub-server/internal/rng"
	"familyhub-server/pkg/deck"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/texasholdem"
)

var roster = []texasholdem.Seat{
	{ID: "jonas", Name: "JONAS", Type: texasholdem.Human},
	{ID: "claude", Name: "CLAUDE", Type: texasholdem.Automated},
	{ID: "gemini", Name: "GEMINI", Type: texasholdem.Automated},
}

// newHand deals a hand with the button on the last seat, so jonas is the small blind and gemini acts first
func newHand(t *testing.T) (*texasholdem.Engine, texasholdem.GameState) {
	t.Helper()

	e, err := texasholdem.NewEngine(logrus.StandardLogger(), rng.Seeded(1), texasholdem.DefaultOptions())
	require.NoError(t, err)

	s, err := e.SeatPlayers(roster)
	require.NoError(t, err)
	s.DealerIndex = 1

	s = e.Dispatch(s, texasholdem.StartNewHand{})
	require.Equal(t, 2, s.DealerIndex)
	return e, s
}

func obsWith(actions ...action.Action) ObservableState {
	return ObservableState{
		PlayerID:         "claude",
		PlayerName:       "CLAUDE",
		Phase:            texasholdem.PhaseFlop,
		Hand:             deck.CardsFromString("2c,7d"),
		CommunityCards:   deck.CardsFromString("9h,11s,13c"),
		Pot:              60,
		CurrentBet:       20,
		Chips:            500,
		CallAmount:       20,
		MinRaise:         40,
		MaxRaise:         500,
		AvailableActions: actions,
	}
}
