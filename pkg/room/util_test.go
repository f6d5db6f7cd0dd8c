package room

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"familyhub-server/internal/rng"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/decision"
	"familyhub-server/pkg/playable/poker/texasholdem"
)

const waitFor = 10 * time.Second

type submittedScore struct {
	game  string
	name  string
	score int
}

type fakeScores struct {
	lock   sync.Mutex
	scores []submittedScore
}

func (f *fakeScores) SubmitScore(ctx context.Context, game, playerName string, score int) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.scores = append(f.scores, submittedScore{game: game, name: playerName, score: score})
	return nil
}

func (f *fakeScores) submitted() []submittedScore {
	f.lock.Lock()
	defer f.lock.Unlock()

	return append([]submittedScore{}, f.scores...)
}

// always returns a provider that tries the same action every turn
func always(a action.Action) decision.Provider {
	return decision.ProviderFunc(func(ctx context.Context, obs decision.ObservableState) (decision.Decision, error) {
		return decision.Decision{Action: a}, nil
	})
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.TurnDelay = 0
	opts.DecisionTimeout = time.Second
	return opts
}

func testRoster() []texasholdem.Seat {
	return []texasholdem.Seat{
		{ID: "me", Name: "Jonas", Type: texasholdem.Human},
		{ID: "bot1", Name: "BOT 1", Type: texasholdem.Automated},
		{ID: "bot2", Name: "BOT 2", Type: texasholdem.Automated},
	}
}

// newTestSession starts a session where both automated seats use the provider
func newTestSession(t *testing.T, p decision.Provider, scores ScoreSubmitter) *Session {
	t.Helper()

	engine, err := texasholdem.NewEngine(logrus.StandardLogger(), rng.Seeded(1), texasholdem.DefaultOptions())
	require.NoError(t, err)

	s, err := NewSession(logrus.StandardLogger(), engine, testRoster(), scores, testOptions())
	require.NoError(t, err)

	s.SetProvider("bot1", p)
	s.SetProvider("bot2", p)
	s.StartShift()
	t.Cleanup(s.EndShift)

	return s
}

func mustView(t *testing.T, s *Session, playerID string) *View {
	t.Helper()

	v, err := s.View(playerID)
	require.NoError(t, err)
	return v
}

// waitForTurn blocks until it is playerID's turn
func waitForTurn(t *testing.T, s *Session, playerID string) *View {
	t.Helper()

	var v *View
	require.Eventually(t, func() bool {
		v = mustView(t, s, playerID)
		return v.YourTurn
	}, waitFor, 10*time.Millisecond)

	return v
}

func waitForPhase(t *testing.T, s *Session, phase texasholdem.Phase) *View {
	t.Helper()

	var v *View
	require.Eventually(t, func() bool {
		v = mustView(t, s, "me")
		return v.Game.Phase == phase
	}, waitFor, 10*time.Millisecond)

	return v
}
