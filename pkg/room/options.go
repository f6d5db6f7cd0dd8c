package room

import (
	"time"

	"familyhub-server/internal/config"
	"familyhub-server/pkg/playable/poker/decision"
	"familyhub-server/pkg/playable/poker/texasholdem"
)

// Options configures the sessions a PitBoss creates
type Options struct {
	Game texasholdem.Options

	// TurnDelay is how long an automated seat waits before it starts deciding
	TurnDelay time.Duration

	// DecisionTimeout bounds a single decision; zero means no limit
	DecisionTimeout time.Duration

	// MaxIdle is how long a session may go untouched before it is closed
	MaxIdle time.Duration

	OpenRouter decision.OpenRouterConfig

	// Opponents are the automated seats added to every session
	Opponents []texasholdem.Seat
}

// DefaultOpponents are the automated seats, each backed by a different model
func DefaultOpponents() []texasholdem.Seat {
	return []texasholdem.Seat{
		{ID: "claude", Name: "CLAUDE", Type: texasholdem.Automated, Policy: "anthropic/claude-sonnet-4.5"},
		{ID: "gemini", Name: "GEMINI", Type: texasholdem.Automated, Policy: "google/gemini-3-flash-preview"},
		{ID: "gpt", Name: "GPT", Type: texasholdem.Automated, Policy: "openai/gpt-5.2"},
	}
}

// DefaultOptions returns the default session options
func DefaultOptions() Options {
	return Options{
		Game:            texasholdem.DefaultOptions(),
		TurnDelay:       time.Second,
		DecisionTimeout: 15 * time.Second,
		MaxIdle:         time.Hour,
		Opponents:       DefaultOpponents(),
	}
}

// OptionsFromConfig returns the default options with the configured poker settings applied
func OptionsFromConfig(cfg config.Poker) Options {
	opts := DefaultOptions()
	opts.Game = texasholdem.Options{
		StartingChips: cfg.StartingChips,
		SmallBlind:    cfg.SmallBlind,
		BigBlind:      cfg.BigBlind,
	}
	opts.DecisionTimeout = time.Duration(cfg.DecisionTimeout) * time.Millisecond
	opts.TurnDelay = time.Duration(cfg.TurnDelay) * time.Millisecond
	opts.OpenRouter = cfg.OpenRouter

	return opts
}
