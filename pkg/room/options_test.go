package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"familyhub-server/internal/config"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig().Poker
	cfg.BigBlind = 40
	cfg.TurnDelay = 250
	cfg.DecisionTimeout = 5000
	cfg.OpenRouter.APIKey = "sk-test"

	a := assert.New(t)
	opts := OptionsFromConfig(cfg)
	a.Equal(40, opts.Game.BigBlind)
	a.Equal(10, opts.Game.SmallBlind)
	a.Equal(1000, opts.Game.StartingChips)
	a.Equal(250*time.Millisecond, opts.TurnDelay)
	a.Equal(5*time.Second, opts.DecisionTimeout)
	a.Equal("sk-test", opts.OpenRouter.APIKey)
	a.Equal(time.Hour, opts.MaxIdle)
	a.Len(opts.Opponents, 3)
}

func TestOptionsFromConfig_defaults(t *testing.T) {
	opts := OptionsFromConfig(config.DefaultConfig().Poker)
	defaults := DefaultOptions()

	a := assert.New(t)
	a.Equal(defaults.Game, opts.Game)
	a.Equal(defaults.TurnDelay, opts.TurnDelay)
	a.Equal(defaults.DecisionTimeout, opts.DecisionTimeout)
}
