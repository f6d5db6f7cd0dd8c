// Package texasholdem is a no-limit Texas Hold'em engine.
//
// The engine is a pure state machine: Dispatch takes a GameState and a Command and
// returns the next GameState without touching the input. Illegal commands return
// the input unchanged.
package texasholdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"familyhub-server/internal/rng"
	"familyhub-server/pkg/deck"
	"familyhub-server/pkg/playable/poker/action"
)

// Command is anything that can be dispatched to the engine
type Command interface {
	command()
}

// StartGame seats a new roster and deals the first hand
type StartGame struct {
	Roster []Seat
}

// StartNewHand deals the next hand
type StartNewHand struct{}

// PlayerAction is a betting decision from the player whose turn it is.
// Amount is only read for action.Raise, where it is the player's new total bet for the round;
// zero means the minimum raise.
type PlayerAction struct {
	PlayerID  string
	Action    action.Action
	Amount    int
	Reasoning string
}

// ResetGame returns to the initial waiting state
type ResetGame struct{}

func (StartGame) command()    {}
func (StartNewHand) command() {}
func (PlayerAction) command() {}
func (ResetGame) command()    {}

// Engine runs games of Texas Hold'em.
// The only thing it holds besides configuration is the shuffle source, so
// a seeded generator and a fixed command sequence replay the same game.
type Engine struct {
	logger  logrus.FieldLogger
	rng     rng.Generator
	options Options
}

// NewEngine returns a new engine
func NewEngine(logger logrus.FieldLogger, gen rng.Generator, opts Options) (*Engine, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Engine{
		logger:  logger,
		rng:     gen,
		options: opts,
	}, nil
}

// Options returns the options the engine was created with
func (e *Engine) Options() Options {
	return e.options
}

// CreateInitialState returns an idle game without players
func (e *Engine) CreateInitialState() GameState {
	return GameState{
		Phase:                 PhaseWaiting,
		Players:               []Player{},
		CommunityCards:        deck.Hand{},
		CurrentPlayerIndex:    NoPlayer,
		DealerIndex:           NoPlayer,
		SmallBlind:            e.options.SmallBlind,
		BigBlind:              e.options.BigBlind,
		MinRaise:              e.options.BigBlind,
		RoundStartPlayerIndex: NoPlayer,
		LastRaiserIndex:       NoPlayer,
		ActionHistory:         []BetAction{},
	}
}

// SeatPlayers returns a waiting state with every seat holding the starting stack
func (e *Engine) SeatPlayers(roster []Seat) (GameState, error) {
	if len(roster) < 2 {
		return GameState{}, errors.New("there must be at least two players")
	}

	if len(roster)*2+5 > deck.Size {
		return GameState{}, fmt.Errorf("there cannot be more than %d players", (deck.Size-5)/2)
	}

	seen := make(map[string]bool)
	s := e.CreateInitialState()
	for _, seat := range roster {
		if seat.ID == "" {
			return GameState{}, errors.New("every player needs an ID")
		}

		if seen[seat.ID] {
			return GameState{}, fmt.Errorf("duplicate player ID: %s", seat.ID)
		}
		seen[seat.ID] = true

		playerType := seat.Type
		if playerType == "" {
			playerType = Human
		}

		s.Players = append(s.Players, Player{
			ID:     seat.ID,
			Name:   seat.Name,
			Type:   playerType,
			Policy: seat.Policy,
			Chips:  e.options.StartingChips,
		})
	}

	return s, nil
}

// StartGame seats the roster, picks a random dealer and deals the first hand
func (e *Engine) StartGame(roster []Seat) (GameState, error) {
	s, err := e.SeatPlayers(roster)
	if err != nil {
		return GameState{}, err
	}

	// startNewHand moves the button one seat, so this is the seat before the dealer
	s.DealerIndex = e.rng.Intn(len(s.Players))
	return e.startNewHand(s), nil
}

// Dispatch applies the command and returns the resulting state
func (e *Engine) Dispatch(s GameState, cmd Command) GameState {
	switch c := cmd.(type) {
	case StartGame:
		next, err := e.StartGame(c.Roster)
		if err != nil {
			e.logger.WithError(err).Warn("could not start game")
			return s
		}

		return next
	case StartNewHand:
		return e.startNewHand(s)
	case PlayerAction:
		return e.processPlayerAction(s, c)
	case ResetGame:
		return e.CreateInitialState()
	}

	return s
}
