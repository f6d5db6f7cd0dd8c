package texasholdem

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/sirupsen/logrus"

	"familyhub-server/internal/rng"
	"familyhub-server/pkg/playable/poker/action"
)

type holdemTestContext struct {
	engine *Engine
	state  GameState
}

func (h *holdemTestContext) reset() error {
	e, err := NewEngine(logrus.StandardLogger(), rng.Seeded(1), DefaultOptions())
	if err != nil {
		return err
	}

	h.engine = e
	h.state = e.CreateInitialState()
	return nil
}

func (h *holdemTestContext) playersWithChipsEach(n, chips int) error {
	s, err := h.engine.SeatPlayers(testRoster(n))
	if err != nil {
		return err
	}

	for i := range s.Players {
		s.Players[i].Chips = chips
	}

	h.state = s
	return nil
}

func (h *holdemTestContext) theButtonIsOnSeat(seat int) error {
	// the button moves when the hand is dealt
	h.state.DealerIndex = seat - 2
	return nil
}

func (h *holdemTestContext) aNewHandIsDealt() error {
	next := h.engine.Dispatch(h.state, StartNewHand{})
	if next.HandNumber == h.state.HandNumber {
		return fmt.Errorf("hand was not dealt")
	}

	h.state = next
	return nil
}

func (h *holdemTestContext) playerActs(id string, a action.Action, amount int) {
	h.state = h.engine.Dispatch(h.state, PlayerAction{PlayerID: id, Action: a, Amount: amount})
}

func (h *holdemTestContext) folds(id string) error {
	h.playerActs(id, action.Fold, 0)
	return nil
}

func (h *holdemTestContext) calls(id string) error {
	h.playerActs(id, action.Call, 0)
	return nil
}

func (h *holdemTestContext) checks(id string) error {
	h.playerActs(id, action.Check, 0)
	return nil
}

func (h *holdemTestContext) raisesTo(id string, amount int) error {
	h.playerActs(id, action.Raise, amount)
	return nil
}

func (h *holdemTestContext) goesAllIn(id string) error {
	h.playerActs(id, action.AllIn, 0)
	return nil
}

func (h *holdemTestContext) thePotIs(pot int) error {
	if h.state.Pot != pot {
		return fmt.Errorf("expected pot %d, got %d", pot, h.state.Pot)
	}

	return nil
}

func (h *holdemTestContext) itIsToAct(id string) error {
	p, ok := h.state.CurrentPlayer()
	if !ok {
		return fmt.Errorf("expected %s to act, but nobody is", id)
	}

	if p.ID != id {
		return fmt.Errorf("expected %s to act, got %s", id, p.ID)
	}

	return nil
}

func (h *holdemTestContext) thePhaseIs(phase string) error {
	if h.state.Phase.String() != phase {
		return fmt.Errorf("expected phase %s, got %s", phase, h.state.Phase)
	}

	return nil
}

func (h *holdemTestContext) theHandIsOver() error {
	return h.thePhaseIs(PhaseHandComplete.String())
}

func (h *holdemTestContext) thereAreCommunityCards(n int) error {
	if len(h.state.CommunityCards) != n {
		return fmt.Errorf("expected %d community cards, got %d", n, len(h.state.CommunityCards))
	}

	return nil
}

func (h *holdemTestContext) wonBecause(id string, amount int, reason string) error {
	if h.state.WinningHand != reason {
		return fmt.Errorf("expected winning hand %q, got %q", reason, h.state.WinningHand)
	}

	for _, w := range h.state.Winners {
		if w.PlayerID == id {
			if w.Amount != amount {
				return fmt.Errorf("expected %s to win %d, got %d", id, amount, w.Amount)
			}

			return nil
		}
	}

	return fmt.Errorf("%s is not a winner", id)
}

func (h *holdemTestContext) hasChips(id string, chips int) error {
	p, ok := h.state.PlayerByID(id)
	if !ok {
		return fmt.Errorf("no player %s", id)
	}

	if p.Chips != chips {
		return fmt.Errorf("expected %s to have %d chips, got %d", id, chips, p.Chips)
	}

	return nil
}

func (h *holdemTestContext) theTableHoldsChips(chips int) error {
	if total := h.state.TotalChips(); total != chips {
		return fmt.Errorf("expected %d chips on the table, got %d", chips, total)
	}

	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	h := &holdemTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, h.reset()
	})

	// Given steps
	ctx.Step(`^(\d+) players with (\d+) chips each$`, h.playersWithChipsEach)
	ctx.Step(`^the button is on seat (\d+)$`, h.theButtonIsOnSeat)

	// When steps
	ctx.Step(`^a new hand is dealt$`, h.aNewHandIsDealt)
	ctx.Step(`^"([^"]*)" folds$`, h.folds)
	ctx.Step(`^"([^"]*)" calls$`, h.calls)
	ctx.Step(`^"([^"]*)" checks$`, h.checks)
	ctx.Step(`^"([^"]*)" raises to (\d+)$`, h.raisesTo)
	ctx.Step(`^"([^"]*)" goes all-in$`, h.goesAllIn)

	// Then steps
	ctx.Step(`^the pot is (\d+)$`, h.thePotIs)
	ctx.Step(`^it is "([^"]*)" to act$`, h.itIsToAct)
	ctx.Step(`^the phase is "([^"]*)"$`, h.thePhaseIs)
	ctx.Step(`^the hand is over$`, h.theHandIsOver)
	ctx.Step(`^there are (\d+) community cards$`, h.thereAreCommunityCards)
	ctx.Step(`^"([^"]*)" won (\d+) because "([^"]*)"$`, h.wonBecause)
	ctx.Step(`^"([^"]*)" has (\d+) chips$`, h.hasChips)
	ctx.Step(`^the table holds (\d+) chips$`, h.theTableHoldsChips)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
