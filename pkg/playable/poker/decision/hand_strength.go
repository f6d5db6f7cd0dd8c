package decision

import (
	"context"
	"fmt"

	"familyhub-server/pkg/deck"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/handanalyzer"
)

type strength int

const (
	weak strength = iota
	fair
	strong
)

// HandStrength is an offline policy that bets on the strength of its own cards.
// It always answers immediately and never errors.
type HandStrength struct{}

// RequestDecision implements Provider
func (HandStrength) RequestDecision(_ context.Context, obs ObservableState) (Decision, error) {
	st, desc := rate(obs.Hand, obs.CommunityCards)

	switch st {
	case strong:
		if obs.Can(action.Raise) {
			return Decision{Action: action.Raise, Amount: obs.MinRaise, Reasoning: fmt.Sprintf("%s is worth a raise", desc)}, nil
		}

		if obs.Can(action.Call) {
			return Decision{Action: action.Call, Reasoning: fmt.Sprintf("%s is worth a call", desc)}, nil
		}
	case fair:
		if obs.Can(action.Check) {
			return Decision{Action: action.Check, Reasoning: fmt.Sprintf("%s, no need to put more in", desc)}, nil
		}

		// cheap enough to see another card
		if obs.Can(action.Call) && obs.CallAmount*4 <= obs.Chips {
			return Decision{Action: action.Call, Reasoning: fmt.Sprintf("%s at a fair price", desc)}, nil
		}
	}

	if obs.Can(action.Check) {
		return Decision{Action: action.Check, Reasoning: fmt.Sprintf("%s, checking", desc)}, nil
	}

	return Decision{Action: action.Fold, Reasoning: fmt.Sprintf("%s is not worth %d", desc, obs.CallAmount)}, nil
}

// rate scores the hole cards before the flop and the best hand after it
func rate(hole, community deck.Hand) (strength, string) {
	if len(hole) != 2 {
		return weak, "no cards"
	}

	if len(hole)+len(community) >= 5 {
		eval := handanalyzer.Evaluate(hole, community)
		switch {
		case eval.Hand >= handanalyzer.TwoPair:
			return strong, eval.Description
		case eval.Hand == handanalyzer.OnePair:
			return fair, eval.Description
		}

		return weak, eval.Description
	}

	hi, lo := hole[0], hole[1]
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}

	desc := fmt.Sprintf("%s %s", hi, lo)
	switch {
	case hi.Rank == lo.Rank && hi.Rank >= 10:
		return strong, desc
	case hi.Rank == lo.Rank, hi.Rank == deck.Ace, lo.Rank >= 10:
		return fair, desc
	case hi.Suit == lo.Suit && hi.Rank-lo.Rank == 1 && lo.Rank >= 6:
		return fair, desc
	}

	return weak, desc
}
