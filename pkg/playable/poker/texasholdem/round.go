package texasholdem

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"familyhub-server/pkg/playable/poker/handanalyzer"
	"familyhub-server/pkg/playable/poker/potmanager"
)

// advancePhase closes the betting round and deals the next street
func (e *Engine) advancePhase(s GameState) GameState {
	for i := range s.Players {
		s.Players[i].CurrentBet = 0
		s.Players[i].HasActedThisRound = false
	}

	s.CurrentBet = 0
	s.LastRaiserIndex = NoPlayer
	s.MinRaise = s.BigBlind
	s.LastRaiseAmount = s.BigBlind

	switch s.Phase {
	case PhasePreFlop:
		s.dealCommunity(3)
		s.Phase = PhaseFlop
	case PhaseFlop:
		s.dealCommunity(1)
		s.Phase = PhaseTurn
	case PhaseTurn:
		s.dealCommunity(1)
		s.Phase = PhaseRiver
	case PhaseRiver:
		return e.resolveShowdown(s)
	default:
		panic(fmt.Sprintf("cannot advance from phase %s", s.Phase))
	}

	if s.count(canAct) < 2 {
		return e.runOut(s)
	}

	first := s.nextIndex(s.DealerIndex, canAct)
	s.CurrentPlayerIndex = first
	s.RoundStartPlayerIndex = first
	return s
}

// runOut deals the rest of the board without any more betting and goes to showdown
func (e *Engine) runOut(s GameState) GameState {
	e.logger.WithField("hand", s.HandNumber).Debug("running out the board")
	s.dealCommunity(5 - len(s.CommunityCards))
	return e.resolveShowdown(s)
}

// dealCommunity panics if the deck is short
func (s *GameState) dealCommunity(n int) {
	if !s.Deck.CanDraw(n) {
		panic(fmt.Sprintf("cannot deal %d community cards from a deck of %d", n, s.Deck.CardsLeft()))
	}

	cards, remaining := s.Deck.MustDeal(n)
	s.Deck = remaining
	s.CommunityCards = append(s.CommunityCards, cards...)
}

// resolveShowdown evaluates the remaining hands and pays the pot to the winners
func (e *Engine) resolveShowdown(s GameState) GameState {
	s.Phase = PhaseShowdown

	contenders := make([]handanalyzer.Contender, 0, len(s.Players))
	for _, p := range s.Players {
		if p.InHand() {
			contenders = append(contenders, handanalyzer.Contender{ID: p.ID, Hole: p.Hand})
		}
	}

	result, err := handanalyzer.FindWinners(contenders, s.CommunityCards)
	if err != nil {
		panic(err)
	}

	s.payWinners(result.Winners)
	s.WinningHand = result.Description

	if !result.Uncontested {
		wm := potmanager.NewWinManager()
		for id, eval := range result.Evaluations {
			wm.AddParticipant(id, eval.Strength())
		}
		places := wm.Places()

		s.Showdown = make([]ShowdownHand, 0, len(contenders))
		for _, c := range contenders {
			eval := result.Evaluations[c.ID]
			p := s.Players[s.playerIndex(c.ID)]
			s.Showdown = append(s.Showdown, ShowdownHand{
				PlayerID:    p.ID,
				Name:        p.Name,
				Cards:       eval.Cards,
				Hand:        eval.Hand,
				Description: eval.Description,
				Place:       places[p.ID],
			})
		}
	}

	e.logger.WithFields(logrus.Fields{
		"hand":        s.HandNumber,
		"winners":     result.Winners,
		"winningHand": s.WinningHand,
	}).Debug("showdown")

	return s.complete()
}

// endHand awards the pot to the only player left
func (e *Engine) endHand(s GameState) GameState {
	winner := s.nextIndex(NoPlayer, inHand)
	s.payWinners([]string{s.Players[winner].ID})
	s.WinningHand = ReasonEveryoneFolded

	e.logger.WithFields(logrus.Fields{
		"hand":   s.HandNumber,
		"winner": s.Players[winner].ID,
	}).Debug("everyone else folded")

	return s.complete()
}

func (s *GameState) payWinners(ids []string) {
	seats := make([]int, len(ids))
	for i, id := range ids {
		seats[i] = s.playerIndex(id)
	}

	payouts, err := potmanager.Split(s.Pot, seats, s.DealerIndex, len(s.Players))
	if err != nil {
		panic(err)
	}

	s.Winners = make([]Winner, 0, len(seats))
	for _, seat := range seats {
		p := &s.Players[seat]
		p.Chips += payouts[seat]
		s.Winners = append(s.Winners, Winner{
			PlayerID: p.ID,
			Name:     p.Name,
			Amount:   payouts[seat],
		})
	}

	s.Pot = 0
}

func (s GameState) complete() GameState {
	s.Phase = PhaseHandComplete
	s.CurrentPlayerIndex = NoPlayer
	return s
}
