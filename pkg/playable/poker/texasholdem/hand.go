package texasholdem

import (
	"github.com/sirupsen/logrus"

	"familyhub-server/pkg/deck"
)

// startNewHand moves the button, deals two cards to everyone with chips and posts the blinds
func (e *Engine) startNewHand(prev GameState) GameState {
	if prev.Phase.IsBettingRound() || prev.Phase == PhaseShowdown {
		e.logger.WithField("phase", prev.Phase.String()).Debug("cannot start a new hand while one is in progress")
		return prev
	}

	if prev.count(hasChips) < 2 {
		e.logger.Warn("cannot start a new hand with fewer than two players holding chips")
		return prev
	}

	s := prev.Clone()
	s.DealerIndex = s.nextIndex(s.DealerIndex, hasChips)

	for i := range s.Players {
		p := &s.Players[i]
		p.Hand = nil
		p.CurrentBet = 0
		p.TotalBet = 0
		p.IsFolded = p.Chips == 0
		p.IsAllIn = false
		p.IsDealer = i == s.DealerIndex
		p.HasActedThisRound = false
	}

	d := deck.New().Shuffle(e.rng)
	for i := range s.Players {
		if s.Players[i].Chips > 0 {
			s.Players[i].Hand, d = d.MustDeal(2)
		}
	}

	s.Deck = d
	s.CommunityCards = deck.Hand{}
	s.Pot = 0
	s.SmallBlind = e.options.SmallBlind
	s.BigBlind = e.options.BigBlind
	s.ActionHistory = []BetAction{}
	s.Winners = nil
	s.WinningHand = ""
	s.Showdown = nil
	s.HandNumber++
	s.Phase = PhasePreFlop

	smallBlindIndex := s.nextIndex(s.DealerIndex, inHand)
	bigBlindIndex := s.nextIndex(smallBlindIndex, inHand)
	s.commit(smallBlindIndex, minInt(s.SmallBlind, s.Players[smallBlindIndex].Chips))
	s.commit(bigBlindIndex, minInt(s.BigBlind, s.Players[bigBlindIndex].Chips))

	s.CurrentBet = s.BigBlind
	s.MinRaise = s.BigBlind
	s.LastRaiseAmount = s.BigBlind
	s.LastRaiserIndex = bigBlindIndex

	e.logger.WithFields(logrus.Fields{
		"hand":       s.HandNumber,
		"dealer":     s.Players[s.DealerIndex].ID,
		"smallBlind": s.Players[smallBlindIndex].ID,
		"bigBlind":   s.Players[bigBlindIndex].ID,
	}).Debug("new hand")

	// the blinds may have put everybody who could act all-in
	s.CurrentPlayerIndex = bigBlindIndex
	next := s.findNextPlayerToAct()
	if next == NoPlayer {
		return e.advancePhase(s)
	}

	s.CurrentPlayerIndex = next
	s.RoundStartPlayerIndex = next
	return s
}

// commit moves chips from the player's stack into the pot
func (s *GameState) commit(index, amount int) {
	p := &s.Players[index]
	p.Chips -= amount
	p.CurrentBet += amount
	p.TotalBet += amount
	s.Pot += amount

	if p.Chips == 0 {
		p.IsAllIn = true
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
