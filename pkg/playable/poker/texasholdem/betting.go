package texasholdem

import (
	"github.com/sirupsen/logrus"

	"familyhub-server/pkg/playable/poker/action"
)

// processPlayerAction applies a betting action for the player whose turn it is
func (e *Engine) processPlayerAction(prev GameState, pa PlayerAction) GameState {
	log := e.logger.WithFields(logrus.Fields{
		"playerID": pa.PlayerID,
		"action":   string(pa.Action),
		"amount":   pa.Amount,
		"phase":    prev.Phase.String(),
	})

	if !prev.Phase.IsBettingRound() {
		log.Debug("rejected action: no betting round in progress")
		return prev
	}

	index := prev.playerIndex(pa.PlayerID)
	if index == NoPlayer || index != prev.CurrentPlayerIndex {
		log.Debug("rejected action: not the player's turn")
		return prev
	}

	if !action.Contains(GetAvailableActions(prev), pa.Action) {
		log.Debug("rejected action: not available")
		return prev
	}

	s := prev.Clone()
	p := &s.Players[index]
	recorded := 0

	switch pa.Action {
	case action.Fold:
		p.IsFolded = true
	case action.Check:
		// nothing is owed, see GetAvailableActions
	case action.Call:
		recorded = minInt(s.CurrentBet-p.CurrentBet, p.Chips)
		s.commit(index, recorded)
	case action.Raise:
		allIn := p.CurrentBet + p.Chips
		target := pa.Amount
		if target == 0 {
			target = GetMinRaise(prev)
		}

		if target > allIn {
			// raising more than the stack is an all-in
			target = allIn
		}

		if target < GetMinRaise(prev) {
			log.Debug("rejected action: raise below the minimum")
			return prev
		}

		s.commit(index, target-p.CurrentBet)
		s.applyRaise(index)
		recorded = p.CurrentBet
	case action.AllIn:
		s.commit(index, p.Chips)
		if p.CurrentBet > s.CurrentBet {
			s.applyRaise(index)
		}
		recorded = p.CurrentBet
	}

	p.HasActedThisRound = true
	s.ActionHistory = append(s.ActionHistory, BetAction{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Action:     pa.Action,
		Amount:     recorded,
		Reasoning:  pa.Reasoning,
		Phase:      s.Phase,
		HandNumber: s.HandNumber,
	})

	return e.advanceGame(s)
}

// applyRaise makes the player at index the last raiser and reopens the action for everyone else
func (s *GameState) applyRaise(index int) {
	p := s.Players[index]
	raisedBy := p.CurrentBet - s.CurrentBet

	s.LastRaiseAmount = raisedBy
	if raisedBy >= s.MinRaise {
		// a short all-in does not lower the minimum raise
		s.MinRaise = maxInt(raisedBy, s.BigBlind)
	}

	s.CurrentBet = p.CurrentBet
	s.LastRaiserIndex = index

	for i := range s.Players {
		if i != index {
			s.Players[i].HasActedThisRound = false
		}
	}
}

// advanceGame ends the hand, ends the round, or passes the turn
func (e *Engine) advanceGame(s GameState) GameState {
	if s.count(inHand) == 1 {
		return e.endHand(s)
	}

	next := s.findNextPlayerToAct()
	if next == NoPlayer {
		return e.advancePhase(s)
	}

	s.CurrentPlayerIndex = next
	return s
}

// findNextPlayerToAct scans forward from the current player for someone who still owes a decision.
// It returns NoPlayer once the betting round is complete.
func (s GameState) findNextPlayerToAct() int {
	return s.nextIndex(s.CurrentPlayerIndex, func(p Player) bool {
		return p.CanAct() && (p.CurrentBet < s.CurrentBet || !p.HasActedThisRound)
	})
}
