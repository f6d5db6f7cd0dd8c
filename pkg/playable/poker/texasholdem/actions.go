package texasholdem

import "familyhub-server/pkg/playable/poker/action"

// GetAvailableActions returns the legal actions for the player whose turn it is
func GetAvailableActions(s GameState) []action.Action {
	if !s.Phase.IsBettingRound() {
		return nil
	}

	p, ok := s.CurrentPlayer()
	if !ok || !p.CanAct() {
		return nil
	}

	actions := []action.Action{action.Fold}

	toCall := s.CurrentBet - p.CurrentBet
	if toCall <= 0 {
		actions = append(actions, action.Check)
	} else if p.Chips > 0 {
		actions = append(actions, action.Call)
	}

	if p.Chips > toCall && p.Chips+p.CurrentBet >= s.CurrentBet+s.MinRaise {
		actions = append(actions, action.Raise)
	}

	if p.Chips > 0 {
		actions = append(actions, action.AllIn)
	}

	return actions
}

// GetCallAmount returns what the current player has to put in to call
func GetCallAmount(s GameState) int {
	p, ok := s.CurrentPlayer()
	if !ok {
		return 0
	}

	return maxInt(0, minInt(s.CurrentBet-p.CurrentBet, p.Chips))
}

// GetMinRaise returns the smallest total bet a raise can make
func GetMinRaise(s GameState) int {
	return s.CurrentBet + s.MinRaise
}

// GetMaxRaise returns the largest total bet the current player can make
func GetMaxRaise(s GameState) int {
	p, ok := s.CurrentPlayer()
	if !ok {
		return 0
	}

	return p.Chips + p.CurrentBet
}

// IsGameOver returns true once at most one player has chips left.
// Chips in the pot still belong to the hand, so the game is never over mid-hand.
func IsGameOver(s GameState) bool {
	if len(s.Players) == 0 {
		return false
	}

	if s.Phase.IsBettingRound() || s.Phase == PhaseShowdown {
		return false
	}

	return s.count(hasChips) <= 1
}

// GetGameWinner returns the last player holding chips, if the game is over
func GetGameWinner(s GameState) (Player, bool) {
	if !IsGameOver(s) {
		return Player{}, false
	}

	for _, p := range s.Players {
		if p.Chips > 0 {
			return p, true
		}
	}

	return Player{}, false
}
