package room

import (
	"familyhub-server/pkg/playable"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/texasholdem"
)

// View is what one seat sees of a session
type View struct {
	UUID     string                `json:"uuid"`
	PlayerID string                `json:"playerId"`
	Game     texasholdem.GameState `json:"game"`

	// the following only apply when it is the viewer's turn
	YourTurn         bool            `json:"yourTurn"`
	AvailableActions []action.Action `json:"availableActions"`
	CallAmount       int             `json:"callAmount"`
	MinRaise         int             `json:"minRaise"`
	MaxRaise         int             `json:"maxRaise"`

	// Thinking is the automated seat currently deciding
	Thinking   string              `json:"thinking,omitempty"`
	IsGameOver bool                `json:"isGameOver"`
	GameWinner *texasholdem.Player `json:"gameWinner,omitempty"`

	Stats map[string]texasholdem.PlayerStats `json:"stats"`
	Log   []*playable.LogMessage             `json:"log"`
}

// NOTE: must only be called from the run loop
func (s *Session) view(playerID string) *View {
	v := &View{
		UUID:             s.UUID,
		PlayerID:         playerID,
		Game:             s.state.ViewFor(playerID),
		AvailableActions: []action.Action{},
		Thinking:         s.thinking,
		IsGameOver:       texasholdem.IsGameOver(s.state),
		Stats:            make(map[string]texasholdem.PlayerStats, len(s.history.Stats)),
		Log:              append([]*playable.LogMessage{}, s.logMessages...),
	}

	if p, ok := s.state.CurrentPlayer(); ok && playerID != "" && p.ID == playerID {
		v.YourTurn = s.state.Phase.IsBettingRound()
		v.AvailableActions = texasholdem.GetAvailableActions(s.state)
		v.CallAmount = texasholdem.GetCallAmount(s.state)
		v.MinRaise = texasholdem.GetMinRaise(s.state)
		v.MaxRaise = texasholdem.GetMaxRaise(s.state)
	}

	if winner, ok := texasholdem.GetGameWinner(s.state); ok {
		v.GameWinner = &winner
		v.GameWinner.Hand = nil
	}

	for name, stats := range s.history.Stats {
		v.Stats[name] = *stats
	}

	return v
}
