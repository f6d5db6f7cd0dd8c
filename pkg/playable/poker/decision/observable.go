package decision

import (
	"errors"

	"familyhub-server/pkg/deck"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/texasholdem"
)

// recentActionCount is how much of the action history a decision maker sees
const recentActionCount = 5

// ErrNotToAct is returned when observing for a player whose turn it is not
var ErrNotToAct = errors.New("player is not the one to act")

// ObservableState is everything one seat is allowed to know when deciding
type ObservableState struct {
	PlayerID       string            `json:"playerId"`
	PlayerName     string            `json:"playerName"`
	Phase          texasholdem.Phase `json:"phase"`
	Hand           deck.Hand         `json:"hand"`
	CommunityCards deck.Hand         `json:"communityCards"`
	Pot            int               `json:"pot"`
	CurrentBet     int               `json:"currentBet"`
	Chips          int               `json:"chips"`
	CommittedBet   int               `json:"committedBet"`

	CallAmount       int             `json:"callAmount"`
	MinRaise         int             `json:"minRaise"`
	MaxRaise         int             `json:"maxRaise"`
	AvailableActions []action.Action `json:"availableActions"`

	RecentActions []texasholdem.BetAction `json:"recentActions"`
	// Opponents holds the session stats of the other players, keyed by name
	Opponents map[string]texasholdem.PlayerStats `json:"opponents,omitempty"`
}

// Observe builds the observable state for the player to act.
// history may be nil.
func Observe(s texasholdem.GameState, playerID string, history *texasholdem.History) (ObservableState, error) {
	p, ok := s.CurrentPlayer()
	if !ok || p.ID != playerID {
		return ObservableState{}, ErrNotToAct
	}

	actions := texasholdem.GetAvailableActions(s)
	if len(actions) == 0 {
		return ObservableState{}, ErrNotToAct
	}

	recent := s.ActionHistory
	if len(recent) > recentActionCount {
		recent = recent[len(recent)-recentActionCount:]
	}

	obs := ObservableState{
		PlayerID:         p.ID,
		PlayerName:       p.Name,
		Phase:            s.Phase,
		Hand:             p.Hand.Clone(),
		CommunityCards:   s.CommunityCards.Clone(),
		Pot:              s.Pot,
		CurrentBet:       s.CurrentBet,
		Chips:            p.Chips,
		CommittedBet:     p.CurrentBet,
		CallAmount:       texasholdem.GetCallAmount(s),
		MinRaise:         texasholdem.GetMinRaise(s),
		MaxRaise:         texasholdem.GetMaxRaise(s),
		AvailableActions: actions,
		RecentActions:    append([]texasholdem.BetAction{}, recent...),
	}

	if history != nil {
		obs.Opponents = make(map[string]texasholdem.PlayerStats)
		for _, opp := range s.Players {
			if opp.ID == p.ID {
				continue
			}

			if stats, ok := history.StatsFor(opp.Name); ok {
				obs.Opponents[opp.Name] = stats
			}
		}
	}

	return obs, nil
}

// Can returns true if the action is legal
func (o ObservableState) Can(a action.Action) bool {
	return action.Contains(o.AvailableActions, a)
}
