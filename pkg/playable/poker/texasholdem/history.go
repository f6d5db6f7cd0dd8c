package texasholdem

import (
	"familyhub-server/pkg/deck"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/handanalyzer"
)

// maxHandSummaries bounds the in-memory history
const maxHandSummaries = 100

// HandSummary is the record of a completed hand
type HandSummary struct {
	HandNumber     int            `json:"handNumber"`
	Winners        []Winner       `json:"winners"`
	WinningHand    string         `json:"winningHand"`
	PotSize        int            `json:"potSize"`
	CommunityCards deck.Hand      `json:"communityCards"`
	Actions        []BetAction    `json:"actions"`
	Showdown       []ShowdownHand `json:"showdown"`
}

// PlayerStats are a player's tendencies over the session
type PlayerStats struct {
	HandsPlayed int `json:"handsPlayed"`
	HandsWon    int `json:"handsWon"`
	TotalBet    int `json:"totalBet"`
	AllInCount  int `json:"allInCount"`
	FoldCount   int `json:"foldCount"`
	// BluffCaught counts showdowns lost after going all-in with a pair or worse
	BluffCaught int `json:"bluffCaught"`
}

// History collects hand summaries and per-player stats, keyed by player name
type History struct {
	Hands []HandSummary           `json:"hands"`
	Stats map[string]*PlayerStats `json:"stats"`
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{
		Hands: make([]HandSummary, 0),
		Stats: make(map[string]*PlayerStats),
	}
}

// Record adds a completed hand. It returns false if the hand is not complete or was already recorded.
func (h *History) Record(s GameState) bool {
	if s.Phase != PhaseHandComplete {
		return false
	}

	if n := len(h.Hands); n > 0 && h.Hands[n-1].HandNumber >= s.HandNumber {
		return false
	}

	potSize := 0
	won := make(map[string]bool)
	for _, w := range s.Winners {
		potSize += w.Amount
		won[w.PlayerID] = true
	}

	shown := make(map[string]ShowdownHand)
	for _, sh := range s.Showdown {
		shown[sh.PlayerID] = sh
	}

	wentAllIn := make(map[string]bool)
	for _, a := range s.ActionHistory {
		if a.Action == action.AllIn {
			wentAllIn[a.PlayerID] = true
		}
	}

	for _, p := range s.Players {
		if !p.IsDealtIn() {
			continue
		}

		stats, ok := h.Stats[p.Name]
		if !ok {
			stats = &PlayerStats{}
			h.Stats[p.Name] = stats
		}

		stats.HandsPlayed++
		stats.TotalBet += p.TotalBet

		if won[p.ID] {
			stats.HandsWon++
		}

		if p.IsFolded {
			stats.FoldCount++
		}

		if p.IsAllIn || wentAllIn[p.ID] {
			stats.AllInCount++

			if sh, ok := shown[p.ID]; ok && !won[p.ID] && sh.Hand <= handanalyzer.OnePair {
				stats.BluffCaught++
			}
		}
	}

	c := s.Clone()
	h.Hands = append(h.Hands, HandSummary{
		HandNumber:     c.HandNumber,
		Winners:        c.Winners,
		WinningHand:    c.WinningHand,
		PotSize:        potSize,
		CommunityCards: c.CommunityCards,
		Actions:        c.ActionHistory,
		Showdown:       c.Showdown,
	})

	if len(h.Hands) > maxHandSummaries {
		h.Hands = h.Hands[len(h.Hands)-maxHandSummaries:]
	}

	return true
}

// StatsFor returns a copy of the stats for the named player
func (h *History) StatsFor(name string) (PlayerStats, bool) {
	stats, ok := h.Stats[name]
	if !ok {
		return PlayerStats{}, false
	}

	return *stats, true
}
