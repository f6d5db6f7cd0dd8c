package potmanager

import (
	"sort"
)

type tier struct {
	strength     int
	participants []string
}

// WinManager groups showdown participants by hand strength
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant places the participant into the tier for handStrength
func (w WinManager) AddParticipant(id string, handStrength int) {
	t, ok := w[handStrength]
	if !ok {
		t = &tier{
			strength:     handStrength,
			participants: make([]string, 0),
		}
	}

	t.participants = append(t.participants, id)
	w[handStrength] = t
}

// GetSortedTiers returns the participant IDs grouped by tier, strongest first
func (w WinManager) GetSortedTiers() [][]string {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredParticipants := make([][]string, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

// Places maps each participant to its finishing place (1 is the best tier)
func (w WinManager) Places() map[string]int {
	places := make(map[string]int)
	for i, ids := range w.GetSortedTiers() {
		for _, id := range ids {
			places[id] = i + 1
		}
	}

	return places
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
