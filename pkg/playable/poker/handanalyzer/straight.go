package handanalyzer

import "familyhub-server/pkg/deck"

// straightHigh returns the high card of a five-card straight, or 0.
// ranks must be sorted high to low. The wheel (A-5-4-3-2) plays to the five.
func straightHigh(ranks []int) int {
	if len(ranks) != 5 {
		return 0
	}

	isRun := true
	for i := 0; i < 4; i++ {
		if ranks[i]-ranks[i+1] != 1 {
			isRun = false
			break
		}
	}

	if isRun {
		return ranks[0]
	}

	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2 {
		return 5
	}

	return 0
}
