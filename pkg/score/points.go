package score

const (
	basePoints = 100
	maxBonus   = 100
)

// Points is what a single result is worth on the leaderboard
type Points struct {
	Base  int `json:"base"`
	Bonus int `json:"bonus"`
	Total int `json:"total"`
}

// NormalizedPoints converts a raw game score into leaderboard points.
// Every result is worth the base points plus a bonus between 0 and 100.
func NormalizedPoints(game string, raw int) Points {
	var bonus int
	switch game {
	case GameSolitaire:
		bonus = raw / 5
	case GameSudoku:
		bonus = raw / 35
	case GameMemory:
		bonus = (raw - 100) / 35
	case GamePixelHoops:
		bonus = raw / 2
	case GamePoker:
		// chips left at the end of the game
		bonus = raw / 50
	}

	if bonus > maxBonus {
		bonus = maxBonus
	} else if bonus < 0 {
		bonus = 0
	}

	return Points{
		Base:  basePoints,
		Bonus: bonus,
		Total: basePoints + bonus,
	}
}
