package handanalyzer

import (
	"errors"

	"familyhub-server/pkg/deck"
)

// ReasonUncontested is the description used when a single contender remains
const ReasonUncontested = "uncontested"

// ErrNoContenders is returned when there is nobody to evaluate
var ErrNoContenders = errors.New("no active players")

// Contender is a player still in the hand at showdown
type Contender struct {
	ID   string
	Hole deck.Hand
}

// Result is the outcome of a showdown
type Result struct {
	// Winners holds the IDs of every contender holding the best hand, in the order given
	Winners     []string
	Description string
	Uncontested bool
	Evaluations map[string]Evaluation
}

// FindWinners evaluates each contender against the community cards and returns
// everyone tied for the best hand. Contenders without hole cards are ignored.
// When only one contender is left no evaluation is done.
func FindWinners(contenders []Contender, community deck.Hand) (Result, error) {
	active := make([]Contender, 0, len(contenders))
	for _, c := range contenders {
		if len(c.Hole) > 0 {
			active = append(active, c)
		}
	}

	if len(active) == 0 {
		return Result{}, ErrNoContenders
	}

	if len(active) == 1 {
		return Result{
			Winners:     []string{active[0].ID},
			Description: ReasonUncontested,
			Uncontested: true,
		}, nil
	}

	evaluations := make(map[string]Evaluation, len(active))
	var best Evaluation
	for i, c := range active {
		eval := Evaluate(c.Hole, community)
		evaluations[c.ID] = eval
		if i == 0 || CompareHands(eval, best) > 0 {
			best = eval
		}
	}

	winners := make([]string, 0, 1)
	for _, c := range active {
		if CompareHands(evaluations[c.ID], best) == 0 {
			winners = append(winners, c.ID)
		}
	}

	return Result{
		Winners:     winners,
		Description: best.Description,
		Evaluations: evaluations,
	}, nil
}
