package handanalyzer

import (
	"math/rand"
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familyhub-server/pkg/deck"
)

var oracleSuits = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Club,
	deck.Diamonds: poker.Diamond,
	deck.Hearts:   poker.Heart,
	deck.Spades:   poker.Spade,
}

func oracleScore(t *testing.T, cards deck.Hand) int16 {
	t.Helper()

	var hand [7]poker.Card
	for i, c := range cards {
		card, err := poker.MakeCard(oracleSuits[c.Suit], poker.Rank(c.AceLowRank()))
		require.NoError(t, err)
		hand[i] = card
	}

	return poker.Eval7(&hand)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// the ordering of random seven-card hands must agree with an independent evaluator
func TestCompareHands_matchesOracle(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(99))

	for i := 0; i < 2000; i++ {
		cards := deck.New()
		r.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})

		board := deck.Hand(cards[4:9])
		h1 := append(deck.Hand{cards[0], cards[1]}, board...)
		h2 := append(deck.Hand{cards[2], cards[3]}, board...)

		ours := sign(CompareHands(EvaluateCards(h1), EvaluateCards(h2)))
		theirs := sign(int(oracleScore(t, h1)) - int(oracleScore(t, h2)))
		if !a.Equal(theirs, ours, "%s vs %s", h1.Pretty(), h2.Pretty()) {
			return
		}
	}
}
