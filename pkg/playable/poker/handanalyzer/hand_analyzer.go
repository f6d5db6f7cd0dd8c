// Package handanalyzer picks the best five-card poker hand out of up to seven cards
package handanalyzer

import (
	"fmt"
	"math"
	"sort"

	"familyhub-server/pkg/deck"
)

// Evaluation is the best five-card hand found in a set of cards
type Evaluation struct {
	Hand        Hand      `json:"hand"`
	RankValue   int       `json:"rankValue"`
	Cards       deck.Hand `json:"cards"`
	Kickers     []int     `json:"kickers"`
	Description string    `json:"description"`
}

// Strength packs the tier and kickers into a single comparable integer
func (e Evaluation) Strength() int {
	return calculateStrength(e.Hand, e.Kickers)
}

// Evaluate returns the best hand that can be made from the hole cards and the community cards
func Evaluate(hole, community deck.Hand) Evaluation {
	cards := make(deck.Hand, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)

	return EvaluateCards(cards)
}

// EvaluateCards checks every five-card combination (21 of them for seven cards) and returns the best.
// At least five cards are required.
func EvaluateCards(cards deck.Hand) Evaluation {
	n := len(cards)
	if n < 5 {
		panic(fmt.Sprintf("cannot evaluate %d cards, need at least 5", n))
	}

	var best Evaluation
	found := false
	combo := make(deck.Hand, 5)

	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						combo[0], combo[1], combo[2], combo[3], combo[4] = cards[a], cards[b], cards[c], cards[d], cards[e]
						eval := evaluateFive(combo)
						if !found || CompareHands(eval, best) > 0 {
							best = eval
							found = true
						}
					}
				}
			}
		}
	}

	return best
}

// CompareHands returns a positive number if a beats b, negative if b beats a, and 0 for a tie
func CompareHands(a, b Evaluation) int {
	if a.RankValue != b.RankValue {
		return a.RankValue - b.RankValue
	}

	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			return a.Kickers[i] - b.Kickers[i]
		}
	}

	return 0
}

// rankGroup is a set of same-ranked cards
type rankGroup struct {
	rank  int
	count int
}

// evaluateFive classifies exactly five cards
func evaluateFive(five deck.Hand) Evaluation {
	cards := five.Clone()
	sort.Sort(sort.Reverse(sortByRank(cards)))

	var counts [deck.Ace + 1]int
	ranks := make([]int, 5)
	isFlush := true
	for i, card := range cards {
		counts[card.Rank]++
		ranks[i] = card.Rank
		if card.Suit != cards[0].Suit {
			isFlush = false
		}
	}

	// groups ordered by size, then rank: quads before the kicker, trips before the pair, etc.
	groups := make([]rankGroup, 0, 5)
	for rank := deck.Ace; rank >= 2; rank-- {
		if counts[rank] > 0 {
			groups = append(groups, rankGroup{rank: rank, count: counts[rank]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	grouped := make([]int, len(groups))
	for i, g := range groups {
		grouped[i] = g.rank
	}

	high := 0
	if len(groups) == 5 {
		high = straightHigh(ranks)
	}

	eval := Evaluation{Cards: orderCards(cards, groups, high)}

	switch {
	case isFlush && high == deck.Ace:
		eval.Hand = RoyalFlush
		eval.Kickers = []int{high}
		eval.Description = "Royal flush"
	case isFlush && high > 0:
		eval.Hand = StraightFlush
		eval.Kickers = []int{high}
		eval.Description = fmt.Sprintf("Straight flush, %s high", rankName(high))
	case groups[0].count == 4:
		eval.Hand = FourOfAKind
		eval.Kickers = grouped
		eval.Description = fmt.Sprintf("Four of a kind, %s", pluralRankName(groups[0].rank))
	case groups[0].count == 3 && groups[1].count == 2:
		eval.Hand = FullHouse
		eval.Kickers = grouped
		eval.Description = fmt.Sprintf("Full house, %s full of %s", pluralRankName(groups[0].rank), pluralRankName(groups[1].rank))
	case isFlush:
		eval.Hand = Flush
		eval.Kickers = ranks
		eval.Description = fmt.Sprintf("Flush, %s high", rankName(ranks[0]))
	case high > 0:
		eval.Hand = Straight
		eval.Kickers = []int{high}
		eval.Description = fmt.Sprintf("Straight, %s high", rankName(high))
	case groups[0].count == 3:
		eval.Hand = ThreeOfAKind
		eval.Kickers = grouped
		eval.Description = fmt.Sprintf("Three of a kind, %s", pluralRankName(groups[0].rank))
	case groups[0].count == 2 && groups[1].count == 2:
		eval.Hand = TwoPair
		eval.Kickers = grouped
		eval.Description = fmt.Sprintf("Two pair, %s and %s", pluralRankName(groups[0].rank), pluralRankName(groups[1].rank))
	case groups[0].count == 2:
		eval.Hand = OnePair
		eval.Kickers = grouped
		eval.Description = fmt.Sprintf("Pair of %s", pluralRankName(groups[0].rank))
	default:
		eval.Hand = HighCard
		eval.Kickers = ranks
		eval.Description = fmt.Sprintf("%s high", rankName(ranks[0]))
	}

	eval.RankValue = int(eval.Hand)
	return eval
}

// orderCards lays out the five cards the way they are read: grouped cards first,
// and a wheel with the ace at the end
func orderCards(cards deck.Hand, groups []rankGroup, straightHigh int) deck.Hand {
	if straightHigh == 5 {
		return append(cards[1:].Clone(), cards[0])
	}

	ordered := make(deck.Hand, 0, len(cards))
	for _, g := range groups {
		for _, card := range cards {
			if card.Rank == g.rank {
				ordered = append(ordered, card)
			}
		}
	}

	return ordered
}

func calculateStrength(hand Hand, cards []int) int {
	fiveCards := make([]int, 5)
	copy(fiveCards, cards)

	strength := math.Pow(15, 5) * float64(hand)
	for i := 0; i < 5; i++ {
		val := fiveCards[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}

var rankNames = map[int][2]string{
	2:          {"Two", "Twos"},
	3:          {"Three", "Threes"},
	4:          {"Four", "Fours"},
	5:          {"Five", "Fives"},
	6:          {"Six", "Sixes"},
	7:          {"Seven", "Sevens"},
	8:          {"Eight", "Eights"},
	9:          {"Nine", "Nines"},
	10:         {"Ten", "Tens"},
	deck.Jack:  {"Jack", "Jacks"},
	deck.Queen: {"Queen", "Queens"},
	deck.King:  {"King", "Kings"},
	deck.Ace:   {"Ace", "Aces"},
}

func rankName(rank int) string {
	return rankNames[rank][0]
}

func pluralRankName(rank int) string {
	return rankNames[rank][1]
}

type sortByRank deck.Hand

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	if s[i].Rank == s[j].Rank {
		return s[i].Suit < s[j].Suit
	}

	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
