package handanalyzer

import "fmt"

// Hand is a poker hand tier, i.e., royal flush.
// The numeric value doubles as the tier's rank value (1 is the weakest).
type Hand int

// Constants for hand
const (
	HighCard Hand = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// MarshalText emits the hand's name
func (h Hand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
