package deck

import (
	"errors"

	"familyhub-server/internal/rng"
)

// ErrEndOfDeck is returned when more cards are requested than remain in the deck
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a standard deck
const Size = 52

// Deck is an ordered sequence of cards, dealt from the front.
// Methods never modify the receiver; they return new decks.
type Deck []Card

// New returns a new deck of cards in a fixed order (clubs, diamonds, hearts, spades; 2 through Ace).
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() Deck {
	cards := make(Deck, 0, Size)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffle returns a uniformly permuted copy of the deck (Fisher-Yates)
func (d Deck) Shuffle(g rng.Generator) Deck {
	cards := make(Deck, len(d))
	copy(cards, d)

	for j := len(cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}

	return cards
}

// Deal returns the first n cards and the remaining deck.
// If n exceeds the cards left, ErrEndOfDeck is returned and the deck is returned untouched.
func (d Deck) Deal(n int) (Hand, Deck, error) {
	if n < 0 || n > len(d) {
		return nil, d, ErrEndOfDeck
	}

	dealt := make(Hand, n)
	copy(dealt, d[:n])

	remaining := make(Deck, len(d)-n)
	copy(remaining, d[n:])

	return dealt, remaining, nil
}

// MustDeal is like Deal, but panics if the deck runs out
func (d Deck) MustDeal(n int) (Hand, Deck) {
	dealt, remaining, err := d.Deal(n)
	if err != nil {
		panic(err)
	}

	return dealt, remaining
}

// CanDraw returns true if there are {want} cards left in the deck
func (d Deck) CanDraw(want int) bool {
	return len(d) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d Deck) CardsLeft() int {
	return len(d)
}
