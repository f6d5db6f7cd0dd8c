package texasholdem

import "familyhub-server/pkg/deck"

// PlayerType is who makes the decisions for a seat
type PlayerType string

// player types
const (
	Human     PlayerType = "human"
	Automated PlayerType = "automated"
)

// Seat is an entry in the roster used to start a game
type Seat struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Type PlayerType `json:"type"`
	// Policy identifies the decision provider for automated seats
	Policy string `json:"policy,omitempty"`
}

// Player represents one seat at the table
type Player struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Type   PlayerType `json:"type"`
	Policy string     `json:"policy,omitempty"`

	// Chips is the balance carried from hand to hand
	Chips int       `json:"chips"`
	Hand  deck.Hand `json:"hand"`

	// CurrentBet is what the player committed during this betting round
	CurrentBet int `json:"currentBet"`
	// TotalBet is what the player committed during this hand
	TotalBet int `json:"totalBet"`

	IsFolded          bool `json:"isFolded"`
	IsAllIn           bool `json:"isAllIn"`
	IsDealer          bool `json:"isDealer"`
	HasActedThisRound bool `json:"hasActedThisRound"`
}

// IsDealtIn returns true if the player received cards this hand
func (p Player) IsDealtIn() bool {
	return len(p.Hand) > 0
}

// InHand returns true if the player is still contesting the pot
func (p Player) InHand() bool {
	return p.IsDealtIn() && !p.IsFolded
}

// CanAct returns true if the player can still make betting decisions this hand
func (p Player) CanAct() bool {
	return p.InHand() && !p.IsAllIn
}

func (p Player) clone() Player {
	p.Hand = p.Hand.Clone()
	return p
}
