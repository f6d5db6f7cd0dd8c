package texasholdem

import (
	"familyhub-server/pkg/deck"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/handanalyzer"
)

// NoPlayer is used for player indexes when nobody is referenced
const NoPlayer = -1

// ReasonEveryoneFolded is the winning hand description when all but one player folded
const ReasonEveryoneFolded = "everyone else folded"

// BetAction is an entry in the action history
type BetAction struct {
	PlayerID   string        `json:"playerId"`
	PlayerName string        `json:"playerName"`
	Action     action.Action `json:"action"`
	// Amount is the chips called for a call, or the new total bet for a raise or all-in
	Amount     int    `json:"amount"`
	Reasoning  string `json:"reasoning,omitempty"`
	Phase      Phase  `json:"phase"`
	HandNumber int    `json:"handNumber"`
}

// Winner is a player who was paid from the pot
type Winner struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Amount   int    `json:"amount"`
}

// ShowdownHand is a contender's hand revealed at showdown
type ShowdownHand struct {
	PlayerID    string            `json:"playerId"`
	Name        string            `json:"name"`
	Cards       deck.Hand         `json:"cards"`
	Hand        handanalyzer.Hand `json:"hand"`
	Description string            `json:"description"`
	// Place is 1 for the winning tier, 2 for the next best, and so on
	Place int `json:"place"`
}

// GameState is the complete snapshot of a game.
// The engine never modifies a GameState; every transition returns a new one.
type GameState struct {
	Phase          Phase     `json:"phase"`
	Players        []Player  `json:"players"`
	Deck           deck.Deck `json:"-"`
	CommunityCards deck.Hand `json:"communityCards"`
	Pot            int       `json:"pot"`

	// CurrentBet is the highest amount committed this betting round
	CurrentBet            int `json:"currentBet"`
	CurrentPlayerIndex    int `json:"currentPlayerIndex"`
	DealerIndex           int `json:"dealerIndex"`
	SmallBlind            int `json:"smallBlind"`
	BigBlind              int `json:"bigBlind"`
	MinRaise              int `json:"minRaise"`
	LastRaiseAmount       int `json:"lastRaiseAmount"`
	RoundStartPlayerIndex int `json:"roundStartPlayerIndex"`
	LastRaiserIndex       int `json:"lastRaiserIndex"`

	ActionHistory []BetAction    `json:"actionHistory"`
	Winners       []Winner       `json:"winners"`
	WinningHand   string         `json:"winningHand"`
	Showdown      []ShowdownHand `json:"showdown"`
	HandNumber    int            `json:"handNumber"`
}

// Clone returns a deep copy of the state
func (s GameState) Clone() GameState {
	c := s

	if s.Players != nil {
		c.Players = make([]Player, len(s.Players))
		for i, p := range s.Players {
			c.Players[i] = p.clone()
		}
	}

	if s.Deck != nil {
		c.Deck = make(deck.Deck, len(s.Deck))
		copy(c.Deck, s.Deck)
	}

	c.CommunityCards = s.CommunityCards.Clone()

	if s.ActionHistory != nil {
		c.ActionHistory = make([]BetAction, len(s.ActionHistory))
		copy(c.ActionHistory, s.ActionHistory)
	}

	if s.Winners != nil {
		c.Winners = make([]Winner, len(s.Winners))
		copy(c.Winners, s.Winners)
	}

	if s.Showdown != nil {
		c.Showdown = make([]ShowdownHand, len(s.Showdown))
		for i, sh := range s.Showdown {
			sh.Cards = sh.Cards.Clone()
			c.Showdown[i] = sh
		}
	}

	return c
}

// CurrentPlayer returns the player whose turn it is
func (s GameState) CurrentPlayer() (Player, bool) {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return Player{}, false
	}

	return s.Players[s.CurrentPlayerIndex], true
}

// PlayerByID returns the player with the given ID
func (s GameState) PlayerByID(id string) (Player, bool) {
	i := s.playerIndex(id)
	if i == NoPlayer {
		return Player{}, false
	}

	return s.Players[i], true
}

// TotalChips is the sum of every stack plus the pot
func (s GameState) TotalChips() int {
	total := s.Pot
	for _, p := range s.Players {
		total += p.Chips
	}

	return total
}

func (s GameState) playerIndex(id string) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}

	return NoPlayer
}

// nextIndex returns the first seat after from that matches, wrapping around to from itself last
func (s GameState) nextIndex(from int, match func(p Player) bool) int {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		idx := ((from+i)%n + n) % n
		if match(s.Players[idx]) {
			return idx
		}
	}

	return NoPlayer
}

func (s GameState) count(match func(p Player) bool) int {
	n := 0
	for _, p := range s.Players {
		if match(p) {
			n++
		}
	}

	return n
}

func hasChips(p Player) bool {
	return p.Chips > 0
}

func inHand(p Player) bool {
	return p.InHand()
}

func canAct(p Player) bool {
	return p.CanAct()
}
