package texasholdem

import (
	"encoding/json"
	"fmt"
)

// Phase represents the state of the hand
type Phase int

// constants for Phase
const (
	PhaseWaiting Phase = iota
	PhasePreFlop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
	PhaseHandComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePreFlop:
		return "pre-flop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	case PhaseHandComplete:
		return "hand-complete"
	}

	return ""
}

// IsBettingRound returns true if a player is expected to act
func (p Phase) IsBettingRound() bool {
	return p >= PhasePreFlop && p <= PhaseRiver
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}

// UnmarshalJSON decodes the {id, name} form
func (p *Phase) UnmarshalJSON(b []byte) error {
	var v struct {
		ID int `json:"id"`
	}

	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	if v.ID < int(PhaseWaiting) || v.ID > int(PhaseHandComplete) {
		return fmt.Errorf("unknown phase: %d", v.ID)
	}

	*p = Phase(v.ID)
	return nil
}
