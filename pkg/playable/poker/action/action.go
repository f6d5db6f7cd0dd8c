package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action represents a betting action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Raise Action = "raise"
	AllIn Action = "all-in"
)

var allowedActions = map[Action]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Raise: true,
	AllIn: true,
}

// FromString returns an action for the given string.
// Matching is case-insensitive and accepts "allin" and "all_in" for AllIn.
func FromString(s string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "allin", "all_in", "all in":
		normalized = string(AllIn)
	}

	if _, ok := allowedActions[Action(normalized)]; ok {
		return Action(normalized), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case AllIn:
		return "All-in"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// UnmarshalJSON accepts either the plain identifier or the {id, name} object
func (a *Action) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var obj struct {
			ID string `json:"id"`
		}

		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		s = obj.ID
	}

	act, err := FromString(s)
	if err != nil {
		return err
	}

	*a = act
	return nil
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// TakesAmount returns true for actions that carry a bet amount
func (a Action) TakesAmount() bool {
	return a == Raise || a == AllIn
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case AllIn:
		return fmt.Sprintf("went all-in for ${%d}", amount)
	}

	return ""
}

// Contains returns true if the action is in the list
func Contains(actions []Action, a Action) bool {
	for _, act := range actions {
		if act == a {
			return true
		}
	}

	return false
}
