package decision

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"familyhub-server/pkg/playable/poker/action"
)

// ErrNoDecision is returned when a response does not contain a JSON object
var ErrNoDecision = errors.New("no decision found in response")

var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// ParseDecision extracts a decision from free text that contains a JSON object like
// {"action": "raise", "amount": 80, "reasoning": "..."}
func ParseDecision(text string) (Decision, error) {
	match := jsonObject.FindString(text)
	if match == "" {
		return Decision{}, ErrNoDecision
	}

	var raw struct {
		Action    string      `json:"action"`
		Amount    interface{} `json:"amount"`
		Reasoning string      `json:"reasoning"`
	}

	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return Decision{}, fmt.Errorf("could not parse decision: %w", err)
	}

	a, err := action.FromString(strings.TrimSpace(raw.Action))
	if err != nil {
		return Decision{}, err
	}

	amount, err := parseAmount(raw.Amount)
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		Action:    a,
		Amount:    amount,
		Reasoning: strings.TrimSpace(raw.Reasoning),
	}, nil
}

func parseAmount(v interface{}) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case float64:
		if val < 0 || val > math.MaxInt32 {
			return 0, fmt.Errorf("amount out of range: %v", val)
		}

		return int(val), nil
	case string:
		if val == "" {
			return 0, nil
		}

		n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(val), "$"))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("amount is not a number: %q", val)
		}

		return n, nil
	}

	return 0, fmt.Errorf("amount is not a number: %v", v)
}
