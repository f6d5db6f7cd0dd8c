package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"familyhub-server/pkg/playable/poker/action"
)

func TestParseDecision(t *testing.T) {
	a := assert.New(t)

	d, err := ParseDecision(`{"action": "raise", "amount": 80, "reasoning": "strong draw"}`)
	a.NoError(err)
	a.Equal(Decision{Action: action.Raise, Amount: 80, Reasoning: "strong draw"}, d)

	d, err = ParseDecision("Sure! Here is my move:\n```json\n{\"action\": \"CALL\", \"amount\": 0, \"reasoning\": \" pot odds \"}\n```")
	a.NoError(err)
	a.Equal(Decision{Action: action.Call, Reasoning: "pot odds"}, d)

	d, err = ParseDecision(`{"action": "allin", "amount": "$500"}`)
	a.NoError(err)
	a.Equal(Decision{Action: action.AllIn, Amount: 500}, d)

	d, err = ParseDecision(`{"action": "check"}`)
	a.NoError(err)
	a.Equal(Decision{Action: action.Check}, d)

	_, err = ParseDecision("I fold")
	a.Equal(ErrNoDecision, err)

	_, err = ParseDecision(`{"action": "fold",}`)
	a.Error(err)

	_, err = ParseDecision(`{"action": "bet", "amount": 20}`)
	a.EqualError(err, "unknown action for identifier: bet")

	_, err = ParseDecision(`{"action": "raise", "amount": "lots"}`)
	a.EqualError(err, `amount is not a number: "lots"`)

	_, err = ParseDecision(`{"action": "raise", "amount": -5}`)
	a.EqualError(err, "amount out of range: -5")

	_, err = ParseDecision(`{"action": "raise", "amount": [1]}`)
	a.EqualError(err, "amount is not a number: [1]")
}
