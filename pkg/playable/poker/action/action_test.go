package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"fold", "check", "call", "raise", "all-in"} {
		act, err := FromString(s)
		a.NoError(err)
		a.Equal(Action(s), act)
		a.True(act.IsValid())
	}

	act, err := FromString(" ALLIN ")
	a.NoError(err)
	a.Equal(AllIn, act)

	act, err = FromString("Raise")
	a.NoError(err)
	a.Equal(Raise, act)

	act, err = FromString("discard")
	a.EqualError(err, "unknown action for identifier: discard")
	a.Equal(Action(""), act)
	a.False(Action("bet").IsValid())
}

func TestAction_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(AllIn)
	a.NoError(err)
	a.Equal(`{"id":"all-in","name":"All-in"}`, string(b))

	var act Action
	a.NoError(json.Unmarshal([]byte(`"call"`), &act))
	a.Equal(Call, act)

	a.NoError(json.Unmarshal([]byte(`{"id":"fold","name":"Fold"}`), &act))
	a.Equal(Fold, act)

	a.EqualError(json.Unmarshal([]byte(`"bet"`), &act), "unknown action for identifier: bet")
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("checked", Check.LogMessage(0))
	a.Equal("called ${20}", Call.LogMessage(20))
	a.Equal("raised to ${80}", Raise.LogMessage(80))
	a.Equal("went all-in for ${500}", AllIn.LogMessage(500))

	a.True(Raise.TakesAmount())
	a.False(Call.TakesAmount())
	a.True(Contains([]Action{Fold, Check}, Check))
	a.False(Contains([]Action{Fold, Check}, Call))

	a.PanicsWithValue("unknown action", func() {
		_ = Action("bet").String()
	})
}
