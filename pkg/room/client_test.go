package room

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"familyhub-server/pkg/playable"
)

func TestClient_Send(t *testing.T) {
	a := assert.New(t)

	c := NewClient(nil, nil, "me")
	for i := 0; i < cap(c.send); i++ {
		a.True(c.Send(i))
	}

	a.False(c.Send("dropped"))
	a.Equal(0, <-c.SendChan())
}

func TestClient_String(t *testing.T) {
	c := NewClient(nil, nil, "me")
	assert.Equal(t, "me", c.String())
	assert.Equal(t, "me", c.PlayerID())

	c = NewClient(&Session{UUID: "abc"}, nil, "me")
	assert.Equal(t, "me:abc", c.String())
}

func TestClient_ReceivedMessage_noSession(t *testing.T) {
	c := NewClient(nil, nil, "me")
	c.ReceivedMessage(&playable.PayloadIn{Action: "nextHand"})

	select {
	case msg := <-c.SendChan():
		t.Fatalf("unexpected message: %v", msg)
	default:
	}
}
