package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"familyhub-server/pkg/playable"
)

// Client is a client connected to a session via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	session  *Session
	playerID string
}

// NewClient returns a new client object for the seat playerID in session s.
// An empty playerID watches the table without seeing any hole cards.
func NewClient(s *Session, conn *websocket.Conn, playerID string) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string, 1),
		Conn:     conn,
		session:  s,
		playerID: playerID,
	}
}

// Send sends a message to the web client. It returns false if the client is not keeping up.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// PlayerID returns the seat the client is watching
func (c *Client) PlayerID() string {
	return c.playerID
}

// String returns a traceable identifier for the player and session
func (c *Client) String() string {
	if c.session == nil {
		return c.playerID
	}

	return fmt.Sprintf("%s:%s", c.playerID, c.session.UUID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.session == nil {
		logrus.WithField("msg", msg).Warn("received message, but session not found")
		return
	}

	c.session.ReceivedMessage(c, msg)
}
