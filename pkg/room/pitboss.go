package room

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"familyhub-server/internal/rng"
	"familyhub-server/internal/util"
	"familyhub-server/pkg/playable/poker/texasholdem"
)

// ErrSessionNotFound is returned when a session UUID is unknown or has been reaped
var ErrSessionNotFound = errors.New("session not found")

type connection struct {
	client    *Client
	connected bool
}

// PitBoss is responsible for creating sessions and dispatching players to them
type PitBoss struct {
	logger  logrus.FieldLogger
	options Options
	scores  ScoreSubmitter

	// NewGenerator returns the shuffle source for a new session
	NewGenerator func() rng.Generator

	lock     sync.RWMutex
	sessions map[string]*Session

	// connections keeps connects and disconnects in the order they happened
	connections chan connection
	close       chan bool
	closeOnce   sync.Once
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, opts Options, scores ScoreSubmitter) *PitBoss {
	return &PitBoss{
		logger:       logger,
		options:      opts,
		scores:       scores,
		NewGenerator: func() rng.Generator { return rng.Crypto{} },
		sessions:     make(map[string]*Session),
		connections:  make(chan connection, 256),
		close:        make(chan bool),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// Shutdown ends every session and stops the run loop
func (p *PitBoss) Shutdown() {
	p.closeOnce.Do(func() {
		close(p.close)

		p.lock.Lock()
		defer p.lock.Unlock()
		for id, s := range p.sessions {
			s.EndShift()
			delete(p.sessions, id)
		}
	})
}

func (p *PitBoss) runLoop() {
	reap := time.NewTicker(time.Minute)
	defer reap.Stop()

	for {
		select {
		case conn := <-p.connections:
			if conn.client.session == nil {
				continue
			}

			if conn.connected {
				p.logger.WithField("player", conn.client.String()).Debug("client connected")
				conn.client.session.AddClient(conn.client)
			} else {
				p.logger.WithField("player", conn.client.String()).Debug("client disconnected")
				conn.client.session.RemoveClient(conn.client)
			}
		case <-reap.C:
			if n := p.Reap(p.options.MaxIdle); n > 0 {
				p.logger.WithField("count", n).Info("reaped idle sessions")
			}
		case <-p.close:
			return
		}
	}
}

// CreateSession starts a new game for a human player against the configured opponents.
// It returns the session and the human player's seat ID.
func (p *PitBoss) CreateSession(playerName string) (*Session, string, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		playerName = util.GetRandomName()
	}

	human := texasholdem.Seat{
		ID:   uuid.New().String(),
		Name: playerName,
		Type: texasholdem.Human,
	}

	roster := append([]texasholdem.Seat{human}, p.options.Opponents...)

	engine, err := texasholdem.NewEngine(p.logger, p.NewGenerator(), p.options.Game)
	if err != nil {
		return nil, "", err
	}

	s, err := NewSession(p.logger, engine, roster, p.scores, p.options)
	if err != nil {
		return nil, "", err
	}

	p.lock.Lock()
	p.sessions[s.UUID] = s
	p.lock.Unlock()

	s.StartShift()
	p.logger.WithFields(logrus.Fields{"uuid": s.UUID, "player": playerName}).Info("created session")

	return s, human.ID, nil
}

// Session returns a running session
func (p *PitBoss) Session(id string) (*Session, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	s, ok := p.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return s, nil
}

// EndSession stops a session and forgets it
func (p *PitBoss) EndSession(id string) error {
	p.lock.Lock()
	s, ok := p.sessions[id]
	delete(p.sessions, id)
	p.lock.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.EndShift()
	return nil
}

// Reap ends every session idle for longer than maxIdle and returns how many were ended
func (p *PitBoss) Reap(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}

	cutoff := time.Now().Add(-maxIdle)

	p.lock.Lock()
	var idle []*Session
	for id, s := range p.sessions {
		if len(s.Clients()) == 0 && s.IdleSince().Before(cutoff) {
			idle = append(idle, s)
			delete(p.sessions, id)
		}
	}
	p.lock.Unlock()

	for _, s := range idle {
		s.EndShift()
	}

	return len(idle)
}

// ClientConnected is called when a client connects to its session
func (p *PitBoss) ClientConnected(client *Client) {
	p.enqueue(connection{client: client, connected: true})
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.enqueue(connection{client: client})
}

// enqueue hands the connection to the run loop. It gives up once the PitBoss has shut down.
func (p *PitBoss) enqueue(conn connection) {
	select {
	case p.connections <- conn:
	case <-p.close:
	}
}
