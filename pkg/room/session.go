package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"familyhub-server/pkg/playable"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/decision"
	"familyhub-server/pkg/playable/poker/texasholdem"
	"familyhub-server/pkg/score"
)

// tickInterval is how often the run loop checks for automated turns
const tickInterval = 100 * time.Millisecond

// session errors
var (
	ErrSessionClosed  = errors.New("the session has ended")
	ErrNotYourTurn    = errors.New("it is not your turn")
	ErrIllegalAction  = errors.New("that action is not allowed right now")
	ErrHandInProgress = errors.New("the current hand is not over")
	ErrGameOver       = errors.New("the game is over")
)

// ScoreSubmitter records final results
type ScoreSubmitter interface {
	SubmitScore(ctx context.Context, game, playerName string, score int) error
}

var _ playable.Tickable = &Session{}

// turn identifies one decision point so a late decision is not applied to a later turn
type turn struct {
	game     int
	hand     int
	actions  int
	playerID string
}

type pendingTurn struct {
	turn  turn
	after time.Time
}

// Session runs a single game of Texas Hold'em.
// Every read and write of the game state happens on the run loop.
type Session struct {
	UUID string

	logger    logrus.FieldLogger
	engine    *texasholdem.Engine
	roster    []texasholdem.Seat
	providers map[string]decision.Provider
	scores    ScoreSubmitter
	options   Options

	// owned by the run loop
	state          texasholdem.GameState
	history        *texasholdem.History
	logMessages    []*playable.LogMessage
	generation     int
	pending        *pendingTurn
	deciding       bool
	thinking       string
	scoreSubmitted bool

	lock         sync.RWMutex
	clients      map[*Client]bool
	lastActivity time.Time

	ctx           context.Context
	cancel        context.CancelFunc
	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewSession creates a session for the roster. Automated seats get a decision provider from their policy.
// Call StartShift to deal the first hand.
func NewSession(logger logrus.FieldLogger, engine *texasholdem.Engine, roster []texasholdem.Seat, scores ScoreSubmitter, opts Options) (*Session, error) {
	// validates the roster
	if _, err := engine.SeatPlayers(roster); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	log := logger.WithField("uuid", id)

	providers := make(map[string]decision.Provider)
	for _, seat := range roster {
		if seat.Type == texasholdem.Automated {
			providers[seat.ID] = decision.ForPolicy(log, seat.Policy, opts.OpenRouter)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		UUID:          id,
		logger:        log,
		engine:        engine,
		roster:        append([]texasholdem.Seat{}, roster...),
		providers:     providers,
		scores:        scores,
		options:       opts,
		state:         engine.CreateInitialState(),
		history:       texasholdem.NewHistory(),
		clients:       make(map[*Client]bool),
		lastActivity:  time.Now(),
		ctx:           ctx,
		cancel:        cancel,
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}, nil
}

// SetProvider replaces the decision provider for an automated seat.
// It must be called before StartShift.
func (s *Session) SetProvider(playerID string, p decision.Provider) {
	s.providers[playerID] = p
}

// StartShift starts the run loop and deals the first hand
func (s *Session) StartShift() {
	s.execInRunLoop <- func() {
		s.startGame()
	}

	go s.runLoop()
}

// EndShift stops the run loop and disconnects every client
func (s *Session) EndShift() {
	s.closeOnce.Do(func() {
		close(s.close)
		s.cancel()

		for _, c := range s.Clients() {
			select {
			case c.Close <- "session ended":
			default:
			}
		}
	})
}

func (s *Session) runLoop() {
	s.logger.Debug("starting session run loop")

	ticker := time.NewTicker(s.Delay())
	defer ticker.Stop()

	for {
		select {
		case fn := <-s.execInRunLoop:
			fn()
		case <-ticker.C:
			updated, err := s.Tick()
			if err != nil {
				s.logger.WithError(err).Error("could not advance automated turn")
			}

			if updated {
				s.broadcast()
			}
		case <-s.close:
			s.logger.Debug("terminating session run loop")
			return
		}
	}
}

// do runs fn on the run loop and waits for it to finish
func (s *Session) do(fn func()) error {
	done := make(chan bool)
	select {
	case s.execInRunLoop <- func() {
		fn()
		close(done)
	}:
	case <-s.close:
		return ErrSessionClosed
	}

	select {
	case <-done:
		return nil
	case <-s.close:
		return ErrSessionClosed
	}
}

func (s *Session) touch() {
	s.lock.Lock()
	s.lastActivity = time.Now()
	s.lock.Unlock()
}

// IdleSince returns when a player last did something in the session
func (s *Session) IdleSince() time.Time {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.lastActivity
}

// Delay implements playable.Tickable
func (s *Session) Delay() time.Duration {
	return tickInterval
}

// Tick implements playable.Tickable. It starts a decision for an automated seat once its turn delay has passed.
// NOTE: must only be called from the run loop
func (s *Session) Tick() (bool, error) {
	if s.deciding {
		return false, nil
	}

	p, ok := s.state.CurrentPlayer()
	if !ok || p.Type != texasholdem.Automated || !s.state.Phase.IsBettingRound() {
		s.pending = nil
		return false, nil
	}

	t := s.currentTurn()
	if s.pending == nil || s.pending.turn != t {
		s.pending = &pendingTurn{turn: t, after: time.Now().Add(s.options.TurnDelay)}
		return false, nil
	}

	if time.Now().Before(s.pending.after) {
		return false, nil
	}

	obs, err := decision.Observe(s.state, p.ID, s.history)
	if err != nil {
		return false, err
	}

	provider, ok := s.providers[p.ID]
	if !ok {
		provider = decision.HandStrength{}
	}

	s.pending = nil
	s.deciding = true
	s.thinking = p.ID
	go s.decide(t, provider, obs)

	return true, nil
}

// decide runs off the run loop. The engine is not touched until the decision is handed back.
func (s *Session) decide(t turn, provider decision.Provider, obs decision.ObservableState) {
	d := decision.Decide(s.ctx, s.logger, provider, obs, s.options.DecisionTimeout)

	select {
	case s.execInRunLoop <- func() { s.applyDecision(t, d) }:
	case <-s.close:
	}
}

// NOTE: must only be called from the run loop
func (s *Session) applyDecision(t turn, d decision.Decision) {
	s.deciding = false
	s.thinking = ""

	if s.currentTurn() != t {
		s.logger.WithField("playerID", t.playerID).Info("discarding decision for a turn that has passed")
		s.broadcast()
		return
	}

	next := s.transition(d.PlayerAction(t.playerID))
	if len(next.ActionHistory) == t.actions {
		// the decision was coerced against this exact state, so this should not happen
		s.logger.WithField("decision", d).Error("engine rejected an automated decision")
		fb := decision.Fallback(decision.ObservableState{AvailableActions: texasholdem.GetAvailableActions(s.state)})
		s.transition(fb.PlayerAction(t.playerID))
	}
}

// NOTE: must only be called from the run loop
func (s *Session) currentTurn() turn {
	t := turn{
		game:    s.generation,
		hand:    s.state.HandNumber,
		actions: len(s.state.ActionHistory),
	}

	if p, ok := s.state.CurrentPlayer(); ok {
		t.playerID = p.ID
	}

	return t
}

// transition dispatches the command and publishes the result
// NOTE: must only be called from the run loop
func (s *Session) transition(cmd texasholdem.Command) texasholdem.GameState {
	prev := s.state
	s.state = s.engine.Dispatch(prev, cmd)

	s.addLogMessages(texasholdem.LogMessages(prev, s.state))
	s.history.Record(s.state)
	s.submitScores()
	s.broadcast()

	return s.state
}

// NOTE: must only be called from the run loop
func (s *Session) startGame() {
	s.generation++
	s.pending = nil
	s.scoreSubmitted = false
	s.history = texasholdem.NewHistory()
	s.logMessages = nil
	s.state = s.engine.Dispatch(s.state, texasholdem.ResetGame{})

	s.transition(texasholdem.StartGame{Roster: s.roster})
}

// submitScores reports every human seat's chips once the game is over
// NOTE: must only be called from the run loop
func (s *Session) submitScores() {
	if s.scoreSubmitted || s.scores == nil || !texasholdem.IsGameOver(s.state) {
		return
	}

	s.scoreSubmitted = true
	for _, p := range s.state.Players {
		if p.Type != texasholdem.Human {
			continue
		}

		go func(name string, chips int) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := s.scores.SubmitScore(ctx, score.GamePoker, name, chips); err != nil {
				s.logger.WithError(err).WithField("player", name).Error("could not submit score")
				return
			}

			s.logger.WithFields(logrus.Fields{"player": name, "score": chips}).Info("submitted score")
		}(p.Name, p.Chips)
	}
}

// View returns the session as the player sees it
func (s *Session) View(playerID string) (*View, error) {
	var v *View
	err := s.do(func() {
		v = s.view(playerID)
	})

	return v, err
}

// Act applies a betting action for a human seat
func (s *Session) Act(playerID string, a action.Action, amount int) error {
	s.touch()

	var result error
	err := s.do(func() {
		p, ok := s.state.CurrentPlayer()
		if !ok || p.ID != playerID || p.Type != texasholdem.Human || !s.state.Phase.IsBettingRound() {
			result = ErrNotYourTurn
			return
		}

		if !action.Contains(texasholdem.GetAvailableActions(s.state), a) {
			result = ErrIllegalAction
			return
		}

		before := len(s.state.ActionHistory)
		hand := s.state.HandNumber
		next := s.transition(texasholdem.PlayerAction{PlayerID: playerID, Action: a, Amount: amount})
		if next.HandNumber == hand && len(next.ActionHistory) == before {
			result = ErrIllegalAction
		}
	})

	if err != nil {
		return err
	}

	return result
}

// NextHand deals the next hand
func (s *Session) NextHand() error {
	s.touch()

	var result error
	err := s.do(func() {
		if texasholdem.IsGameOver(s.state) {
			result = ErrGameOver
			return
		}

		if s.state.Phase != texasholdem.PhaseHandComplete {
			result = ErrHandInProgress
			return
		}

		s.transition(texasholdem.StartNewHand{})
	})

	if err != nil {
		return err
	}

	return result
}

// Reset abandons the current game and starts a new one with the same players
func (s *Session) Reset() error {
	s.touch()

	return s.do(s.startGame)
}

// ReceivedMessage handles a message from a websocket client
func (s *Session) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	var err error
	switch msg.Action {
	case "action":
		name, _ := msg.AdditionalData.GetString("action")
		amount, _ := msg.AdditionalData.GetInt("amount")

		var a action.Action
		a, err = action.FromString(name)
		if err == nil {
			err = s.Act(c.playerID, a, amount)
		}
	case "nextHand":
		err = s.NextHand()
	case "reset":
		err = s.Reset()
	case "refresh":
		err = s.do(func() {
			c.Send(newGameResponse(s.view(c.playerID)))
		})
	default:
		s.logger.WithField("action", msg.Action).Warn("unknown message")
		err = errors.New("unknown action")
	}

	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(playable.OK(msg.Context))
}

// Clients returns a slice of connected (at the time) clients
func (s *Session) Clients() []*Client {
	s.lock.RLock()
	defer s.lock.RUnlock()

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient adds a client and sends it the current view
func (s *Session) AddClient(client *Client) {
	s.lock.Lock()
	s.clients[client] = true
	s.lock.Unlock()

	select {
	case s.execInRunLoop <- func() { client.Send(newGameResponse(s.view(client.playerID))) }:
	case <-s.close:
	}
}

// RemoveClient removes a client
func (s *Session) RemoveClient(client *Client) {
	s.lock.Lock()
	delete(s.clients, client)
	s.lock.Unlock()
}

// NOTE: must only be called from the run loop
func (s *Session) broadcast() {
	for _, client := range s.Clients() {
		if !client.Send(newGameResponse(s.view(client.playerID))) {
			s.logger.WithField("client", client.String()).Warn("client is not keeping up, dropped update")
		}
	}
}
