package room

import (
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"modernblackjack-server/pkg/blackjack"
	"modernblackjack-server/pkg/commentary"
	"modernblackjack-server/pkg/playable"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// Game is the contract a session drives: player actions plus ticks for the
// automated sequences
type Game interface {
	playable.Playable
	playable.Tickable
}

// Session owns one game of Blackjack and the clients watching it.
// All game access happens on the session's run loop; client and HTTP
// goroutines only ever enqueue work.
type Session struct {
	// ID uniquely identifies the session
	ID string

	pitBoss   *PitBoss
	logger    logrus.FieldLogger
	game      Game
	announcer *commentary.Announcer

	clients map[*Client]bool
	lock    sync.RWMutex

	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool

	// tick fires while the game runs an automated sequence
	tick *time.Timer
}

// NewSession creates a new session with its own game and announcer.
// This is called from a blocking state, so it needs to return quickly.
func NewSession(pitBoss *PitBoss, logger logrus.FieldLogger, options blackjack.Options, generator commentary.Generator) (*Session, error) {
	id := xid.New().String()
	log := logger.WithField("session", id)

	announcer := commentary.NewAnnouncer(log, generator)
	game, err := blackjack.NewGame(log, options, announcer)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:            id,
		pitBoss:       pitBoss,
		logger:        log,
		game:          game,
		announcer:     announcer,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}

	s.tick = time.NewTimer(0)
	if !s.tick.Stop() {
		<-s.tick.C
	}

	return s, nil
}

// Clients will return a slice of connected (at the time) clients
func (s *Session) Clients() []*Client {
	s.lock.RLock()
	defer s.lock.RUnlock()

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (s *Session) StartShift() {
	go s.runLoop()
}

func (s *Session) runLoop() {
	s.logger.Debug("creating session run loop")

	for {
		select {
		case st := <-s.stateChanged:
			switch st {
			case stateClientEvent, stateGameEvent:
				s.sendGameData()
			}
		case fn := <-s.execInRunLoop:
			fn()
		case msgs := <-s.game.LogChan():
			s.addLogMessages(msgs)
		case comment := <-s.announcer.Comments():
			s.sendComment(comment)
		case <-s.tick.C:
			s.tickGame()
		case <-s.close:
			s.logger.Debug("terminating session run loop")
			return
		}
	}
}

// tickGame advances an automated sequence one step.
// NOTE: must only be called from the run loop.
func (s *Session) tickGame() {
	updated, err := s.game.Tick()
	if err != nil {
		s.logger.WithError(err).Error("could not tick game")
		return
	}

	if updated {
		s.sendGameData()
	}

	s.scheduleTick()
}

// scheduleTick arms the tick timer if an automated sequence is in progress.
// NOTE: must only be called from the run loop.
func (s *Session) scheduleTick() {
	if !s.game.Busy() {
		return
	}

	s.tick.Reset(s.game.Interval())
}

// AddClient adds a client
// This method must return quickly
func (s *Session) AddClient(client *Client) {
	s.lock.Lock()
	client.session = s
	s.clients[client] = true
	s.lock.Unlock()

	s.execInRunLoop <- func() {
		gs, err := s.game.GetState()
		if err != nil {
			s.logger.WithError(err).Error("could not get game state")
			return
		}

		client.Send(gs)
		client.Send(&playable.Response{
			Key:  "logs",
			Data: s.logMessages,
		})
	}
}

// RemoveClient removes a client
// This method must return quickly
func (s *Session) RemoveClient(client *Client) (lastClient bool) {
	s.lock.Lock()
	delete(s.clients, client)
	nClients := len(s.clients)
	s.lock.Unlock()

	return nClients == 0
}

// EndShift is called when the session is no longer needed
func (s *Session) EndShift() {
	close(s.close)
}

// NOTE: must only be called from the run loop
func (s *Session) sendGameData() {
	data, err := s.game.GetState()
	if err != nil {
		s.logger.WithError(err).Error("could not get game state")
		return
	}

	for _, client := range s.Clients() {
		if !client.Send(data) {
			s.logger.WithField("client", client.String()).Warn("client send buffer full")
		}
	}
}

// NOTE: must only be called from the run loop
func (s *Session) sendComment(comment commentary.Comment) {
	data := &playable.Response{
		Key:   "comment",
		Value: string(comment.Situation),
		Data:  comment,
	}

	for _, client := range s.Clients() {
		client.Send(data)
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (s *Session) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	s.execInRunLoop <- func() {
		resp, updateState, err := s.game.Action(msg)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))

			// rejected bets still update the table message
			if updateState {
				s.stateChanged <- stateGameEvent
			}
			return
		}

		if resp != nil {
			resp.Context = msg.Context
			c.Send(resp)
		}

		if updateState {
			s.stateChanged <- stateGameEvent
		}

		s.scheduleTick()
	}
}
