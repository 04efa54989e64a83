package room

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"modernblackjack-server/pkg/blackjack"
	"modernblackjack-server/pkg/commentary"
)

// ErrSessionNotFound is returned when the session ID is unknown or reaped
var ErrSessionNotFound = errors.New("session not found")

// PitBoss creates sessions and dispatches clients to them.
// A session with no clients is kept for idleTimeout so a reloaded page can
// reconnect, then reaped.
type PitBoss struct {
	logger      logrus.FieldLogger
	options     blackjack.Options
	generator   commentary.Generator
	idleTimeout time.Duration

	lock     sync.Mutex
	sessions map[string]*Session
	reapers  map[string]*time.Timer
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, options blackjack.Options, generator commentary.Generator, idleTimeout time.Duration) *PitBoss {
	return &PitBoss{
		logger:      logger,
		options:     options,
		generator:   generator,
		idleTimeout: idleTimeout,
		sessions:    make(map[string]*Session),
		reapers:     make(map[string]*time.Timer),
	}
}

// CreateSession creates a new session with a fresh game and starts its run loop
func (p *PitBoss) CreateSession() (*Session, error) {
	session, err := NewSession(p, p.logger, p.options, p.generator)
	if err != nil {
		return nil, err
	}

	session.StartShift()

	p.lock.Lock()
	p.sessions[session.ID] = session
	p.lock.Unlock()

	// an abandoned session is reaped unless a client shows up
	p.scheduleReap(session)

	p.logger.WithField("session", session.ID).Info("session created")
	return session, nil
}

// GetSession returns the session by ID
func (p *PitBoss) GetSession(id string) (*Session, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	session, found := p.sessions[id]
	if !found {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(session *Session, client *Client) {
	p.lock.Lock()
	if reaper, found := p.reapers[session.ID]; found {
		reaper.Stop()
		delete(p.reapers, session.ID)
	}
	p.lock.Unlock()

	session.AddClient(client)
	p.logger.WithField("client", client.String()).Debug("client connected")
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(session *Session, client *Client) {
	p.logger.WithField("client", client.String()).Debug("client disconnected")

	if session.RemoveClient(client) {
		p.scheduleReap(session)
	}
}

func (p *PitBoss) scheduleReap(session *Session) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if reaper, found := p.reapers[session.ID]; found {
		reaper.Stop()
	}

	p.reapers[session.ID] = time.AfterFunc(p.idleTimeout, func() {
		p.reap(session)
	})
}

func (p *PitBoss) reap(session *Session) {
	if len(session.Clients()) > 0 {
		return
	}

	p.lock.Lock()
	delete(p.sessions, session.ID)
	delete(p.reapers, session.ID)
	p.lock.Unlock()

	session.EndShift()
	p.logger.WithField("session", session.ID).Info("session reaped")
}
