package commentary

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Comment is a generated dealer remark
type Comment struct {
	Situation Situation `json:"situation"`
	Text      string    `json:"text"`
}

// Announcer dispatches fire-and-forget comment requests.
// Each Announce supersedes any request still in flight: a stale result is
// discarded rather than displayed, so the latest comment shown always
// corresponds to the most recent situation. Nothing here ever blocks a game
// transition.
type Announcer struct {
	generator  Generator
	logger     logrus.FieldLogger
	comments   chan Comment
	generation *atomic.Int64
	timeout    time.Duration
}

// NewAnnouncer returns a new announcer backed by the generator
func NewAnnouncer(logger logrus.FieldLogger, generator Generator) *Announcer {
	return &Announcer{
		generator:  generator,
		logger:     logger,
		comments:   make(chan Comment, 16),
		generation: atomic.NewInt64(0),
		timeout:    time.Second * 15,
	}
}

// Enabled returns true if the underlying generator can produce comments
func (a *Announcer) Enabled() bool {
	return a.generator.Enabled()
}

// Comments returns the channel completed comments are delivered on
func (a *Announcer) Comments() <-chan Comment {
	return a.comments
}

// Announce requests a comment for the situation without blocking.
// The result (or nothing, on failure or supersession) arrives on Comments().
func (a *Announcer) Announce(situation Situation, c Context) {
	if !a.Enabled() {
		return
	}

	gen := a.generation.Inc()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		text := a.generator.Comment(ctx, situation, c)

		if a.generation.Load() != gen {
			// a newer situation superseded this one
			a.logger.WithField("situation", situation).Trace("discarding stale comment")
			return
		}

		select {
		case a.comments <- Comment{Situation: situation, Text: text}:
		default:
			a.logger.WithField("situation", situation).Warn("comment channel full, dropping")
		}
	}()
}
