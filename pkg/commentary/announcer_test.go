package commentary

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

type stubGenerator struct {
	enabled bool
	text    string
	calls   *atomic.Int64
}

func newStubGenerator(text string) *stubGenerator {
	return &stubGenerator{enabled: true, text: text, calls: atomic.NewInt64(0)}
}

func (s *stubGenerator) Enabled() bool { return s.enabled }

func (s *stubGenerator) Comment(_ context.Context, _ Situation, _ Context) string {
	s.calls.Inc()
	return s.text
}

func waitForComment(t *testing.T, a *Announcer) Comment {
	t.Helper()

	select {
	case comment := <-a.Comments():
		return comment
	case <-time.After(time.Second * 2):
		t.Fatal("timeout waiting for comment")
		return Comment{}
	}
}

func TestAnnouncer_Announce(t *testing.T) {
	a := assert.New(t)

	gen := newStubGenerator("Feeling lucky?")
	announcer := NewAnnouncer(logrus.StandardLogger(), gen)
	a.True(announcer.Enabled())

	announcer.Announce(SituationGameStart, Context{BetAmount: 10})

	comment := waitForComment(t, announcer)
	a.Equal(SituationGameStart, comment.Situation)
	a.Equal("Feeling lucky?", comment.Text)
	a.Equal(int64(1), gen.calls.Load())
}

func TestAnnouncer_Disabled(t *testing.T) {
	a := assert.New(t)

	gen := newStubGenerator("never seen")
	gen.enabled = false

	announcer := NewAnnouncer(logrus.StandardLogger(), gen)
	a.False(announcer.Enabled())

	announcer.Announce(SituationGameStart, Context{})

	select {
	case comment := <-announcer.Comments():
		t.Fatalf("unexpected comment: %v", comment)
	case <-time.After(time.Millisecond * 100):
	}

	a.Equal(int64(0), gen.calls.Load())
}

// slowThenFast blocks its first call until released so a later call can
// overtake it
type slowThenFast struct {
	release chan struct{}
	done    chan struct{}
	calls   *atomic.Int64
}

func (s *slowThenFast) Enabled() bool { return true }

func (s *slowThenFast) Comment(_ context.Context, _ Situation, _ Context) string {
	if s.calls.Inc() == 1 {
		defer close(s.done)
		<-s.release
		return "stale comment"
	}

	return "fresh comment"
}

func TestAnnouncer_StaleCommentDiscarded(t *testing.T) {
	a := assert.New(t)

	gen := &slowThenFast{
		release: make(chan struct{}),
		done:    make(chan struct{}),
		calls:   atomic.NewInt64(0),
	}
	announcer := NewAnnouncer(logrus.StandardLogger(), gen)

	announcer.Announce(SituationPlayerStands, Context{})
	announcer.Announce(SituationDealerWin, Context{})

	comment := waitForComment(t, announcer)
	a.Equal(SituationDealerWin, comment.Situation)
	a.Equal("fresh comment", comment.Text)

	// release the first request; its result must be discarded
	close(gen.release)
	<-gen.done

	select {
	case comment := <-announcer.Comments():
		t.Fatalf("stale comment was delivered: %v", comment)
	case <-time.After(time.Millisecond * 200):
	}
}
