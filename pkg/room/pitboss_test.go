package room

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"modernblackjack-server/pkg/blackjack"
)

func TestPitBoss_CreateAndGetSession(t *testing.T) {
	a := assert.New(t)

	p := testPitBoss(t)
	session, err := p.CreateSession()
	a.NoError(err)
	a.NotEmpty(session.ID)
	defer session.EndShift()

	got, err := p.GetSession(session.ID)
	a.NoError(err)
	a.Equal(session, got)

	_, err = p.GetSession("no-such-session")
	a.Equal(ErrSessionNotFound, err)
}

func TestPitBoss_CreateSession_BadOptions(t *testing.T) {
	opts := blackjack.DefaultOptions()
	opts.InitialChips = 0

	p := NewPitBoss(logrus.StandardLogger(), opts, silentGenerator{}, time.Minute)
	session, err := p.CreateSession()
	assert.Nil(t, session)
	assert.EqualError(t, err, "initial chips must be > 0")
}

func TestPitBoss_ReapsIdleSession(t *testing.T) {
	a := assert.New(t)

	p := NewPitBoss(logrus.StandardLogger(), blackjack.DefaultOptions(), silentGenerator{}, time.Millisecond*50)
	session, err := p.CreateSession()
	a.NoError(err)

	a.Eventually(func() bool {
		_, err := p.GetSession(session.ID)
		return err == ErrSessionNotFound
	}, time.Second*2, time.Millisecond*10)
}

func TestPitBoss_ConnectedClientPreventsReap(t *testing.T) {
	a := assert.New(t)

	p := NewPitBoss(logrus.StandardLogger(), blackjack.DefaultOptions(), silentGenerator{}, time.Millisecond*50)
	session, err := p.CreateSession()
	a.NoError(err)

	client := NewClient(nil)
	p.ClientConnected(session, client)

	time.Sleep(time.Millisecond * 150)
	_, err = p.GetSession(session.ID)
	a.NoError(err)

	// the last disconnect re-arms the reaper
	p.ClientDisconnected(session, client)
	a.Eventually(func() bool {
		_, err := p.GetSession(session.ID)
		return err == ErrSessionNotFound
	}, time.Second*2, time.Millisecond*10)
}
