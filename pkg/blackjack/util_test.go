package blackjack

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"modernblackjack-server/pkg/commentary"
	"modernblackjack-server/pkg/deck"
	"modernblackjack-server/pkg/playable"
)

func testGame(t *testing.T, opts Options) *Game {
	t.Helper()

	g, err := NewGame(logrus.StandardLogger(), opts, nil)
	assert.NoError(t, err)
	assert.NotNil(t, g)

	return g
}

// riggedGame returns a game whose shoe will deal the given cards in order.
// The rig is padded with twos so the initial deal never trips the safety
// reshuffle.
func riggedGame(t *testing.T, cards string) *Game {
	t.Helper()

	g := testGame(t, DefaultOptions())
	rigged := deck.CardsFromString(cards)
	for len(rigged) < 16 {
		rigged = append(rigged, deck.CardFromString("2c"))
	}

	g.shoe.Cards = rigged
	return g
}

// runTicks drives an automated sequence to completion, the way the session
// loop would with pacing
func runTicks(t *testing.T, g *Game) {
	t.Helper()

	for i := 0; g.Busy(); i++ {
		if i > 50 {
			t.Fatal("automated sequence did not terminate")
		}

		_, err := g.Tick()
		assert.NoError(t, err)
	}
}

func doAction(g *Game, action string, data playable.AdditionalData) error {
	_, _, err := g.Action(&playable.PayloadIn{Action: action, AdditionalData: data})
	return err
}

// betAndDeal places a bet and runs the initial deal to completion
func betAndDeal(t *testing.T, g *Game, amount int) {
	t.Helper()

	assert.NoError(t, doAction(g, "bet", playable.AdditionalData{"amount": float64(amount)}))
	assert.Equal(t, PhaseDealing, g.phase)
	runTicks(t, g)
}

// recordingAnnouncer captures announced situations for assertions
type recordingAnnouncer struct {
	mu         sync.Mutex
	situations []commentary.Situation
	contexts   []commentary.Context
}

func (r *recordingAnnouncer) Enabled() bool { return true }

func (r *recordingAnnouncer) Announce(s commentary.Situation, c commentary.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.situations = append(r.situations, s)
	r.contexts = append(r.contexts, c)
}

func (r *recordingAnnouncer) last() (commentary.Situation, commentary.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.situations) == 0 {
		return "", commentary.Context{}
	}

	return r.situations[len(r.situations)-1], r.contexts[len(r.contexts)-1]
}
