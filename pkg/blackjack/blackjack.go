package blackjack

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"modernblackjack-server/internal/rng"
	"modernblackjack-server/pkg/commentary"
	"modernblackjack-server/pkg/deck"
	"modernblackjack-server/pkg/playable"
)

// tick pacing for automated sequences
const (
	dealInterval       = time.Millisecond * 200
	dealerDrawInterval = time.Millisecond * 800
)

// initialDealSize is the number of cards dealt before the player acts
const initialDealSize = 4

// Announcer receives a situation tag plus the numeric context after each
// transition. Implementations must be fire-and-forget: the game never waits
// on them.
type Announcer interface {
	Enabled() bool
	Announce(situation commentary.Situation, c commentary.Context)
}

// Game is a single-player game of Blackjack against the house
type Game struct {
	options   Options
	logger    logrus.FieldLogger
	announcer Announcer
	seeds     rng.Generator

	shoe       *deck.Shoe
	playerHand deck.Hand
	dealerHand deck.Hand

	phase         Phase
	chips         int
	bet           int
	canDoubleDown bool
	outOfChips    bool
	result        Result
	message       string
	showComments  bool

	// dealt tracks progress through the initial deal
	dealt int

	logChan chan []*playable.LogMessage
}

// NewGame returns a new game with a freshly shuffled shoe
func NewGame(logger logrus.FieldLogger, options Options, announcer Announcer) (*Game, error) {
	if options.InitialChips <= 0 {
		return nil, errors.New("initial chips must be > 0")
	}

	if options.MinimumBet <= 0 {
		return nil, errors.New("minimum bet must be > 0")
	}

	if options.DefaultBet < options.MinimumBet {
		return nil, errors.New("default bet must be at least the minimum bet")
	}

	if options.DeckCount <= 0 {
		return nil, errors.New("deck count must be > 0")
	}

	if options.DealerStandScore <= 0 || options.DealerStandScore > blackjackScore {
		return nil, fmt.Errorf("dealer stand score must be between 1 and %d", blackjackScore)
	}

	if options.BlackjackPayout <= 0 {
		return nil, errors.New("blackjack payout must be > 0")
	}

	if announcer == nil {
		announcer = noopAnnouncer{}
	}

	g := &Game{
		options:      options,
		logger:       logger,
		announcer:    announcer,
		seeds:        rng.Crypto{},
		phase:        PhaseIdle,
		chips:        options.InitialChips,
		showComments: true,
		logChan:      make(chan []*playable.LogMessage, 256),
	}

	g.shoe = deck.NewShoe(options.DeckCount)
	g.shoe.Shuffle(g.seeds.Int63())

	g.message = "Welcome to Modern Blackjack! Place your bet."
	g.announce(commentary.SituationNewRoundWelcome, g.bet)
	return g, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Blackjack"
}

// Key returns a unique key
func (g *Game) Key() string {
	return "blackjack"
}

// LogChan should return a channel that a game will send log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Busy returns true while an automated sequence is in progress.
// Player actions other than a restart are rejected while busy; this is the
// single in-progress-sequence guard for the whole round.
func (g *Game) Busy() bool {
	return g.phase == PhaseDealing || g.phase == PhaseDealerTurn
}

// Interval is how long we should wait before the next tick
func (g *Game) Interval() time.Duration {
	if g.phase == PhaseDealing {
		return dealInterval
	}

	return dealerDrawInterval
}

// Tick advances the in-progress automated sequence by one card movement.
// Each tick performs a single reveal so a display can pace the animation;
// calling Tick in a loop until Busy() is false runs the sequence
// synchronously.
func (g *Game) Tick() (bool, error) {
	switch g.phase {
	case PhaseDealing:
		g.dealNextCard()
		return true, nil
	case PhaseDealerTurn:
		g.advanceDealer()
		return true, nil
	}

	return false, nil
}

// Action performs with a message
// If response is not null, that's the response sent directly to the client
// If updateState is true, it will trigger a state update for the connected client
func (g *Game) Action(message *playable.PayloadIn) (*playable.Response, bool, error) {
	action, err := ActionFromString(message.Action)
	if err != nil {
		return nil, false, err
	}

	if g.Busy() && action != ActionRestart && action != ActionToggleComments {
		return nil, false, ErrGameIsBusy
	}

	switch action {
	case ActionPlaceBet:
		amount, _ := message.AdditionalData.GetInt("amount")
		if err := g.placeBet(amount); err != nil {
			// the rejection message still needs to reach the display
			return nil, true, err
		}

		return playable.OK(message.Context), true, nil
	case ActionHit:
		if err := g.hit(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case ActionStand:
		if err := g.stand(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case ActionDoubleDown:
		if err := g.doubleDown(); err != nil {
			if err == ErrCannotDoubleDown {
				return nil, true, err
			}

			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case ActionNextRound:
		if err := g.nextRound(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case ActionRestart:
		g.restart()
		return playable.OK(message.Context), true, nil
	case ActionToggleComments:
		g.showComments = !g.showComments
		return playable.OK(message.Context), true, nil
	}

	return nil, false, fmt.Errorf("unhandled action: %s", action)
}

// draw takes the next card from the shoe, transparently replacing a depleted
// shoe first. Running out of buildable cards is impossible with a fixed deck
// model, so a failed draw is an invariant violation.
func (g *Game) draw() *deck.Card {
	if !g.shoe.CanDraw(1) {
		g.reshuffle()
	}

	card, err := g.shoe.Draw()
	if err != nil {
		panic(fmt.Sprintf("draw failed on a replenished shoe: %v", err))
	}

	return card
}

// reshuffle replaces the shoe wholesale with a fresh shuffled one
func (g *Game) reshuffle() {
	g.shoe.Shuffle(g.seeds.Int63())
	g.logger.WithField("cards", g.shoe.CardsLeft()).Debug("built a fresh shoe")
	g.sendLogMessages(playable.SimpleLogMessageSlice("Dealer swaps in a freshly shuffled %d-deck shoe", g.options.DeckCount))
}

// announce fires a commentary request for the current game context.
// betAmount is passed explicitly because several transitions report a bet the
// game no longer holds (a rejected amount, a just-doubled stake).
func (g *Game) announce(situation commentary.Situation, betAmount int) {
	if !g.showComments {
		return
	}

	g.announcer.Announce(situation, commentary.Context{
		PlayerScore: Score(g.playerHand),
		DealerScore: Score(g.dealerHand),
		BetAmount:   betAmount,
		PlayerChips: g.chips,
	})
}

func (g *Game) sendLogMessages(msgs []*playable.LogMessage) {
	select {
	case g.logChan <- msgs:
	default:
		g.logger.Warn("log channel full, dropping messages")
	}
}

func (g *Game) sendLogMessage(card *deck.Card, format string, a ...interface{}) {
	msg := playable.SimpleLogMessage(format, a...)
	if card != nil {
		msg.Cards = []*deck.Card{card}
	}

	g.sendLogMessages([]*playable.LogMessage{msg})
}

type noopAnnouncer struct{}

func (noopAnnouncer) Enabled() bool { return false }

func (noopAnnouncer) Announce(commentary.Situation, commentary.Context) {}
