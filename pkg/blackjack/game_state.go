package blackjack

import (
	"modernblackjack-server/pkg/deck"
	"modernblackjack-server/pkg/playable"
)

// State is the snapshot the display client renders from.
// It is read-only for the client; nothing in it feeds back into the game.
type State struct {
	Phase           Phase     `json:"phase"`
	PlayerHand      deck.Hand `json:"playerHand"`
	DealerHand      deck.Hand `json:"dealerHand"`
	PlayerScore     int       `json:"playerScore"`
	DealerScore     int       `json:"dealerScore"`
	PlayerChips     int       `json:"playerChips"`
	CurrentBet      int       `json:"currentBet"`
	MinimumBet      int       `json:"minimumBet"`
	DefaultBet      int       `json:"defaultBet"`
	CanDoubleDown   bool      `json:"canDoubleDown"`
	Busy            bool      `json:"busy"`
	OutOfChips      bool      `json:"outOfChips"`
	CommentsEnabled bool      `json:"commentsEnabled"`
	Message         string    `json:"message"`
	Result          Result    `json:"result"`
	CardsRemaining  int       `json:"cardsRemaining"`
	Actions         []Action  `json:"actions"`
}

// GetState returns the current state of the game for the display client
func (g *Game) GetState() (*playable.Response, error) {
	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  g.buildState(),
	}, nil
}

func (g *Game) buildState() *State {
	playerHand := g.playerHand
	if playerHand == nil {
		playerHand = deck.Hand{}
	}

	dealerHand := g.dealerHand
	if dealerHand == nil {
		dealerHand = deck.Hand{}
	}

	return &State{
		Phase:           g.phase,
		PlayerHand:      playerHand,
		DealerHand:      dealerHand,
		PlayerScore:     Score(g.playerHand),
		DealerScore:     Score(g.dealerHand),
		PlayerChips:     g.chips,
		CurrentBet:      g.bet,
		MinimumBet:      g.options.MinimumBet,
		DefaultBet:      g.options.DefaultBet,
		CanDoubleDown:   g.canDoubleDown,
		Busy:            g.Busy(),
		OutOfChips:      g.outOfChips,
		CommentsEnabled: g.showComments && g.announcer.Enabled(),
		Message:         g.message,
		Result:          g.result,
		CardsRemaining:  g.shoe.CardsLeft(),
		Actions:         g.availableActions(),
	}
}
