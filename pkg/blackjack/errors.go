package blackjack

import (
	"errors"
	"fmt"
)

// ErrGameIsBusy is returned when a player action arrives while an automated
// sequence (the initial deal or the dealer's auto-play) is in progress
var ErrGameIsBusy = errors.New("an automated sequence is in progress")

// ErrCannotDoubleDown is returned when a double down is attempted while ineligible
var ErrCannotDoubleDown = errors.New("cannot double down")

// ErrOutOfChips is returned when the player cannot cover the minimum bet
var ErrOutOfChips = errors.New("not enough chips for the minimum bet")

// BetError is a validation error on a bet amount
// A rejected bet mutates nothing beyond the user-visible message.
type BetError struct {
	Amount  int
	Minimum int
	Chips   int
}

// TooLow returns true if the bet was below the table minimum
func (b BetError) TooLow() bool {
	return b.Amount < b.Minimum
}

func (b BetError) Error() string {
	if b.TooLow() {
		return fmt.Sprintf("minimum bet is %d", b.Minimum)
	}

	return fmt.Sprintf("bet of %d exceeds your %d chips", b.Amount, b.Chips)
}
