package blackjack

import "modernblackjack-server/pkg/deck"

// scoring constants
const (
	blackjackScore = 21
	faceCardValue  = 10
	aceHighValue   = 11
	aceLowValue    = 1
)

// Score returns the best Blackjack total for the hand.
// Only face-up cards count; the dealer's hole card contributes nothing until
// it's revealed. Aces start at 11 and are demoted to 1 one at a time while
// the total is over 21, which yields the maximal total <= 21 achievable by
// any high/low ace assignment, or the minimal overshoot on an unavoidable
// bust.
func Score(hand deck.Hand) int {
	value := 0
	aceCount := 0

	for _, card := range hand {
		if !card.FaceUp {
			continue
		}

		switch {
		case card.Rank == deck.Ace:
			aceCount++
			value += aceHighValue
		case card.Rank >= deck.Jack:
			value += faceCardValue
		default:
			value += card.Rank
		}
	}

	for value > blackjackScore && aceCount > 0 {
		value -= aceHighValue - aceLowValue
		aceCount--
	}

	return value
}

// IsBlackjack returns true if the hand is a natural: exactly two cards
// totalling 21
func IsBlackjack(hand deck.Hand) bool {
	return len(hand) == 2 && Score(hand) == blackjackScore
}

// isBust returns true if the score is over 21
func isBust(score int) bool {
	return score > blackjackScore
}
