package blackjack

// Options contains options for creating a new game of Blackjack
type Options struct {
	// InitialChips is the stake the player starts with
	InitialChips int

	// MinimumBet is the smallest bet accepted
	MinimumBet int

	// DefaultBet is the bet suggested to the betting controls
	DefaultBet int

	// DeckCount is the number of standard decks in the shoe
	DeckCount int

	// DealerStandScore is the total the dealer stands on
	DealerStandScore int

	// BlackjackPayout is the profit multiplier for a natural (3:2 pays 1.5)
	BlackjackPayout float64

	// ReshuffleThreshold replaces the shoe before a deal once fewer cards remain
	ReshuffleThreshold int
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		InitialChips:       100,
		MinimumBet:         5,
		DefaultBet:         10,
		DeckCount:          4,
		DealerStandScore:   17,
		BlackjackPayout:    1.5,
		ReshuffleThreshold: 10,
	}
}
