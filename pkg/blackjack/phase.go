package blackjack

// Phase is the phase of the current round
type Phase string

// Phase constants
const (
	// PhaseIdle is before the first round starts or after a full restart
	PhaseIdle Phase = "idle"

	// PhaseBetting means the player is placing a bet
	PhaseBetting Phase = "betting"

	// PhaseDealing means the initial deal is in progress
	PhaseDealing Phase = "dealing"

	// PhasePlayerTurn means the player may hit, stand, or double down
	PhasePlayerTurn Phase = "player-turn"

	// PhaseDealerTurn means the dealer's auto-play is in progress
	PhaseDealerTurn Phase = "dealer-turn"

	// PhaseRoundOver means the round ended and payouts have been applied
	PhaseRoundOver Phase = "round-over"
)
