package blackjack

// Result is the outcome category of a finished round
type Result string

// Result constants
const (
	ResultPending    Result = ""
	ResultPlayerBust Result = "player-bust"
	ResultDealerBust Result = "dealer-bust"
	ResultPlayerWin  Result = "player-win"
	ResultDealerWin  Result = "dealer-win"
	ResultPush       Result = "push"
)

// Resolve maps final player and dealer totals to a payout and a result
// category. The bet was already deducted when it was placed, so the payout is
// the amount returned to the player: a win pays the bet back doubled, a push
// returns the bet, and a loss returns nothing. Natural Blackjacks and doubled
// stakes are settled inline at their transitions, not here.
func Resolve(playerScore, dealerScore, bet int) (int, Result) {
	switch {
	case isBust(playerScore):
		return 0, ResultPlayerBust
	case isBust(dealerScore):
		return 2 * bet, ResultDealerBust
	case playerScore > dealerScore:
		return 2 * bet, ResultPlayerWin
	case dealerScore > playerScore:
		return 0, ResultDealerWin
	}

	return bet, ResultPush
}
