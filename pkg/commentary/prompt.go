package commentary

import "fmt"

const promptPreamble = "You are a witty, slightly sarcastic, and experienced Blackjack dealer. " +
	"Provide a very short, single-sentence comment (max 15 words) for a Blackjack game. "

// promptFor builds the instruction sent to the language model for a situation
func promptFor(situation Situation, ctx Context) string {
	var detail string

	switch situation {
	case SituationNewRoundWelcome:
		detail = "Welcome to the table! Or, welcome back if you dare."
	case SituationBettingPhaseStart:
		detail = fmt.Sprintf("Place your bets. Chips: %d. Don't be shy.", ctx.PlayerChips)
	case SituationBetTooHigh:
		detail = fmt.Sprintf("Betting %d with %d chips? Ambitious, but no.", ctx.BetAmount, ctx.PlayerChips)
	case SituationBetTooLow:
		detail = fmt.Sprintf("A %d chip bet? The minimum is a bit higher, pal.", ctx.BetAmount)
	case SituationGameStart:
		detail = fmt.Sprintf("Bet of %d locked in. Cards are out. Good luck.", ctx.BetAmount)
	case SituationPlayerHitSafe:
		detail = fmt.Sprintf("Hit. Score: %d. Still in it.", ctx.PlayerScore)
	case SituationPlayerHitBlackjack:
		detail = fmt.Sprintf("Hit to Blackjack (%d)! Well played.", ctx.PlayerScore)
	case SituationPlayerBlackjack:
		detail = fmt.Sprintf("Player Blackjack! That's a sweet payout on %d chips.", ctx.BetAmount)
	case SituationPlayerBust:
		detail = fmt.Sprintf("Player busts at %d. My favorite sound. Lost %d chips.", ctx.PlayerScore, ctx.BetAmount)
	case SituationPlayerStands:
		detail = fmt.Sprintf("Player stands on %d. My turn to shine.", ctx.PlayerScore)
	case SituationPlayerDoublesDown:
		detail = fmt.Sprintf("Doubling down on %d? Bold. Here's your card.", ctx.BetAmount/2)
	case SituationDealerTurnStart:
		detail = fmt.Sprintf("Dealer's turn. My visible card gives me %d. You stood on %d.", ctx.DealerScore, ctx.PlayerScore)
	case SituationDealerHits:
		detail = fmt.Sprintf("Dealer hits. Score's %d.", ctx.DealerScore)
	case SituationDealerBusts:
		detail = fmt.Sprintf("Dealer busts at %d! Your %d chips are safe... and doubled.", ctx.DealerScore, ctx.BetAmount)
	case SituationDealerBlackjack:
		detail = fmt.Sprintf("Dealer Blackjack! House always has an edge. Bad luck for your %d chips.", ctx.BetAmount)
	case SituationPlayerWin:
		detail = fmt.Sprintf("Player wins: %d vs %d. You get %d.", ctx.PlayerScore, ctx.DealerScore, ctx.BetAmount*2)
	case SituationDealerWin:
		detail = fmt.Sprintf("Dealer wins: %d vs %d. Those %d chips are mine.", ctx.DealerScore, ctx.PlayerScore, ctx.BetAmount)
	case SituationPush:
		detail = fmt.Sprintf("Push! %d ties %d. Your %d chips are safe. For now.", ctx.PlayerScore, ctx.DealerScore, ctx.BetAmount)
	case SituationOutOfChips:
		detail = "Out of chips! Game over. Maybe try checkers?"
	default:
		detail = "Well, that was something."
	}

	return promptPreamble + detail
}
