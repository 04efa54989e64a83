package blackjack

import (
	"fmt"

	"modernblackjack-server/pkg/commentary"
	"modernblackjack-server/pkg/deck"
)

// placeBet validates the bet, deducts it, and starts the initial deal.
// A rejected bet changes nothing except the user-visible message.
func (g *Game) placeBet(amount int) error {
	if g.phase != PhaseIdle && g.phase != PhaseBetting {
		return fmt.Errorf("cannot place a bet from phase: %s", g.phase)
	}

	if amount < g.options.MinimumBet {
		g.message = fmt.Sprintf("Minimum bet is %d.", g.options.MinimumBet)
		g.announce(commentary.SituationBetTooLow, amount)
		return BetError{Amount: amount, Minimum: g.options.MinimumBet, Chips: g.chips}
	}

	if amount > g.chips {
		g.message = "Not enough chips for that bet."
		g.announce(commentary.SituationBetTooHigh, amount)
		return BetError{Amount: amount, Minimum: g.options.MinimumBet, Chips: g.chips}
	}

	g.chips -= amount
	g.bet = amount
	g.playerHand = deck.Hand{}
	g.dealerHand = deck.Hand{}
	g.canDoubleDown = false
	g.result = ResultPending
	g.dealt = 0

	if g.shoe.NeedsReshuffle(g.options.ReshuffleThreshold) {
		g.reshuffle()
	}

	g.phase = PhaseDealing
	g.message = "Dealing..."
	g.sendLogMessage(nil, "Player bets %d chips", amount)
	return nil
}

// dealNextCard deals one card of the initial deal: player, dealer, player,
// then the dealer's hole card face down. Must only be called from Tick().
func (g *Game) dealNextCard() {
	card := g.draw()

	switch g.dealt {
	case 0, 2:
		g.playerHand.AddCard(card)
		g.sendLogMessage(card, "Dealt %s to the player", card)
	case 1:
		g.dealerHand.AddCard(card)
		g.sendLogMessage(card, "Dealt %s to the dealer", card)
	case 3:
		card.FaceUp = false
		g.dealerHand.AddCard(card)
		g.sendLogMessage(card, "Dealt the hole card to the dealer")
	default:
		panic(fmt.Sprintf("dealt too many cards: %d", g.dealt))
	}

	g.dealt++
	if g.dealt == initialDealSize {
		g.finishDeal()
	}
}

// finishDeal checks for naturals before the player's turn begins.
// Either natural ends the round without entering the player turn.
func (g *Game) finishDeal() {
	g.announce(commentary.SituationGameStart, g.bet)

	if IsBlackjack(g.playerHand) {
		g.dealerHand.RevealAll()

		if IsBlackjack(g.dealerHand) {
			g.chips += g.bet
			g.message = "Push! Both Blackjack."
			g.announce(commentary.SituationPush, g.bet)
			g.sendLogMessage(nil, "Both player and dealer have Blackjack")
			g.endRound(ResultPush)
			return
		}

		profit := int(float64(g.bet) * g.options.BlackjackPayout)
		g.chips += g.bet + profit
		g.message = fmt.Sprintf("Blackjack! You win %d chips!", profit)
		g.announce(commentary.SituationPlayerBlackjack, g.bet)
		g.sendLogMessage(nil, "Player has Blackjack, wins %d chips", profit)
		g.endRound(ResultPlayerWin)
		return
	}

	// check the hole card without flipping the real hand; the reveal itself
	// belongs to the dealer's turn
	revealed := make(deck.Hand, len(g.dealerHand))
	for i, c := range g.dealerHand {
		revealed[i] = &deck.Card{Rank: c.Rank, Suit: c.Suit, FaceUp: true}
	}

	if IsBlackjack(revealed) {
		g.message = fmt.Sprintf("Dealer Blackjack! You lose %d chips.", g.bet)
		g.announce(commentary.SituationDealerBlackjack, g.bet)
		g.sendLogMessage(nil, "Dealer has Blackjack")
		g.endRound(ResultDealerWin)
		return
	}

	g.phase = PhasePlayerTurn
	g.canDoubleDown = g.chips >= g.bet
	g.message = "Your turn. Hit, Stand, or Double Down?"
}

// hit draws one card into the player's hand
func (g *Game) hit() error {
	if g.phase != PhasePlayerTurn {
		return fmt.Errorf("cannot hit from phase: %s", g.phase)
	}

	card := g.draw()
	g.playerHand.AddCard(card)
	g.canDoubleDown = false
	g.sendLogMessage(card, "Player hits, drew %s", card)

	score := Score(g.playerHand)
	switch {
	case isBust(score):
		g.message = fmt.Sprintf("Bust! You lose %d chips.", g.bet)
		g.announce(commentary.SituationPlayerBust, g.bet)
		g.endRound(ResultPlayerBust)
	case score == blackjackScore:
		g.message = "21! Dealer's turn."
		g.announce(commentary.SituationPlayerHitBlackjack, g.bet)
		g.phase = PhaseDealerTurn
	default:
		g.message = "Hit or Stand?"
		g.announce(commentary.SituationPlayerHitSafe, g.bet)
	}

	return nil
}

// stand ends the player's turn
func (g *Game) stand() error {
	if g.phase != PhasePlayerTurn {
		return fmt.Errorf("cannot stand from phase: %s", g.phase)
	}

	g.canDoubleDown = false
	g.phase = PhaseDealerTurn
	g.message = "Dealer's turn..."
	g.announce(commentary.SituationPlayerStands, g.bet)
	g.sendLogMessage(nil, "Player stands on %d", Score(g.playerHand))
	return nil
}

// doubleDown doubles the stake for exactly one more card.
// Eligibility ends after any other action this turn; an attempt without the
// chips to cover it is a no-op beyond the message.
func (g *Game) doubleDown() error {
	if g.phase != PhasePlayerTurn || !g.canDoubleDown || g.chips < g.bet {
		g.message = "Cannot Double Down."
		return ErrCannotDoubleDown
	}

	g.chips -= g.bet
	g.bet *= 2
	g.canDoubleDown = false

	card := g.draw()
	g.playerHand.AddCard(card)
	g.sendLogMessage(card, "Player doubles down to %d chips, drew %s", g.bet, card)
	g.announce(commentary.SituationPlayerDoublesDown, g.bet)

	score := Score(g.playerHand)
	if isBust(score) {
		g.message = fmt.Sprintf("Bust after Doubling! You lose %d chips.", g.bet)
		g.endRound(ResultPlayerBust)
		return nil
	}

	// no further hits after a double down, regardless of the score
	g.message = fmt.Sprintf("Doubled to %d. Dealer's turn.", score)
	g.phase = PhaseDealerTurn
	return nil
}

// advanceDealer performs one step of the dealer's auto-play: first the hole
// card reveal, then one draw per tick until the dealer stands or busts.
// Must only be called from Tick().
func (g *Game) advanceDealer() {
	if hole := g.dealerHand.LastCard(); hole != nil && !hole.FaceUp {
		g.dealerHand.RevealAll()
		score := Score(g.dealerHand)
		g.sendLogMessage(g.dealerHand.LastCard(), "Dealer reveals the hole card, showing %d", score)
		g.announce(commentary.SituationDealerTurnStart, g.bet)
		return
	}

	score := Score(g.dealerHand)
	if score < g.options.DealerStandScore {
		card := g.draw()
		g.dealerHand.AddCard(card)
		g.sendLogMessage(card, "Dealer hits, drew %s", card)
		g.announce(commentary.SituationDealerHits, g.bet)
		return
	}

	g.settle()
}

// settle applies the payout once the dealer has finished drawing
func (g *Game) settle() {
	playerScore := Score(g.playerHand)
	dealerScore := Score(g.dealerHand)

	payout, result := Resolve(playerScore, dealerScore, g.bet)
	g.chips += payout

	switch result {
	case ResultDealerBust:
		g.message = fmt.Sprintf("Dealer Busts! You Win %d chips!", g.bet)
		g.announce(commentary.SituationDealerBusts, g.bet)
	case ResultPlayerWin:
		g.message = fmt.Sprintf("You Win %d chips!", g.bet)
		g.announce(commentary.SituationPlayerWin, g.bet)
	case ResultDealerWin:
		g.message = fmt.Sprintf("Dealer Wins! You lose %d chips.", g.bet)
		g.announce(commentary.SituationDealerWin, g.bet)
	case ResultPush:
		g.message = "Push! Bet returned."
		g.announce(commentary.SituationPush, g.bet)
	}

	g.sendLogMessage(nil, "Round over: player %d, dealer %d", playerScore, dealerScore)
	g.endRound(result)
}

// endRound moves to RoundOver and checks whether the player can continue
func (g *Game) endRound(result Result) {
	g.result = result
	g.phase = PhaseRoundOver

	if g.chips < g.options.MinimumBet {
		g.outOfChips = true

		if g.chips <= 0 {
			g.message = "Game Over! You're out of chips. Restart to play again. Final Chips: 0"
		} else {
			g.message = fmt.Sprintf("Not enough chips for minimum bet. Game Over. Final Chips: %d", g.chips)
		}

		g.announce(commentary.SituationOutOfChips, g.bet)
		g.sendLogMessage(nil, "Player is out of chips")
	}
}

// nextRound starts a new betting phase with the shoe carried over
func (g *Game) nextRound() error {
	if g.phase != PhaseRoundOver {
		return fmt.Errorf("cannot start the next round from phase: %s", g.phase)
	}

	if g.outOfChips || g.chips < g.options.MinimumBet {
		return ErrOutOfChips
	}

	g.playerHand = nil
	g.dealerHand = nil
	g.bet = 0
	g.canDoubleDown = false
	g.result = ResultPending

	if g.shoe.NeedsReshuffle(g.options.ReshuffleThreshold) {
		g.reshuffle()
	}

	g.phase = PhaseBetting
	g.message = fmt.Sprintf("Place your bet. Chips: %d", g.chips)
	g.announce(commentary.SituationBettingPhaseStart, 0)
	return nil
}

// restart resets the game to its initial stake with a fresh shoe.
// Unlike every other action, a restart is valid from any phase, even while
// an automated sequence is running.
func (g *Game) restart() {
	g.chips = g.options.InitialChips
	g.bet = 0
	g.playerHand = nil
	g.dealerHand = nil
	g.canDoubleDown = false
	g.outOfChips = false
	g.result = ResultPending
	g.dealt = 0

	g.shoe = deck.NewShoe(g.options.DeckCount)
	g.shoe.Shuffle(g.seeds.Int63())

	g.phase = PhaseIdle
	g.message = "Welcome to Modern Blackjack! Place your bet."
	g.announce(commentary.SituationNewRoundWelcome, 0)
	g.sendLogMessage(nil, "Game restarted with %d chips", g.chips)
}
