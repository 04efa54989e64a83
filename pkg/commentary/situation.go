package commentary

// Situation is a named game event the dealer can react to
type Situation string

// Situation constants
const (
	SituationNewRoundWelcome    Situation = "new_round_welcome"
	SituationBettingPhaseStart  Situation = "betting_phase_start"
	SituationBetTooHigh         Situation = "player_attempts_bet_too_high"
	SituationBetTooLow          Situation = "player_attempts_bet_too_low"
	SituationGameStart          Situation = "game_start"
	SituationPlayerHitSafe      Situation = "player_hit_safe"
	SituationPlayerHitBlackjack Situation = "player_hit_blackjack"
	SituationPlayerBlackjack    Situation = "player_blackjack_deal"
	SituationPlayerBust         Situation = "player_bust"
	SituationPlayerStands       Situation = "player_stands"
	SituationPlayerDoublesDown  Situation = "player_doubles_down"
	SituationDealerTurnStart    Situation = "dealer_turn_start"
	SituationDealerHits         Situation = "dealer_hits"
	SituationDealerBusts        Situation = "dealer_busts"
	SituationDealerBlackjack    Situation = "dealer_blackjack"
	SituationPlayerWin          Situation = "win_player"
	SituationDealerWin          Situation = "win_dealer"
	SituationPush               Situation = "push"
	SituationOutOfChips         Situation = "player_out_of_chips_game_over"
)

// Context carries the numeric game context for a situation.
// The adapter is a pure translation layer: nothing in here feeds back into
// the game.
type Context struct {
	PlayerScore int
	DealerScore int
	BetAmount   int
	PlayerChips int
}
