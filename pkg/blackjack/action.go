package blackjack

import (
	"encoding/json"
	"fmt"
)

// Action is an action the player can take
type Action int

// Action constants
const (
	ActionPlaceBet Action = iota
	ActionHit
	ActionStand
	ActionDoubleDown
	ActionNextRound
	ActionRestart
	ActionToggleComments
)

// MarshalJSON encodes the JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   a.id(),
		Name: a.String(),
	})
}

func (a Action) id() string {
	switch a {
	case ActionPlaceBet:
		return "bet"
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionDoubleDown:
		return "double-down"
	case ActionNextRound:
		return "next-round"
	case ActionRestart:
		return "restart"
	case ActionToggleComments:
		return "toggle-comments"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

func (a Action) String() string {
	switch a {
	case ActionPlaceBet:
		return "Place Bet"
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	case ActionDoubleDown:
		return "Double Down"
	case ActionNextRound:
		return "Next Round"
	case ActionRestart:
		return "Restart"
	case ActionToggleComments:
		return "Toggle Dealer Comments"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from its client identifier
func ActionFromString(action string) (Action, error) {
	for a := ActionPlaceBet; a <= ActionToggleComments; a++ {
		if a.id() == action {
			return a, nil
		}
	}

	return -1, fmt.Errorf("invalid action: %s", action)
}

// availableActions returns the actions the player may take right now
// Automated sequences (dealing, dealer auto-play) leave only the restart
// escape hatch available.
func (g *Game) availableActions() []Action {
	actions := make([]Action, 0, 4)

	if !g.Busy() {
		switch g.phase {
		case PhaseIdle, PhaseBetting:
			actions = append(actions, ActionPlaceBet)
		case PhasePlayerTurn:
			actions = append(actions, ActionHit, ActionStand)
			if g.canDoubleDown {
				actions = append(actions, ActionDoubleDown)
			}
		case PhaseRoundOver:
			if !g.outOfChips {
				actions = append(actions, ActionNextRound)
			}
		}
	}

	return append(actions, ActionRestart, ActionToggleComments)
}
