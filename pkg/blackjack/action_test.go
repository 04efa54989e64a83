package blackjack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	for _, id := range []string{"bet", "hit", "stand", "double-down", "next-round", "restart", "toggle-comments"} {
		action, err := ActionFromString(id)
		a.NoError(err)
		a.Equal(id, action.id())
	}

	_, err := ActionFromString("split")
	a.EqualError(err, "invalid action: split")
}

func TestAction_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(ActionDoubleDown)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"double-down","name":"Double Down"}`, string(b))
}

func TestGame_availableActions(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, DefaultOptions())
	a.Equal([]Action{ActionPlaceBet, ActionRestart, ActionToggleComments}, g.availableActions())

	g.phase = PhasePlayerTurn
	g.canDoubleDown = true
	a.Equal([]Action{ActionHit, ActionStand, ActionDoubleDown, ActionRestart, ActionToggleComments}, g.availableActions())

	g.canDoubleDown = false
	a.Equal([]Action{ActionHit, ActionStand, ActionRestart, ActionToggleComments}, g.availableActions())

	// automated sequences leave only the escape hatches
	g.phase = PhaseDealerTurn
	a.Equal([]Action{ActionRestart, ActionToggleComments}, g.availableActions())

	g.phase = PhaseRoundOver
	a.Equal([]Action{ActionNextRound, ActionRestart, ActionToggleComments}, g.availableActions())

	g.outOfChips = true
	a.Equal([]Action{ActionRestart, ActionToggleComments}, g.availableActions())
}
