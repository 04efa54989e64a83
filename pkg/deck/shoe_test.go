package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShoe(t *testing.T) {
	a := assert.New(t)

	shoe := NewShoe(4)
	a.Equal(208, shoe.CardsLeft())
	a.Equal(4, shoe.DeckCount())

	rankCount := make(map[int]int)
	suitCount := make(map[Suit]int)
	for _, card := range shoe.Cards {
		rankCount[card.Rank]++
		suitCount[card.Suit]++
		a.True(card.FaceUp)
	}

	a.Equal(13, len(rankCount))
	for rank := 2; rank <= Ace; rank++ {
		a.Equal(16, rankCount[rank], "rank %d", rank)
	}

	a.Equal(4, len(suitCount))
	for _, suit := range Suits {
		a.Equal(52, suitCount[suit], "suit %s", suit)
	}

	a.PanicsWithValue("deckCount must be > 0", func() {
		NewShoe(0)
	})
}

func TestShoe_Shuffle(t *testing.T) {
	a := assert.New(t)

	shoe := NewShoe(1)
	unshuffled := shoe.HashCode()

	shoe.Shuffle(1)
	a.Equal(int64(1), shoe.GetSeed())
	seeded := shoe.HashCode()
	a.NotEqual(unshuffled, seeded)

	// same seed, same order
	shoe2 := NewShoe(1)
	shoe2.Shuffle(1)
	a.Equal(seeded, shoe2.HashCode())

	a.PanicsWithValue("seed cannot be < 0", func() {
		shoe.Shuffle(-1)
	})
}

func TestShoe_Shuffle_PreservesCards(t *testing.T) {
	shoe := NewShoe(4)
	shoe.Shuffle(42)

	assert.Equal(t, 208, shoe.CardsLeft())

	count := make(map[string]int)
	for _, card := range shoe.Cards {
		count[CardToString(card)]++
	}

	// every rank/suit combination appears exactly once per deck
	assert.Equal(t, 52, len(count))
	for key, n := range count {
		assert.Equal(t, 4, n, "card %s", key)
	}
}

func TestShoe_Shuffle_Distribution(t *testing.T) {
	// shuffles from distinct seeds should essentially never produce the
	// identity permutation or repeat one another
	seen := make(map[string]bool)
	for seed := int64(1); seed <= 50; seed++ {
		shoe := NewShoe(1)
		unshuffled := shoe.HashCode()

		shoe.Shuffle(seed)
		hash := shoe.HashCode()
		assert.NotEqual(t, unshuffled, hash, "seed %d produced identity permutation", seed)
		assert.False(t, seen[hash], "seed %d repeated an earlier permutation", seed)
		seen[hash] = true
	}

	// a uniform shuffle leaves ~1 card in its original position on average
	const trials = 200
	fixedPoints := 0
	for seed := int64(1); seed <= trials; seed++ {
		reference := NewShoe(1)
		shoe := NewShoe(1)
		shoe.Shuffle(seed)

		for i, card := range shoe.Cards {
			if card.Equal(reference.Cards[i]) {
				fixedPoints++
			}
		}
	}

	avg := float64(fixedPoints) / trials
	assert.Greater(t, avg, 0.5)
	assert.Less(t, avg, 2.0)
}

func TestShoe_Draw(t *testing.T) {
	shoe := NewShoe(4)

	if !shoe.CanDraw(208) {
		t.Errorf("expected CanDraw(208) to be true")
	}

	if shoe.CanDraw(209) {
		t.Errorf("expected CanDraw(209) to be false")
	}

	for i := 0; i < 208; i++ {
		before := shoe.CardsLeft()
		card, err := shoe.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}

		if shoe.CardsLeft() != before-1 {
			t.Errorf("expected draw to shrink the shoe by exactly one")
		}

		// the drawn card instance must no longer be in the shoe
		for _, c := range shoe.Cards {
			if c == card {
				t.Errorf("drawn card %s still present in the shoe", card)
			}
		}
	}

	if shoe.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := shoe.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfShoe {
		t.Errorf("expected err to be ErrEndOfShoe, got %#v", err)
	}

	shoe.Shuffle(1)
	if !shoe.CanDraw(208) {
		t.Errorf("expected Shuffle() to rebuild the shoe")
	}
}

func TestShoe_NeedsReshuffle(t *testing.T) {
	a := assert.New(t)

	shoe := NewShoe(1)
	a.False(shoe.NeedsReshuffle(10))

	for i := 0; i < 43; i++ {
		_, err := shoe.Draw()
		a.NoError(err)
	}

	a.False(shoe.NeedsReshuffle(shoe.CardsLeft()), fmt.Sprintf("%d cards left", shoe.CardsLeft()))
	a.True(shoe.NeedsReshuffle(10))
}
