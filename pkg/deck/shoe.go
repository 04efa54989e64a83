package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfShoe is an error when Draw() is attempted and there are no more cards
var ErrEndOfShoe = errors.New("end of shoe reached")

// CardsPerDeck is the number of cards in a single standard deck
const CardsPerDeck = 52

// Shoe represents a multi-deck dealing shoe
type Shoe struct {
	Cards     []*Card `json:"cards"`
	deckCount int
	seed      int64
	rng       *rand.Rand
}

// NewShoe returns a new shoe built from deckCount standard decks.
// Important! the shoe is unshuffled. You must call the Shuffle() method to shuffle the cards
func NewShoe(deckCount int) *Shoe {
	if deckCount <= 0 {
		panic("deckCount must be > 0")
	}

	s := &Shoe{
		deckCount: deckCount,
		seed:      -1,
	}

	s.buildShoe()
	return s
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (s *Shoe) SetSeed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (s *Shoe) buildShoe() {
	cards := make([]*Card, 0, s.deckCount*CardsPerDeck)
	for i := 0; i < s.deckCount; i++ {
		for _, suit := range Suits {
			for rank := 2; rank <= Ace; rank++ {
				cards = append(cards, &Card{
					Rank:   rank,
					Suit:   suit,
					FaceUp: true,
				})
			}
		}
	}

	s.Cards = cards
}

// Shuffle rebuilds the shoe from fresh decks and shuffles it.
// A depleted shoe is always replaced wholesale; cards already drawn are never
// merged back in. You can manually specify the seed, or you can leave it as 0
// to shuffle from the current time.
func (s *Shoe) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	s.buildShoe()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.SetSeed(seed)

	for j := len(s.Cards) - 1; j > 0; j-- {
		i := s.rng.Intn(j + 1)

		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the shoe
func (s *Shoe) GetSeed() int64 {
	return s.seed
}

// DeckCount returns the number of decks the shoe is built from
func (s *Shoe) DeckCount() int {
	return s.deckCount
}

// HashCode returns a SHA1 hash code of the shoe.
func (s *Shoe) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range s.Cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfShoe is returned along with a nil card.
func (s *Shoe) Draw() (*Card, error) {
	if len(s.Cards) <= 0 {
		return nil, ErrEndOfShoe
	}

	card := s.Cards[0]
	s.Cards = s.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the shoe
func (s *Shoe) CanDraw(want int) bool {
	return len(s.Cards) >= want
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}

// NeedsReshuffle returns true if the shoe has been drawn down below the
// safety threshold and should be replaced before the next deal
func (s *Shoe) NeedsReshuffle(threshold int) bool {
	return len(s.Cards) < threshold
}
