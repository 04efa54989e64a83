package deck

// Hand represents an ordered collection of cards belonging to one participant
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// FirstCard returns the first card in the hand or nil if the hand is empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the hand is empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

// FaceUpCards returns the cards in the hand that are face up
func (h Hand) FaceUpCards() []*Card {
	cards := make([]*Card, 0, len(h))
	for _, c := range h {
		if c.FaceUp {
			cards = append(cards, c)
		}
	}

	return cards
}

// RevealAll turns every card in the hand face up
func (h Hand) RevealAll() {
	for _, c := range h {
		c.FaceUp = true
	}
}

func (h Hand) String() string {
	return CardsToString(h)
}
