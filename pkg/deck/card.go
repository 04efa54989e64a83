package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits contains every suit in build order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
// A card is dealt face up unless it's the dealer's hole card. FaceUp is the
// only field that changes after the card is created, and it flips exactly
// once, when the hole card is revealed.
type Card struct {
	Rank   int  `json:"rank"`
	Suit   Suit `json:"suit"`
	FaceUp bool `json:"faceUp"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

func (c *Card) String() string {
	if !c.FaceUp {
		return "??"
	}

	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// MarshalJSON only exposes the rank and suit once the card is face up.
// The display client receives the dealer's hole card over the wire, so a
// face-down card must not leak what it is.
func (c *Card) MarshalJSON() ([]byte, error) {
	if !c.FaceUp {
		return json.Marshal(cardJSON{FaceUp: false})
	}

	return json.Marshal(cardJSON{
		Rank:   c.Rank,
		Suit:   c.Suit,
		FaceUp: true,
	})
}

type cardJSON struct {
	Rank   int  `json:"rank,omitempty"`
	Suit   Suit `json:"suit,omitempty"`
	FaceUp bool `json:"faceUp"`
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^(\?)?([0-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs].
// A leading "?" marks the card as face down.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	faceDown := match[1] == "?"

	rank, err := strconv.Atoi(match[2])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[3]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank:   rank,
		Suit:   suit,
		FaceUp: !faceDown,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	faceDown := ""
	if !card.FaceUp {
		faceDown = "?"
	}

	return fmt.Sprintf("%s%d%s", faceDown, card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
