package models

import "github.com/google/uuid"

// Color identifies one of the six expedition routes.
type Color string

const (
	Red    Color = "RED"
	Blue   Color = "BLUE"
	Green  Color = "GREEN"
	Yellow Color = "YELLOW"
	White  Color = "WHITE"
	Purple Color = "PURPLE"
)

// Colors lists every expedition color in a fixed order. Deck building,
// scoring and serialization all iterate this slice so the order is stable.
var Colors = []Color{Red, Blue, Green, Yellow, White, Purple}

// ValidColor reports whether c is one of the six expedition colors.
func ValidColor(c Color) bool {
	switch c {
	case Red, Blue, Green, Yellow, White, Purple:
		return true
	}
	return false
}

// HandshakeValue is the rank of a wager card. Number cards run 2..10;
// there is no value 1 in the game.
const HandshakeValue = 0

// Card is a single physical card. The ID distinguishes the three
// otherwise-identical handshake cards of a color, so removing a card from
// a hand never grabs the wrong duplicate. Color and Value never change
// after the deck is built.
type Card struct {
	ID    uuid.UUID `json:"id"`
	Color Color     `json:"color"`
	Value int       `json:"value"`
}

// NewCard mints a card with a fresh identity token.
func NewCard(color Color, value int) Card {
	return Card{ID: uuid.New(), Color: color, Value: value}
}

// IsHandshake reports whether the card is a wager card.
func (c Card) IsHandshake() bool {
	return c.Value == HandshakeValue
}

// Matches reports whether other refers to the same physical card. When
// both sides carry an ID the IDs decide; otherwise color and value do,
// which keeps hand lookups working for callers that build cards by hand.
func (c Card) Matches(other Card) bool {
	if c.ID != uuid.Nil && other.ID != uuid.Nil {
		return c.ID == other.ID
	}
	return c.Color == other.Color && c.Value == other.Value
}
