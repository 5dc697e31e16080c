package game

import (
	"fmt"

	"github.com/mkrall/lostcities/internal/models"
)

// PlayTarget selects where a played card lands.
type PlayTarget string

const (
	TargetExpedition PlayTarget = "expedition"
	TargetDiscard    PlayTarget = "discard"
)

// DrawSource selects where a drawn card comes from.
type DrawSource string

const (
	SourceDeck    DrawSource = "deck"
	SourceDiscard DrawSource = "discard"
)

// Put moves one card from the player's hand onto the expedition or
// discard pile of the given color. Discarding is always legal. An
// expedition accepts a handshake at any time and a number card only when
// it is at least the last number played there. On error nothing moves.
func Put(g *models.GameState, card models.Card, p *models.Player, target PlayTarget, color models.Color) error {
	if !models.ValidColor(color) {
		return fmt.Errorf("%w: unknown color %q", ErrInvalidMove, color)
	}
	idx := p.HandIndex(card)
	if idx < 0 {
		return fmt.Errorf("%w: player does not have that card", ErrInvalidMove)
	}
	// Legality is judged on the held card, not the caller's copy of it.
	held := p.Hand[idx]

	switch target {
	case TargetDiscard:
		g.DiscardPiles[color].Push(p.RemoveFromHand(idx))
		return nil
	case TargetExpedition:
		exp := p.Expeditions[color]
		if !held.IsHandshake() {
			if last, ok := exp.LastNumber(); ok && held.Value < last {
				return fmt.Errorf("%w: number card must be >= previous number card", ErrInvalidMove)
			}
		}
		exp.Push(p.RemoveFromHand(idx))
		return nil
	default:
		return fmt.Errorf("%w: unknown play target %q", ErrInvalidMove, target)
	}
}

// Draw moves the top card of the deck, or of one color's discard pile,
// into the player's hand and returns it. Discard draws are LIFO and
// require a color. On error nothing moves.
func Draw(g *models.GameState, p *models.Player, source DrawSource, color *models.Color) (models.Card, error) {
	switch source {
	case SourceDeck:
		if g.DeckEmpty() {
			return models.Card{}, fmt.Errorf("%w: deck is empty", ErrEmptyResource)
		}
		c := g.Deck[len(g.Deck)-1]
		g.Deck = g.Deck[:len(g.Deck)-1]
		p.Hand = append(p.Hand, c)
		return c, nil
	case SourceDiscard:
		if color == nil {
			return models.Card{}, fmt.Errorf("%w: color required when drawing from discard", ErrMissingParameter)
		}
		if !models.ValidColor(*color) {
			return models.Card{}, fmt.Errorf("%w: unknown color %q", ErrInvalidMove, *color)
		}
		c, ok := g.DiscardPiles[*color].Pop()
		if !ok {
			return models.Card{}, fmt.Errorf("%w: discard pile %s is empty", ErrEmptyResource, *color)
		}
		p.Hand = append(p.Hand, c)
		return c, nil
	default:
		return models.Card{}, fmt.Errorf("%w: unknown draw source %q", ErrInvalidMove, source)
	}
}

// Turn executes a full turn: Put, then Draw. A failed Put leaves the
// state untouched and the Draw never runs. A failed Draw after a
// successful Put cannot be rolled back; the returned *TurnError has
// PlayCommitted set so the caller can tell the two apart.
//
// Turn deliberately does not flip CurrentPlayer or detect game end; both
// belong to the orchestrating layer (see handlers).
func Turn(g *models.GameState, p *models.Player, playCard models.Card, playTarget PlayTarget, playColor models.Color, drawSource DrawSource, drawColor *models.Color) error {
	if err := Put(g, playCard, p, playTarget, playColor); err != nil {
		return &TurnError{Err: err}
	}
	if _, err := Draw(g, p, drawSource, drawColor); err != nil {
		return &TurnError{PlayCommitted: true, Err: err}
	}
	return nil
}
