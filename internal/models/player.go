package models

// Player holds one side of the table: a hand of cards and one expedition
// stack per color. Score is a display cache populated by the transport
// layer at game end; the rules engine never writes it mid-game.
type Player struct {
	Hand        []Card           `json:"hand"`
	Expeditions map[Color]*Stack `json:"expeditions"`
	Score       int              `json:"score"`
}

// NewPlayer returns a player with an empty hand and six empty expeditions.
func NewPlayer() *Player {
	exps := make(map[Color]*Stack, len(Colors))
	for _, c := range Colors {
		exps[c] = &Stack{}
	}
	return &Player{
		Hand:        []Card{},
		Expeditions: exps,
	}
}

// HandIndex locates a card in the hand by physical identity (see
// Card.Matches). Returns -1 when the player does not hold the card.
func (p *Player) HandIndex(card Card) int {
	for i, c := range p.Hand {
		if c.Matches(card) {
			return i
		}
	}
	return -1
}

// RemoveFromHand drops the card at index i, preserving the order of the
// remaining cards for display.
func (p *Player) RemoveFromHand(i int) Card {
	c := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return c
}
