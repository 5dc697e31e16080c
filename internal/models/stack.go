package models

// Stack is an ordered pile of cards, append-only at the top (the end of
// the slice). Both expeditions and discard piles are Stacks; the legality
// rules for what may land on top live in the game package, not here.
type Stack struct {
	Cards []Card `json:"cards"`
}

// Push places a card on top of the stack.
func (s *Stack) Push(c Card) {
	s.Cards = append(s.Cards, c)
}

// Pop removes and returns the top card. The boolean is false when the
// stack is empty.
func (s *Stack) Pop() (Card, bool) {
	if len(s.Cards) == 0 {
		return Card{}, false
	}
	c := s.Cards[len(s.Cards)-1]
	s.Cards = s.Cards[:len(s.Cards)-1]
	return c, true
}

// Top returns the top card without removing it.
func (s *Stack) Top() (Card, bool) {
	if len(s.Cards) == 0 {
		return Card{}, false
	}
	return s.Cards[len(s.Cards)-1], true
}

// LastNumber returns the most recently played non-handshake value, or
// false if no number card has been played yet.
func (s *Stack) LastNumber() (int, bool) {
	for i := len(s.Cards) - 1; i >= 0; i-- {
		if !s.Cards[i].IsHandshake() {
			return s.Cards[i].Value, true
		}
	}
	return 0, false
}

// Len returns the number of cards in the stack.
func (s *Stack) Len() int {
	return len(s.Cards)
}

// Empty reports whether the stack holds no cards.
func (s *Stack) Empty() bool {
	return len(s.Cards) == 0
}
