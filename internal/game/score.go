package game

import "github.com/mkrall/lostcities/internal/models"

// expeditionCost is the fixed investment recovered only by an
// expedition's number-card total.
const expeditionCost = 20

// ScoreExpedition scores one expedition stack. An empty stack is worth 0.
// Otherwise the number cards are summed, the cost subtracted, and the
// result multiplied by one plus the handshake count, so wagers amplify
// wins and losses alike.
func ScoreExpedition(s *models.Stack) int {
	if s.Empty() {
		return 0
	}
	handshakes := 0
	sum := 0
	for _, c := range s.Cards {
		if c.IsHandshake() {
			handshakes++
		} else {
			sum += c.Value
		}
	}
	return (handshakes + 1) * (sum - expeditionCost)
}

// CalculateScore totals a player's six expeditions. Discard piles never
// contribute.
func CalculateScore(p *models.Player) int {
	total := 0
	for _, color := range models.Colors {
		total += ScoreExpedition(p.Expeditions[color])
	}
	return total
}

// GetWinner compares both players' totals and returns the strictly
// higher-scoring one, or nil on a draw. Neither player's Score field is
// touched.
func GetWinner(p1, p2 *models.Player) *models.Player {
	s1 := CalculateScore(p1)
	s2 := CalculateScore(p2)
	if s1 > s2 {
		return p1
	}
	if s2 > s1 {
		return p2
	}
	return nil
}
