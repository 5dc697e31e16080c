package game

import (
	"math/rand"
	"time"

	"github.com/mkrall/lostcities/internal/models"
)

const (
	// HandshakesPerColor handshake cards plus one each of 2..10 gives
	// twelve cards per color, 72 in total.
	HandshakesPerColor = 3
	DeckSize           = 72

	// HandSize cards are dealt to each player before play starts.
	HandSize = 8
)

// InitGame builds, shuffles and deals a fresh game. The shuffle uses a
// locally scoped generator, so the same seed always produces the same
// deck order and the same hands. Nothing outside the returned state is
// touched.
func InitGame(seed int64) *models.GameState {
	return initGame(rand.New(rand.NewSource(seed)))
}

// InitGameRandom starts a game with a time-seeded shuffle, for real play
// where reproducibility is not wanted.
func InitGameRandom() *models.GameState {
	return initGame(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func initGame(r *rand.Rand) *models.GameState {
	deck := buildDeck()
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	p1 := models.NewPlayer()
	p2 := models.NewPlayer()

	// Deal alternately from the top of the deck (end of the slice).
	for i := 0; i < HandSize; i++ {
		p1.Hand = append(p1.Hand, deck[len(deck)-1])
		deck = deck[:len(deck)-1]
		p2.Hand = append(p2.Hand, deck[len(deck)-1])
		deck = deck[:len(deck)-1]
	}

	discards := make(map[models.Color]*models.Stack, len(models.Colors))
	for _, c := range models.Colors {
		discards[c] = &models.Stack{}
	}

	return &models.GameState{
		Players:       [models.NumPlayers]*models.Player{p1, p2},
		CurrentPlayer: 0,
		Phase:         models.PhasePlay,
		Deck:          deck,
		DiscardPiles:  discards,
	}
}

// buildDeck produces the full unshuffled 72-card deck: per color, three
// handshakes followed by the numbers 2 through 10.
func buildDeck() []models.Card {
	deck := make([]models.Card, 0, DeckSize)
	for _, color := range models.Colors {
		for i := 0; i < HandshakesPerColor; i++ {
			deck = append(deck, models.NewCard(color, models.HandshakeValue))
		}
		for v := 2; v <= 10; v++ {
			deck = append(deck, models.NewCard(color, v))
		}
	}
	return deck
}
