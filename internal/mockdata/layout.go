package mockdata

import (
	"fmt"

	"github.com/dharmasatrya/volobus/internal/models"
)

const (
	deckRows    = 5
	deckColumns = 3
	aisleColumn = 2

	UpperDeckPremium = 100

	availableShare = 0.7
	bookedShare    = 0.2
)

// GenerateSeatLayout builds the lower deck, and the upper deck when the
// category is a sleeper. Seater coaches drop the middle column as the aisle.
func (g *Generator) GenerateSeatLayout(category models.BusCategory) []models.Seat {
	sleeper := category.IsSleeper()

	seats := g.deck(models.DeckLower, sleeper, 0)
	if sleeper {
		seats = append(seats, g.deck(models.DeckUpper, sleeper, UpperDeckPremium)...)
	}
	return seats
}

func (g *Generator) deck(deck models.Deck, sleeper bool, priceDelta int) []models.Seat {
	prefix := "L"
	if deck == models.DeckUpper {
		prefix = "U"
	}

	seats := make([]models.Seat, 0, deckRows*deckColumns)
	for row := 1; row <= deckRows; row++ {
		for col := 1; col <= deckColumns; col++ {
			if col == aisleColumn && !sleeper {
				continue
			}
			seats = append(seats, models.Seat{
				ID:         fmt.Sprintf("%s-%d-%d", prefix, row, col),
				Row:        row,
				Col:        col,
				IsSleeper:  sleeper,
				Deck:       deck,
				Status:     g.seatStatus(deck),
				PriceDelta: priceDelta,
				Number:     fmt.Sprintf("%s%d%c", prefix, row, rune('A'+col-1)),
			})
		}
	}
	return seats
}

// Ladies-reserved berths exist on the lower deck only; upper deck seats
// that are not available are booked.
func (g *Generator) seatStatus(deck models.Deck) models.SeatStatus {
	draw := g.rnd.Float64()
	switch {
	case draw < availableShare:
		return models.SeatAvailable
	case draw < availableShare+bookedShare || deck == models.DeckUpper:
		return models.SeatBooked
	default:
		return models.SeatLadies
	}
}
