package models

type Deck string

const (
	DeckLower Deck = "lower"
	DeckUpper Deck = "upper"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
	SeatLadies    SeatStatus = "ladies"
)

type Seat struct {
	ID         string     `json:"id"`
	Row        int        `json:"row"`
	Col        int        `json:"col"`
	IsSleeper  bool       `json:"is_sleeper"`
	Deck       Deck       `json:"deck"`
	Status     SeatStatus `json:"status"`
	PriceDelta int        `json:"price_delta"`
	Number     string     `json:"number"`
}

// Selectable reports whether the generic booking flow may pick this seat.
// Booked and ladies-reserved seats never are.
func (s Seat) Selectable() bool {
	return s.Status == SeatAvailable
}
