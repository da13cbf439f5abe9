package wizard

import "github.com/dharmasatrya/volobus/internal/models"

// SeatPrice is what one seat costs on the given bus.
func SeatPrice(bus models.BusOffer, seat models.Seat) int {
	return bus.BasePrice + seat.PriceDelta
}

// TotalPrice sums base fare plus deck premium over the current selection.
// It is recomputed from the state on every call.
func TotalPrice(s State) int {
	if s.SelectedBus == nil {
		return 0
	}

	total := 0
	for _, id := range s.SelectedSeatIDs {
		if seat, ok := s.Seat(id); ok {
			total += SeatPrice(*s.SelectedBus, seat)
		}
	}
	return total
}
