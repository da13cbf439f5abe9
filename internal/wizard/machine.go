package wizard

import (
	"strings"
	"time"

	"github.com/dharmasatrya/volobus/internal/mockdata"
	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/pkg/currency"
)

// Machine holds the capabilities the transitions need. Every transition
// takes a State by value and returns a new one; on error the returned state
// is the input, unchanged.
type Machine struct {
	gen *mockdata.Generator
	now func() time.Time
}

func NewMachine(gen *mockdata.Generator) *Machine {
	if gen == nil {
		gen = mockdata.NewGenerator(nil)
	}
	return &Machine{gen: gen, now: time.Now}
}

// SubmitSearch replaces the offers and clears everything downstream of them.
func (m *Machine) SubmitSearch(s State, params models.SearchParams) (State, []models.BusOffer, error) {
	if s.Step != StepSearch {
		return s, nil, invalidTransition("search", s.Step)
	}

	offers := m.gen.GenerateOffers(params)

	next := New()
	next.Step = StepResults
	next.SearchParams = &params
	next.Offers = offers
	return next, cloneOffers(offers), nil
}

// SelectOffer regenerates the seat map for the offer's category and drops
// any prior selection.
func (m *Machine) SelectOffer(s State, offerID string) (State, []models.Seat, error) {
	if s.Step != StepResults {
		return s, nil, invalidTransition("select a bus", s.Step)
	}
	offer, ok := s.Offer(offerID)
	if !ok {
		return s, nil, newError(KindUnknownOffer, "no bus offer %q in the current results", offerID)
	}

	layout := m.gen.GenerateSeatLayout(offer.Category)

	next := s.Clone()
	next.Step = StepSeats
	bus := cloneOffer(offer)
	next.SelectedBus = &bus
	next.SeatLayout = layout
	next.SelectedSeatIDs = nil
	next.Passengers = nil
	next.Confirmation = nil
	return next, append([]models.Seat(nil), layout...), nil
}

func (m *Machine) ToggleSeat(s State, seatID string) (State, error) {
	if s.Step != StepSeats {
		return s, invalidTransition("change seats", s.Step)
	}
	seat, ok := s.Seat(seatID)
	if !ok {
		return s, newError(KindUnknownSeat, "no seat %q on this bus", seatID)
	}
	if !seat.Selectable() {
		return s, newError(KindSeatUnavailable, "seat %s is %s", seat.Number, seat.Status)
	}

	next := s.Clone()
	if next.IsSelected(seatID) {
		kept := next.SelectedSeatIDs[:0]
		for _, id := range next.SelectedSeatIDs {
			if id != seatID {
				kept = append(kept, id)
			}
		}
		next.SelectedSeatIDs = kept
		return next, nil
	}

	if len(next.SelectedSeatIDs) >= MaxSelectedSeats {
		return s, ErrSelectionLimitExceeded
	}
	next.SelectedSeatIDs = append(next.SelectedSeatIDs, seatID)
	return next, nil
}

// AdvanceToPassengers materializes one blank passenger per selected seat,
// in seat-map order.
func (m *Machine) AdvanceToPassengers(s State) (State, []models.Passenger, error) {
	if s.Step != StepSeats {
		return s, nil, invalidTransition("enter passengers", s.Step)
	}
	if len(s.SelectedSeatIDs) == 0 {
		return s, nil, ErrEmptySelection
	}

	seats := s.SelectedSeats()
	passengers := make([]models.Passenger, len(seats))
	for i, seat := range seats {
		passengers[i] = models.Passenger{
			Gender:     models.GenderMale,
			SeatNumber: seat.Number,
		}
	}

	next := s.Clone()
	next.Step = StepPassenger
	next.Passengers = passengers
	return next, append([]models.Passenger(nil), passengers...), nil
}

// UpdatePassengerField sets one field on one passenger. Only an out of range
// index, an unknown field or an unknown gender are rejected.
func (m *Machine) UpdatePassengerField(s State, index int, field models.PassengerField, value string) (State, error) {
	if s.Step != StepPassenger {
		return s, invalidTransition("edit passengers", s.Step)
	}
	if index < 0 || index >= len(s.Passengers) {
		return s, newError(KindInvalidPassengerField, "no passenger at index %d", index)
	}

	next := s.Clone()
	p := &next.Passengers[index]
	switch field {
	case models.FieldName:
		p.Name = value
	case models.FieldAge:
		p.Age = strings.TrimSpace(value)
	case models.FieldGender:
		g, ok := models.ParseGender(value)
		if !ok {
			return s, newError(KindInvalidPassengerField, "gender must be male, female or other")
		}
		p.Gender = g
	default:
		return s, newError(KindInvalidPassengerField, "passenger field %q cannot be edited", field)
	}
	return next, nil
}

func (m *Machine) ConfirmBooking(s State) (State, *models.BookingConfirmation, error) {
	if s.Step != StepPassenger || s.SelectedBus == nil {
		return s, nil, invalidTransition("confirm", s.Step)
	}

	var missing []string
	for _, p := range s.Passengers {
		if !p.Complete() {
			missing = append(missing, p.SeatNumber)
		}
	}
	if len(missing) > 0 {
		return s, nil, newError(KindIncompletePassengerData,
			"please fill all passenger details (seats %s)", strings.Join(missing, ", "))
	}

	total := TotalPrice(s)
	seats := make([]string, len(s.Passengers))
	for i, p := range s.Passengers {
		seats[i] = p.SeatNumber
	}

	bus := s.SelectedBus
	conf := &models.BookingConfirmation{
		ReferenceCode:  m.gen.ReferenceCode(),
		Route:          models.SearchParams{Source: bus.Source, Destination: bus.Destination}.Route(),
		OperatorName:   bus.OperatorName,
		Category:       bus.Category,
		DepartureTime:  bus.DepartureTime,
		Seats:          seats,
		Passengers:     append([]models.Passenger(nil), s.Passengers...),
		TotalPrice:     total,
		TotalFormatted: currency.FormatINR(total),
		BookedAt:       m.now(),
	}
	if s.SearchParams != nil {
		conf.Date = s.SearchParams.Date
	}

	next := s.Clone()
	next.Step = StepConfirmation
	next.Confirmation = conf

	out := *conf
	return next, &out, nil
}

// Back moves one step toward Search without discarding any selection.
func (m *Machine) Back(s State) (State, error) {
	switch s.Step {
	case StepResults, StepSeats, StepPassenger:
		next := s.Clone()
		next.Step--
		return next, nil
	default:
		return s, invalidTransition("go back", s.Step)
	}
}

// Reset clears all wizard state. It is valid from every step.
func (m *Machine) Reset() State {
	return New()
}

func cloneOffers(offers []models.BusOffer) []models.BusOffer {
	out := make([]models.BusOffer, len(offers))
	for i, o := range offers {
		out[i] = cloneOffer(o)
	}
	return out
}
