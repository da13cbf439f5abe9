package wizard

import (
	"fmt"

	"github.com/dharmasatrya/volobus/internal/models"
)

// MaxSelectedSeats caps how many seats one booking may hold.
const MaxSelectedSeats = 6

type Step int

const (
	StepSearch Step = iota
	StepResults
	StepSeats
	StepPassenger
	StepConfirmation
)

var stepNames = map[Step]string{
	StepSearch:       "search",
	StepResults:      "results",
	StepSeats:        "seats",
	StepPassenger:    "passenger",
	StepConfirmation: "confirmation",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	if _, ok := stepNames[s]; !ok {
		return nil, fmt.Errorf("unknown wizard step %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for step, name := range stepNames {
		if name == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown wizard step %q", string(text))
}

// State is everything the booking flow has accumulated. Each field past
// Step is derived from the step before it.
type State struct {
	Step            Step                        `json:"step"`
	SearchParams    *models.SearchParams        `json:"search_params,omitempty"`
	Offers          []models.BusOffer           `json:"offers,omitempty"`
	SelectedBus     *models.BusOffer            `json:"selected_bus,omitempty"`
	SeatLayout      []models.Seat               `json:"seat_layout,omitempty"`
	SelectedSeatIDs []string                    `json:"selected_seat_ids,omitempty"`
	Passengers      []models.Passenger          `json:"passengers,omitempty"`
	Confirmation    *models.BookingConfirmation `json:"confirmation,omitempty"`
}

// New returns the empty state at the Search step.
func New() State {
	return State{Step: StepSearch}
}

// Clone returns a deep copy so transitions never share backing arrays with
// the state they were given.
func (s State) Clone() State {
	out := State{Step: s.Step}

	if s.SearchParams != nil {
		p := *s.SearchParams
		out.SearchParams = &p
	}
	if s.Offers != nil {
		out.Offers = make([]models.BusOffer, len(s.Offers))
		for i, o := range s.Offers {
			out.Offers[i] = cloneOffer(o)
		}
	}
	if s.SelectedBus != nil {
		b := cloneOffer(*s.SelectedBus)
		out.SelectedBus = &b
	}
	if s.SeatLayout != nil {
		out.SeatLayout = append([]models.Seat(nil), s.SeatLayout...)
	}
	if s.SelectedSeatIDs != nil {
		out.SelectedSeatIDs = append([]string(nil), s.SelectedSeatIDs...)
	}
	if s.Passengers != nil {
		out.Passengers = append([]models.Passenger(nil), s.Passengers...)
	}
	if s.Confirmation != nil {
		c := *s.Confirmation
		c.Seats = append([]string(nil), c.Seats...)
		c.Passengers = append([]models.Passenger(nil), c.Passengers...)
		out.Confirmation = &c
	}
	return out
}

func cloneOffer(o models.BusOffer) models.BusOffer {
	o.Amenities = append([]string(nil), o.Amenities...)
	return o
}

func (s State) Seat(id string) (models.Seat, bool) {
	for _, seat := range s.SeatLayout {
		if seat.ID == id {
			return seat, true
		}
	}
	return models.Seat{}, false
}

func (s State) IsSelected(id string) bool {
	for _, sel := range s.SelectedSeatIDs {
		if sel == id {
			return true
		}
	}
	return false
}

// SelectedSeats returns the selected seats in layout order.
func (s State) SelectedSeats() []models.Seat {
	seats := make([]models.Seat, 0, len(s.SelectedSeatIDs))
	for _, seat := range s.SeatLayout {
		if s.IsSelected(seat.ID) {
			seats = append(seats, seat)
		}
	}
	return seats
}

func (s State) Offer(id string) (models.BusOffer, bool) {
	for _, o := range s.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return models.BusOffer{}, false
}
