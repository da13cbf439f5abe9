package wizard

import (
	"github.com/dharmasatrya/volobus/internal/models"
)

// Observer is called with the new state after each committed transition.
type Observer func(State)

// Session owns one booking flow and exposes it as the call surface a
// presentation layer drives. Rejected transitions notify nobody.
// A Session is not safe for concurrent use; callers process one event at a
// time.
type Session struct {
	machine   *Machine
	state     State
	observers []Observer
}

func NewSession(m *Machine, initial State) *Session {
	return &Session{machine: m, state: initial.Clone()}
}

func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state.Clone()
}

func (s *Session) TotalPrice() int {
	return TotalPrice(s.state)
}

func (s *Session) commit(next State) {
	s.state = next
	for _, o := range s.observers {
		o(next.Clone())
	}
}

func (s *Session) SubmitSearch(params models.SearchParams) ([]models.BusOffer, error) {
	next, offers, err := s.machine.SubmitSearch(s.state, params)
	if err != nil {
		return nil, err
	}
	s.commit(next)
	return offers, nil
}

func (s *Session) SelectOffer(offerID string) ([]models.Seat, error) {
	next, layout, err := s.machine.SelectOffer(s.state, offerID)
	if err != nil {
		return nil, err
	}
	s.commit(next)
	return layout, nil
}

func (s *Session) ToggleSeat(seatID string) error {
	next, err := s.machine.ToggleSeat(s.state, seatID)
	if err != nil {
		return err
	}
	s.commit(next)
	return nil
}

func (s *Session) AdvanceToPassengers() ([]models.Passenger, error) {
	next, passengers, err := s.machine.AdvanceToPassengers(s.state)
	if err != nil {
		return nil, err
	}
	s.commit(next)
	return passengers, nil
}

func (s *Session) UpdatePassengerField(index int, field models.PassengerField, value string) error {
	next, err := s.machine.UpdatePassengerField(s.state, index, field, value)
	if err != nil {
		return err
	}
	s.commit(next)
	return nil
}

func (s *Session) ConfirmBooking() (*models.BookingConfirmation, error) {
	next, conf, err := s.machine.ConfirmBooking(s.state)
	if err != nil {
		return nil, err
	}
	s.commit(next)
	return conf, nil
}

func (s *Session) Back() error {
	next, err := s.machine.Back(s.state)
	if err != nil {
		return err
	}
	s.commit(next)
	return nil
}

func (s *Session) Reset() {
	s.commit(s.machine.Reset())
}
