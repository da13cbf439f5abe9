package wizard

import "fmt"

type Kind string

const (
	KindSelectionLimitExceeded  Kind = "selection_limit_exceeded"
	KindEmptySelection          Kind = "empty_selection"
	KindIncompletePassengerData Kind = "incomplete_passenger_data"
	KindInvalidTransition       Kind = "invalid_transition"
	KindSeatUnavailable         Kind = "seat_unavailable"
	KindUnknownSeat             Kind = "unknown_seat"
	KindUnknownOffer            Kind = "unknown_offer"
	KindInvalidPassengerField   Kind = "invalid_passenger_field"
)

// Error is a rejected transition. The state it was raised against is left
// untouched. Matching with errors.Is compares Kind only.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrSelectionLimitExceeded  = &Error{Kind: KindSelectionLimitExceeded, Msg: fmt.Sprintf("you can only select up to %d seats", MaxSelectedSeats)}
	ErrEmptySelection          = &Error{Kind: KindEmptySelection, Msg: "select at least one seat"}
	ErrIncompletePassengerData = &Error{Kind: KindIncompletePassengerData, Msg: "please fill all passenger details"}
	ErrInvalidTransition       = &Error{Kind: KindInvalidTransition}
	ErrSeatUnavailable         = &Error{Kind: KindSeatUnavailable}
	ErrUnknownSeat             = &Error{Kind: KindUnknownSeat}
	ErrUnknownOffer            = &Error{Kind: KindUnknownOffer}
	ErrInvalidPassengerField   = &Error{Kind: KindInvalidPassengerField}
)

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func invalidTransition(op string, from Step) *Error {
	return newError(KindInvalidTransition, "cannot %s from the %s step", op, from)
}
