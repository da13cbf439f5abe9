package models

import (
	"strings"

	"github.com/dharmasatrya/volobus/internal/timezone"
)

var Cities = []string{
	"Bangalore", "Mumbai", "Pune", "Hyderabad", "Chennai", "Goa", "Delhi", "Coimbatore", "Hubli", "Belgaum",
}

func IsKnownCity(name string) bool {
	_, ok := CanonicalCity(name)
	return ok
}

// CanonicalCity returns the served city matching name regardless of case.
func CanonicalCity(name string) (string, bool) {
	for _, c := range Cities {
		if strings.EqualFold(c, strings.TrimSpace(name)) {
			return c, true
		}
	}
	return "", false
}

type SearchParams struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// Validate checks the fields the core depends on and rewrites both cities
// to their served spelling. Source and destination being equal is left to
// ValidateRoute.
func (p *SearchParams) Validate() error {
	p.Source = strings.TrimSpace(p.Source)
	p.Destination = strings.TrimSpace(p.Destination)
	p.Date = strings.TrimSpace(p.Date)

	if p.Source == "" {
		return ErrMissingSource
	}
	if p.Destination == "" {
		return ErrMissingDestination
	}
	if p.Date == "" {
		return ErrMissingDate
	}
	src, srcOK := CanonicalCity(p.Source)
	dst, dstOK := CanonicalCity(p.Destination)
	if !srcOK || !dstOK {
		return ErrUnknownCity
	}
	p.Source, p.Destination = src, dst
	if _, err := timezone.ParseCalendarDate(p.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (p SearchParams) ValidateRoute() error {
	if strings.EqualFold(p.Source, p.Destination) {
		return ErrSameCity
	}
	return nil
}

// Route renders "Source → Destination".
func (p SearchParams) Route() string {
	return p.Source + " → " + p.Destination
}

type OfferFilters struct {
	Categories       []BusCategory
	PriceMin         *int
	PriceMax         *int
	MinRating        *float64
	DepartureTimeMin *string
	DepartureTimeMax *string
	Amenities        []string
}

type OffersQuery struct {
	OfferFilters
	SortBy    string
	SortOrder string
}

func (q *OffersQuery) Normalize() {
	if q.SortBy == "" {
		q.SortBy = "departure"
	}
	if q.SortOrder == "" {
		q.SortOrder = "asc"
	}
}

type PassengerFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type NavigateRequest struct {
	View string `json:"view"`
}

type TicketRequest struct {
	PNR string `json:"pnr"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty,e164"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingSource      ValidationError = "source is required"
	ErrMissingDestination ValidationError = "destination is required"
	ErrMissingDate        ValidationError = "date is required"
	ErrInvalidDate        ValidationError = "date must be formatted as YYYY-MM-DD"
	ErrUnknownCity        ValidationError = "source and destination must be served cities"
	ErrSameCity           ValidationError = "source and destination must differ"
	ErrMissingField       ValidationError = "field is required"
	ErrMissingName        ValidationError = "name is required"
	ErrMissingEmail       ValidationError = "email is required"
	ErrInvalidEmail       ValidationError = "email is not a valid address"
	ErrMissingMessage     ValidationError = "message is required"
	ErrInvalidPhone       ValidationError = "phone must be in international format, e.g. +918001234567"
	ErrUnknownView        ValidationError = "view must be one of home, ticket, contact"
	ErrUnknownCategory    ValidationError = "category must be one of AC Sleeper, Non-AC Sleeper, AC Seater, Volvo Multi-Axle"
	ErrInvalidTimeOfDay   ValidationError = "departure window bounds must be formatted as HH:MM"
	ErrInvalidPassenger   ValidationError = "passenger index must be a number"
)
