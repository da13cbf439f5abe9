package models

import (
	"fmt"
	"strings"
	"time"
)

type BusCategory string

const (
	CategoryACSleeper      BusCategory = "AC Sleeper"
	CategoryNonACSleeper   BusCategory = "Non-AC Sleeper"
	CategoryACSeater       BusCategory = "AC Seater"
	CategoryVolvoMultiAxle BusCategory = "Volvo Multi-Axle"
)

var Categories = []BusCategory{
	CategoryACSleeper,
	CategoryNonACSleeper,
	CategoryACSeater,
	CategoryVolvoMultiAxle,
}

// IsSleeper reports whether the category name indicates berths.
func (c BusCategory) IsSleeper() bool {
	return strings.Contains(string(c), "Sleeper")
}

type Duration struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"total_minutes"`
}

func (d Duration) String() string {
	return fmt.Sprintf("%dh %02dm", d.Hours, d.Minutes)
}

type Price struct {
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

type BusOffer struct {
	ID             string      `json:"id"`
	OperatorName   string      `json:"operator_name"`
	Category       BusCategory `json:"category"`
	DepartureTime  time.Time   `json:"departure_time"`
	ArrivalTime    time.Time   `json:"arrival_time"`
	Duration       Duration    `json:"duration"`
	Source         string      `json:"source"`
	Destination    string      `json:"destination"`
	BasePrice      int         `json:"base_price"`
	Price          Price       `json:"price"`
	Rating         float64     `json:"rating"`
	TotalSeats     int         `json:"total_seats"`
	AvailableSeats int         `json:"available_seats"`
	Amenities      []string    `json:"amenities"`
	BestValueScore float64     `json:"best_value_score,omitempty"`
}

func (b BusOffer) HasAmenity(name string) bool {
	for _, a := range b.Amenities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}
