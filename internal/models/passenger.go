package models

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ParseGender(s string) (Gender, bool) {
	switch g := Gender(s); g {
	case GenderMale, GenderFemale, GenderOther:
		return g, true
	default:
		return "", false
	}
}

// Age stays as the text the user typed; only emptiness is checked on confirm.
type Passenger struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Gender     Gender `json:"gender"`
	SeatNumber string `json:"seat_number"`
}

func (p Passenger) Complete() bool {
	return p.Name != "" && p.Age != ""
}

type PassengerField string

const (
	FieldName   PassengerField = "name"
	FieldAge    PassengerField = "age"
	FieldGender PassengerField = "gender"
)

type BookingConfirmation struct {
	ReferenceCode  string      `json:"reference_code"`
	Route          string      `json:"route"`
	Date           string      `json:"date"`
	OperatorName   string      `json:"operator_name"`
	Category       BusCategory `json:"category"`
	DepartureTime  time.Time   `json:"departure_time"`
	Seats          []string    `json:"seats"`
	Passengers     []Passenger `json:"passengers"`
	TotalPrice     int         `json:"total_price"`
	TotalFormatted string      `json:"total_formatted"`
	BookedAt       time.Time   `json:"booked_at"`
}
