package shell

import (
	"strings"
	"unicode/utf8"
)

type TicketStatus string

const (
	TicketNone     TicketStatus = "none"
	TicketFound    TicketStatus = "found"
	TicketNotFound TicketStatus = "not_found"
)

// minPNRLength is the shortest input the mock lookup treats as a real PNR.
const minPNRLength = 4

type TicketDetails struct {
	PNR       string `json:"pnr"`
	Status    string `json:"status"`
	Route     string `json:"route"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Bus       string `json:"bus"`
	Passenger string `json:"passenger"`
}

type TicketLookup struct {
	PNR     string         `json:"pnr"`
	Status  TicketStatus   `json:"status"`
	Details *TicketDetails `json:"details,omitempty"`
}

// LookupTicket classifies a PNR with the mock rule: anything longer than
// three characters is found. A miss is a result, not an error. The input is
// trimmed and upper-cased first, so surrounding spaces never count toward
// the length, and the length is measured in characters, not bytes.
func LookupTicket(pnr string) TicketLookup {
	pnr = strings.ToUpper(strings.TrimSpace(pnr))
	if utf8.RuneCountInString(pnr) < minPNRLength {
		return TicketLookup{PNR: pnr, Status: TicketNotFound}
	}
	return TicketLookup{
		PNR:    pnr,
		Status: TicketFound,
		Details: &TicketDetails{
			PNR:       pnr,
			Status:    "Confirmed",
			Route:     "Bangalore → Goa",
			Date:      "24 Oct, 2024",
			Time:      "21:00",
			Bus:       "VoloBus Prime A/C",
			Passenger: "Rahul Sharma",
		},
	}
}

func (s Shell) CheckTicket(pnr string) Shell {
	next := s
	next.Ticket = LookupTicket(pnr)
	return next
}
