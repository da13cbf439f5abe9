package shell

import (
	"strings"

	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/wizard"
)

type View string

const (
	ViewHome    View = "home"
	ViewTicket  View = "ticket"
	ViewContact View = "contact"
)

func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewHome, ViewTicket, ViewContact:
		return v, nil
	default:
		return "", models.ErrUnknownView
	}
}

// Shell is one visitor's whole app: the current top-level view, the booking
// wizard and the two side flows.
type Shell struct {
	View    View          `json:"view"`
	Wizard  wizard.State  `json:"wizard"`
	Ticket  TicketLookup  `json:"ticket"`
	Contact ContactStatus `json:"contact"`
}

func New() Shell {
	return Shell{
		View:    ViewHome,
		Wizard:  wizard.New(),
		Ticket:  TicketLookup{Status: TicketNone},
		Contact: ContactIdle,
	}
}

// Navigate switches the top-level view. Returning home from a finished
// booking resets the whole app, side flows included; every other switch
// keeps the wizard as is.
func (s Shell) Navigate(view View) Shell {
	if view == ViewHome && s.Wizard.Step == wizard.StepConfirmation {
		return s.ResetAll()
	}
	next := s
	next.Wizard = s.Wizard.Clone()
	next.View = view
	return next
}

// ResetAll clears the wizard and both side flows and returns home.
func (s Shell) ResetAll() Shell {
	return New()
}
