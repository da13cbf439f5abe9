package shell

import (
	"reflect"
	"testing"

	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/wizard"
)

func TestLookupTicket(t *testing.T) {
	tests := []struct {
		input string
		want  TicketStatus
	}{
		{"AB", TicketNotFound},
		{"abc", TicketNotFound},
		{"", TicketNotFound},
		{"VBUS1234", TicketFound},
		{"  vbus ", TicketFound},
		{"  ab  ", TicketNotFound},
		{"ÄÖ", TicketNotFound},
		{"ÄÖÜ", TicketNotFound},
		{"पीएन", TicketFound},
	}

	for _, tt := range tests {
		got := LookupTicket(tt.input)
		if got.Status != tt.want {
			t.Errorf("LookupTicket(%q) = %s, want %s", tt.input, got.Status, tt.want)
		}
		if (got.Details != nil) != (tt.want == TicketFound) {
			t.Errorf("LookupTicket(%q) details = %v", tt.input, got.Details)
		}
	}

	if got := LookupTicket("vbus1234"); got.PNR != "VBUS1234" {
		t.Errorf("LookupTicket PNR = %q, want upper-cased VBUS1234", got.PNR)
	}
}

func confirmedShell() Shell {
	s := New()
	s.Wizard.Step = wizard.StepConfirmation
	s.Wizard.SearchParams = &models.SearchParams{Source: "Bangalore", Destination: "Goa", Date: "2024-10-24"}
	return s
}

func TestNavigate_HomeFromConfirmationResets(t *testing.T) {
	s := confirmedShell().CheckTicket("VBUS1234")
	s.View = ViewTicket
	s, err := s.SubmitContact(models.ContactRequest{Name: "Asha", Email: "asha@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("SubmitContact error: %v", err)
	}

	got := s.Navigate(ViewHome)
	if got.View != ViewHome {
		t.Errorf("view = %s, want home", got.View)
	}
	if !reflect.DeepEqual(got.Wizard, wizard.New()) {
		t.Errorf("wizard = %+v, want reset", got.Wizard)
	}
	if got.Ticket.Status != TicketNone || got.Ticket.PNR != "" || got.Ticket.Details != nil {
		t.Errorf("ticket = %+v, want cleared", got.Ticket)
	}
	if got.Contact != ContactIdle {
		t.Errorf("contact = %s, want idle", got.Contact)
	}
}

func TestNavigate_OtherViewsPreserveWizard(t *testing.T) {
	s := confirmedShell()

	for _, v := range []View{ViewTicket, ViewContact} {
		got := s.Navigate(v)
		if got.Wizard.Step != wizard.StepConfirmation || got.Wizard.SearchParams == nil {
			t.Errorf("Navigate(%s) wizard = %+v, want preserved", v, got.Wizard)
		}
	}

	mid := New()
	mid.Wizard.Step = wizard.StepSeats
	if got := mid.Navigate(ViewHome); got.Wizard.Step != wizard.StepSeats {
		t.Errorf("Navigate(home) mid-flow step = %s, want seats", got.Wizard.Step)
	}
}

func TestParseView(t *testing.T) {
	if v, err := ParseView(" Contact "); err != nil || v != ViewContact {
		t.Errorf("ParseView(Contact) = %s, %v", v, err)
	}
	if _, err := ParseView("admin"); err != models.ErrUnknownView {
		t.Errorf("ParseView(admin) error = %v, want ErrUnknownView", err)
	}
}

func TestSubmitContact(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		req  models.ContactRequest
		want error
	}{
		{"valid", models.ContactRequest{Name: "John Doe", Email: "john@example.com", Message: "Hi"}, nil},
		{"valid with phone", models.ContactRequest{Name: "John", Phone: "+91 8001234567", Email: "j@example.com", Message: "Hi"}, nil},
		{"missing name", models.ContactRequest{Email: "john@example.com", Message: "Hi"}, models.ErrMissingName},
		{"missing email", models.ContactRequest{Name: "John", Message: "Hi"}, models.ErrMissingEmail},
		{"bad email", models.ContactRequest{Name: "John", Email: "john", Message: "Hi"}, models.ErrInvalidEmail},
		{"bad phone", models.ContactRequest{Name: "John", Phone: "12ab", Email: "j@example.com", Message: "Hi"}, models.ErrInvalidPhone},
		{"blank message", models.ContactRequest{Name: "John", Email: "john@example.com", Message: "   "}, models.ErrMissingMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SubmitContact(tt.req)
			if err != tt.want {
				t.Fatalf("SubmitContact error = %v, want %v", err, tt.want)
			}
			wantStatus := ContactIdle
			if tt.want == nil {
				wantStatus = ContactSent
			}
			if got.Contact != wantStatus {
				t.Errorf("contact status = %s, want %s", got.Contact, wantStatus)
			}
		})
	}

	sent, _ := s.SubmitContact(models.ContactRequest{Name: "J", Email: "j@example.com", Message: "m"})
	if sent.ResetContact().Contact != ContactIdle {
		t.Errorf("ResetContact did not return to idle")
	}
}

func TestResetAll(t *testing.T) {
	s := confirmedShell().CheckTicket("VBUS1234")
	s.View = ViewContact
	s.Contact = ContactSent

	if got := s.ResetAll(); !reflect.DeepEqual(got, New()) {
		t.Errorf("ResetAll() = %+v, want fresh shell", got)
	}
}
