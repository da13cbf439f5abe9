package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/shell"
	"github.com/dharmasatrya/volobus/internal/wizard"
)

func (h *BookingHandler) Navigate(c echo.Context) error {
	var req models.NavigateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindError(err))
	}
	view, err := shell.ParseView(req.View)
	if err != nil {
		return respondError(c, err)
	}

	return h.apply(c, "navigate", func(sh *shell.Shell, _ *wizard.Session) (any, error) {
		*sh = sh.Navigate(view)
		log.Printf("[SHELL] action=navigate session=%s view=%s step=%s", c.Param("id"), view, sh.Wizard.Step)
		return newSessionResponse(c.Param("id"), *sh), nil
	})
}

func (h *BookingHandler) ResetAll(c echo.Context) error {
	return h.apply(c, "reset_all", func(sh *shell.Shell, _ *wizard.Session) (any, error) {
		*sh = sh.ResetAll()
		return newSessionResponse(c.Param("id"), *sh), nil
	})
}

// CheckTicket records a PNR lookup on the session's ticket view.
func (h *BookingHandler) CheckTicket(c echo.Context) error {
	var req models.TicketRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindError(err))
	}

	return h.apply(c, "check_ticket", func(sh *shell.Shell, _ *wizard.Session) (any, error) {
		*sh = sh.CheckTicket(req.PNR)
		return sh.Ticket, nil
	})
}

func (h *BookingHandler) SubmitContact(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindError(err))
	}

	return h.apply(c, "submit_contact", func(sh *shell.Shell, _ *wizard.Session) (any, error) {
		next, err := sh.SubmitContact(req)
		if err != nil {
			return nil, err
		}
		*sh = next
		return newSessionResponse(c.Param("id"), *sh), nil
	})
}

func (h *BookingHandler) ResetContact(c echo.Context) error {
	return h.apply(c, "reset_contact", func(sh *shell.Shell, _ *wizard.Session) (any, error) {
		*sh = sh.ResetContact()
		return newSessionResponse(c.Param("id"), *sh), nil
	})
}

// LookupTicket is the session-less PNR check.
func LookupTicket(c echo.Context) error {
	return c.JSON(http.StatusOK, shell.LookupTicket(c.Param("pnr")))
}

// ValidateContact checks a contact form without a session.
func ValidateContact(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindError(err))
	}
	if err := shell.ValidateContact(&req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": string(shell.ContactSent),
	})
}

func ListCities(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"cities": models.Cities,
	})
}
