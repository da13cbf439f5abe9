package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/session"
	"github.com/dharmasatrya/volobus/internal/shell"
	"github.com/dharmasatrya/volobus/internal/wizard"
	"github.com/dharmasatrya/volobus/pkg/currency"
)

// BookingHandler drives one shell per session id. Events for the same id
// are applied one at a time: load, transition, save.
type BookingHandler struct {
	store   session.Store
	machine *wizard.Machine
	locks   *session.Locks
}

func NewBookingHandler(store session.Store, machine *wizard.Machine) *BookingHandler {
	return &BookingHandler{
		store:   store,
		machine: machine,
		locks:   session.NewLocks(),
	}
}

type SessionResponse struct {
	SessionID      string              `json:"session_id"`
	View           shell.View          `json:"view"`
	Step           wizard.Step         `json:"step"`
	Wizard         wizard.State        `json:"wizard"`
	Ticket         shell.TicketLookup  `json:"ticket"`
	Contact        shell.ContactStatus `json:"contact"`
	TotalPrice     int                 `json:"total_price"`
	TotalFormatted string              `json:"total_formatted"`
}

func newSessionResponse(id string, sh shell.Shell) SessionResponse {
	total := wizard.TotalPrice(sh.Wizard)
	return SessionResponse{
		SessionID:      id,
		View:           sh.View,
		Step:           sh.Wizard.Step,
		Wizard:         sh.Wizard,
		Ticket:         sh.Ticket,
		Contact:        sh.Contact,
		TotalPrice:     total,
		TotalFormatted: currency.FormatINR(total),
	}
}

// eventFunc applies one event. It returns the response body to send once
// the shell has been saved.
type eventFunc func(sh *shell.Shell, sess *wizard.Session) (any, error)

// apply runs fn against the session named by the :id path param and saves
// the result. A rejected event leaves the stored shell untouched.
func (h *BookingHandler) apply(c echo.Context, action string, fn eventFunc) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	unlock := h.locks.Lock(id)
	defer unlock()

	sh, err := h.store.Get(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	sess := wizard.NewSession(h.machine, sh.Wizard)
	sess.Subscribe(func(st wizard.State) {
		log.Printf("[WIZARD] action=%s session=%s step=%s", action, id, st.Step)
		sh.Wizard = st
	})

	body, err := fn(&sh, sess)
	if err != nil {
		log.Printf("[WIZARD] action=%s session=%s rejected: %v", action, id, err)
		return respondError(c, err)
	}

	if err := h.store.Set(ctx, id, sh); err != nil {
		log.Printf("[SESSION] action=save session=%s error: %v", id, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, body)
}

// read loads the session for a view that never changes state.
func (h *BookingHandler) read(c echo.Context, fn func(sh shell.Shell) (any, error)) error {
	id := c.Param("id")

	unlock := h.locks.Lock(id)
	defer unlock()

	sh, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	body, err := fn(sh)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

func respondError(c echo.Context, err error) error {
	code, body := errorResponse(err)
	return c.JSON(code, body)
}

func errorResponse(err error) (int, models.ErrorResponse) {
	var (
		ve models.ValidationError
		we *wizard.Error
	)

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: ve.Error(),
			Code:    http.StatusBadRequest,
		}
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, models.ErrorResponse{
			Error:   "session_not_found",
			Message: "Session does not exist or has expired",
			Code:    http.StatusNotFound,
		}
	case errors.As(err, &we):
		code := http.StatusUnprocessableEntity
		switch we.Kind {
		case wizard.KindSelectionLimitExceeded, wizard.KindEmptySelection,
			wizard.KindIncompletePassengerData, wizard.KindInvalidTransition:
			code = http.StatusConflict
		}
		return code, models.ErrorResponse{
			Error:   string(we.Kind),
			Message: we.Error(),
			Code:    code,
		}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Something went wrong: " + err.Error(),
			Code:    http.StatusInternalServerError,
		}
	}
}

func bindError(err error) error {
	return models.ValidationError("failed to parse request body: " + err.Error())
}
