package handler

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/volobus/internal/filter"
	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/session"
	"github.com/dharmasatrya/volobus/internal/shell"
	"github.com/dharmasatrya/volobus/internal/ticket"
	"github.com/dharmasatrya/volobus/internal/timezone"
	"github.com/dharmasatrya/volobus/internal/wizard"
	"github.com/dharmasatrya/volobus/pkg/currency"
)

func (h *BookingHandler) CreateSession(c echo.Context) error {
	id := session.NewID()
	sh := shell.New()

	if err := h.store.Set(c.Request().Context(), id, sh); err != nil {
		return respondError(c, err)
	}

	log.Printf("[SESSION] action=create session=%s", id)
	return c.JSON(http.StatusCreated, newSessionResponse(id, sh))
}

func (h *BookingHandler) GetSession(c echo.Context) error {
	return h.read(c, func(sh shell.Shell) (any, error) {
		return newSessionResponse(c.Param("id"), sh), nil
	})
}

func (h *BookingHandler) Search(c echo.Context) error {
	var params models.SearchParams
	if err := c.Bind(&params); err != nil {
		return respondError(c, bindError(err))
	}
	if err := params.Validate(); err != nil {
		return respondError(c, err)
	}
	if err := params.ValidateRoute(); err != nil {
		return respondError(c, err)
	}

	return h.apply(c, "search", func(_ *shell.Shell, sess *wizard.Session) (any, error) {
		offers, err := sess.SubmitSearch(params)
		if err != nil {
			return nil, err
		}
		return models.OffersResponse{
			SearchParams: params,
			TotalResults: len(offers),
			Offers:       offers,
		}, nil
	})
}

// ListOffers is the results list with optional filters and sorting. It is
// a view over the stored offers and never changes the session.
func (h *BookingHandler) ListOffers(c echo.Context) error {
	q, err := parseOffersQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	return h.read(c, func(sh shell.Shell) (any, error) {
		st := sh.Wizard
		if st.SearchParams == nil {
			return nil, &wizard.Error{Kind: wizard.KindInvalidTransition, Msg: "search for buses first"}
		}

		offers := filter.Apply(st.Offers, &q.OfferFilters, q.SortBy, q.SortOrder)
		return models.OffersResponse{
			SearchParams: *st.SearchParams,
			TotalResults: len(offers),
			Offers:       offers,
		}, nil
	})
}

func parseOffersQuery(c echo.Context) (models.OffersQuery, error) {
	var (
		q                   models.OffersQuery
		categories          []string
		priceMin, priceMax  int
		minRating           float64
		depAfter, depBefore string
	)

	err := echo.QueryParamsBinder(c).
		String("sort_by", &q.SortBy).
		String("sort_order", &q.SortOrder).
		Strings("category", &categories).
		Strings("amenity", &q.Amenities).
		Int("price_min", &priceMin).
		Int("price_max", &priceMax).
		Float64("min_rating", &minRating).
		String("departure_after", &depAfter).
		String("departure_before", &depBefore).
		BindError()
	if err != nil {
		return q, models.ValidationError("invalid query: " + err.Error())
	}

	for _, name := range categories {
		cat, ok := parseCategory(name)
		if !ok {
			return q, models.ErrUnknownCategory
		}
		q.Categories = append(q.Categories, cat)
	}
	if c.QueryParam("price_min") != "" {
		q.PriceMin = &priceMin
	}
	if c.QueryParam("price_max") != "" {
		q.PriceMax = &priceMax
	}
	if c.QueryParam("min_rating") != "" {
		q.MinRating = &minRating
	}
	for _, bound := range []struct {
		raw string
		dst **string
	}{{depAfter, &q.DepartureTimeMin}, {depBefore, &q.DepartureTimeMax}} {
		if bound.raw == "" {
			continue
		}
		if _, err := timezone.ParseClock(bound.raw); err != nil {
			return q, models.ErrInvalidTimeOfDay
		}
		v := bound.raw
		*bound.dst = &v
	}

	q.Normalize()
	return q, nil
}

func parseCategory(name string) (models.BusCategory, bool) {
	for _, c := range models.Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, true
		}
	}
	return "", false
}

func (h *BookingHandler) SelectOffer(c echo.Context) error {
	offerID := c.Param("offerID")

	return h.apply(c, "select_offer", func(_ *shell.Shell, sess *wizard.Session) (any, error) {
		if _, err := sess.SelectOffer(offerID); err != nil {
			return nil, err
		}
		return buildSeatMap(sess.State()), nil
	})
}

func (h *BookingHandler) GetSeatMap(c echo.Context) error {
	return h.read(c, func(sh shell.Shell) (any, error) {
		if sh.Wizard.SelectedBus == nil {
			return nil, &wizard.Error{Kind: wizard.KindInvalidTransition, Msg: "select a bus first"}
		}
		return buildSeatMap(sh.Wizard), nil
	})
}

func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	seatID := c.Param("seatID")

	return h.apply(c, "toggle_seat", func(_ *shell.Shell, sess *wizard.Session) (any, error) {
		if err := sess.ToggleSeat(seatID); err != nil {
			return nil, err
		}
		return buildSeatMap(sess.State()), nil
	})
}

func buildSeatMap(st wizard.State) models.SeatMapResponse {
	resp := models.SeatMapResponse{
		LowerDeck:     []models.SeatView{},
		SelectedSeats: []string{},
	}
	if st.SelectedBus == nil {
		return resp
	}
	resp.OfferID = st.SelectedBus.ID

	for _, seat := range st.SeatLayout {
		price := wizard.SeatPrice(*st.SelectedBus, seat)
		view := models.SeatView{
			Seat:           seat,
			Selected:       st.IsSelected(seat.ID),
			Price:          price,
			PriceFormatted: currency.FormatINR(price),
		}
		if seat.Deck == models.DeckUpper {
			resp.UpperDeck = append(resp.UpperDeck, view)
		} else {
			resp.LowerDeck = append(resp.LowerDeck, view)
		}
	}
	for _, seat := range st.SelectedSeats() {
		resp.SelectedSeats = append(resp.SelectedSeats, seat.Number)
	}

	resp.TotalPrice = wizard.TotalPrice(st)
	resp.TotalFormatted = currency.FormatINR(resp.TotalPrice)
	return resp
}

type passengersResponse struct {
	Passengers []models.Passenger `json:"passengers"`
}

func (h *BookingHandler) AdvanceToPassengers(c echo.Context) error {
	return h.apply(c, "advance_to_passengers", func(_ *shell.Shell, sess *wizard.Session) (any, error) {
		passengers, err := sess.AdvanceToPassengers()
		if err != nil {
			return nil, err
		}
		return passengersResponse{Passengers: passengers}, nil
	})
}

func (h *BookingHandler) UpdatePassenger(c echo.Context) error {
	var index int
	if err := echo.PathParamsBinder(c).Int("index", &index).BindError(); err != nil {
		return respondError(c, models.ErrInvalidPassenger)
	}

	var req models.PassengerFieldRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, bindError(err))
	}
	if strings.TrimSpace(req.Field) == "" {
		return respondError(c, models.ErrMissingField)
	}

	action := fmt.Sprintf("update_passenger[%d].%s", index, req.Field)
	return h.apply(c, action, func(_ *shell.Shell, sess *wizard.Session) (any, error) {
		err := sess.UpdatePassengerField(index, models.PassengerField(strings.ToLower(req.Field)), req.Value)
		if err != nil {
			return nil, err
		}
		return passengersResponse{Passengers: sess.State().Passengers}, nil
	})
}

func (h *BookingHandler) Confirm(c echo.Context) error {
	return h.apply(c, "confirm", func(_ *shell.Shell, sess *wizard.Session) (any, error) {
		conf, err := sess.ConfirmBooking()
		if err != nil {
			return nil, err
		}
		log.Printf("[WIZARD] action=confirm session=%s reference=%s total=%d", c.Param("id"), conf.ReferenceCode, conf.TotalPrice)
		return conf, nil
	})
}

func (h *BookingHandler) Back(c echo.Context) error {
	return h.apply(c, "back", func(sh *shell.Shell, sess *wizard.Session) (any, error) {
		if err := sess.Back(); err != nil {
			return nil, err
		}
		return newSessionResponse(c.Param("id"), *sh), nil
	})
}

func (h *BookingHandler) Reset(c echo.Context) error {
	return h.apply(c, "reset", func(sh *shell.Shell, sess *wizard.Session) (any, error) {
		sess.Reset()
		return newSessionResponse(c.Param("id"), *sh), nil
	})
}

// DownloadTicket renders the confirmed booking as a PDF e-ticket.
func (h *BookingHandler) DownloadTicket(c echo.Context) error {
	id := c.Param("id")

	unlock := h.locks.Lock(id)
	sh, err := h.store.Get(c.Request().Context(), id)
	unlock()
	if err != nil {
		return respondError(c, err)
	}

	conf := sh.Wizard.Confirmation
	if sh.Wizard.Step != wizard.StepConfirmation || conf == nil {
		return respondError(c, &wizard.Error{Kind: wizard.KindInvalidTransition, Msg: "no confirmed booking to download"})
	}

	pdf, filename, err := ticket.BuildETicketPDF(*conf)
	if err != nil {
		log.Printf("[TICKET] action=render session=%s error: %v", id, err)
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
