package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/volobus/internal/mockdata"
	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/session"
	"github.com/dharmasatrya/volobus/internal/wizard"
)

// newTestServer wires the routes over an in-memory store and a generator
// whose draws make every seat available and every bus-1 price 1200.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	gen := mockdata.NewGenerator(&mockdata.Sequence{Ints: []int{0}, Floats: []float64{0.1}})
	h := NewBookingHandler(session.NewMemoryStore(time.Hour), wizard.NewMachine(gen))

	e := echo.New()
	Register(e, h)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func createSession(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/api/v1/sessions", nil)
	expectStatus(t, rec, http.StatusCreated)
	return decode[SessionResponse](t, rec).SessionID
}

var searchBody = models.SearchParams{Source: "Bangalore", Destination: "Goa", Date: "2024-10-24"}

func TestBookingFlowOverHTTP(t *testing.T) {
	e := newTestServer(t)
	id := createSession(t, e)
	base := "/api/v1/sessions/" + id

	rec := do(t, e, http.MethodPost, base+"/search", searchBody)
	expectStatus(t, rec, http.StatusOK)
	offers := decode[models.OffersResponse](t, rec)
	if offers.TotalResults != mockdata.OfferCount {
		t.Fatalf("TotalResults = %d, want %d", offers.TotalResults, mockdata.OfferCount)
	}

	rec = do(t, e, http.MethodPost, base+"/offers/"+offers.Offers[0].ID, nil)
	expectStatus(t, rec, http.StatusOK)
	seatMap := decode[models.SeatMapResponse](t, rec)
	if len(seatMap.LowerDeck) == 0 || len(seatMap.UpperDeck) == 0 {
		t.Fatalf("sleeper seat map decks = %d/%d, want both populated", len(seatMap.LowerDeck), len(seatMap.UpperDeck))
	}

	rec = do(t, e, http.MethodPost, base+"/seats/L-1-1/toggle", nil)
	expectStatus(t, rec, http.StatusOK)
	seatMap = decode[models.SeatMapResponse](t, rec)
	if len(seatMap.SelectedSeats) != 1 || seatMap.SelectedSeats[0] != "L1A" {
		t.Errorf("SelectedSeats = %v, want [L1A]", seatMap.SelectedSeats)
	}
	if seatMap.TotalPrice != 1200 || seatMap.TotalFormatted != "₹1,200" {
		t.Errorf("total = %d %q, want 1200 ₹1,200", seatMap.TotalPrice, seatMap.TotalFormatted)
	}

	rec = do(t, e, http.MethodPost, base+"/passengers", nil)
	expectStatus(t, rec, http.StatusOK)

	for _, f := range []models.PassengerFieldRequest{
		{Field: "name", Value: "Asha"},
		{Field: "age", Value: "30"},
		{Field: "gender", Value: "female"},
	} {
		rec = do(t, e, http.MethodPatch, base+"/passengers/0", f)
		expectStatus(t, rec, http.StatusOK)
	}

	rec = do(t, e, http.MethodPost, base+"/confirm", nil)
	expectStatus(t, rec, http.StatusOK)
	conf := decode[models.BookingConfirmation](t, rec)
	if !strings.HasPrefix(conf.ReferenceCode, mockdata.ReferencePrefix) {
		t.Errorf("ReferenceCode = %q, want %s prefix", conf.ReferenceCode, mockdata.ReferencePrefix)
	}
	if conf.TotalPrice != 1200 {
		t.Errorf("confirmation TotalPrice = %d, want 1200", conf.TotalPrice)
	}

	rec = do(t, e, http.MethodGet, base+"/ticket.pdf", nil)
	expectStatus(t, rec, http.StatusOK)
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Errorf("ticket.pdf body is not a PDF")
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, conf.ReferenceCode) {
		t.Errorf("Content-Disposition = %q, want it to name %s", cd, conf.ReferenceCode)
	}

	rec = do(t, e, http.MethodPost, base+"/view", models.NavigateRequest{View: "home"})
	expectStatus(t, rec, http.StatusOK)
	snap := decode[SessionResponse](t, rec)
	if snap.Step != wizard.StepSearch || snap.Wizard.Confirmation != nil {
		t.Errorf("after home from confirmation step = %s, confirmation = %v; want fresh search", snap.Step, snap.Wizard.Confirmation)
	}
}

func TestRejectedEventsLeaveSessionUntouched(t *testing.T) {
	e := newTestServer(t)
	id := createSession(t, e)
	base := "/api/v1/sessions/" + id

	do(t, e, http.MethodPost, base+"/search", searchBody)
	rec := do(t, e, http.MethodPost, base+"/offers/bus-1", nil)
	expectStatus(t, rec, http.StatusOK)

	rec = do(t, e, http.MethodPost, base+"/passengers", nil)
	expectStatus(t, rec, http.StatusConflict)
	if got := decode[models.ErrorResponse](t, rec).Error; got != string(wizard.KindEmptySelection) {
		t.Errorf("error = %q, want %s", got, wizard.KindEmptySelection)
	}

	for _, seat := range []string{"L-1-1", "L-1-2", "L-1-3", "L-2-1", "L-2-2", "L-2-3"} {
		expectStatus(t, do(t, e, http.MethodPost, base+"/seats/"+seat+"/toggle", nil), http.StatusOK)
	}
	rec = do(t, e, http.MethodPost, base+"/seats/L-3-1/toggle", nil)
	expectStatus(t, rec, http.StatusConflict)

	rec = do(t, e, http.MethodPost, base+"/seats/X-9-9/toggle", nil)
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	rec = do(t, e, http.MethodGet, base, nil)
	expectStatus(t, rec, http.StatusOK)
	snap := decode[SessionResponse](t, rec)
	if len(snap.Wizard.SelectedSeatIDs) != wizard.MaxSelectedSeats {
		t.Errorf("selected = %d seats, want %d", len(snap.Wizard.SelectedSeatIDs), wizard.MaxSelectedSeats)
	}
	if snap.Step != wizard.StepSeats {
		t.Errorf("step = %s, want seats", snap.Step)
	}
}

func TestConfirmWithMissingDetails(t *testing.T) {
	e := newTestServer(t)
	id := createSession(t, e)
	base := "/api/v1/sessions/" + id

	do(t, e, http.MethodPost, base+"/search", searchBody)
	do(t, e, http.MethodPost, base+"/offers/bus-1", nil)
	do(t, e, http.MethodPost, base+"/seats/L-1-1/toggle", nil)
	do(t, e, http.MethodPost, base+"/passengers", nil)
	do(t, e, http.MethodPatch, base+"/passengers/0", models.PassengerFieldRequest{Field: "name", Value: "Asha"})

	rec := do(t, e, http.MethodPost, base+"/confirm", nil)
	expectStatus(t, rec, http.StatusConflict)

	rec = do(t, e, http.MethodGet, base+"/ticket.pdf", nil)
	expectStatus(t, rec, http.StatusConflict)

	rec = do(t, e, http.MethodPatch, base+"/passengers/5", models.PassengerFieldRequest{Field: "age", Value: "30"})
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	rec = do(t, e, http.MethodPatch, base+"/passengers/zero", models.PassengerFieldRequest{Field: "age", Value: "30"})
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestSearchValidation(t *testing.T) {
	e := newTestServer(t)
	id := createSession(t, e)

	tests := []struct {
		name   string
		params models.SearchParams
		want   models.ValidationError
	}{
		{"missing source", models.SearchParams{Destination: "Goa", Date: "2024-10-24"}, models.ErrMissingSource},
		{"bad date", models.SearchParams{Source: "Pune", Destination: "Goa", Date: "24/10/2024"}, models.ErrInvalidDate},
		{"unknown city", models.SearchParams{Source: "Atlantis", Destination: "Goa", Date: "2024-10-24"}, models.ErrUnknownCity},
		{"same city", models.SearchParams{Source: "Goa", Destination: "Goa", Date: "2024-10-24"}, models.ErrSameCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/search", tt.params)
			expectStatus(t, rec, http.StatusBadRequest)
			if got := decode[models.ErrorResponse](t, rec).Message; got != string(tt.want) {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListOffers_FiltersWithoutChangingState(t *testing.T) {
	e := newTestServer(t)
	id := createSession(t, e)
	base := "/api/v1/sessions/" + id

	rec := do(t, e, http.MethodGet, base+"/offers", nil)
	expectStatus(t, rec, http.StatusConflict)

	do(t, e, http.MethodPost, base+"/search", searchBody)

	rec = do(t, e, http.MethodGet, base+"/offers?category=ac+sleeper&sort_by=price&sort_order=desc", nil)
	expectStatus(t, rec, http.StatusOK)
	resp := decode[models.OffersResponse](t, rec)
	if resp.TotalResults == 0 {
		t.Fatal("category filter returned nothing")
	}
	for _, o := range resp.Offers {
		if o.Category != models.CategoryACSleeper {
			t.Errorf("offer %s category = %s, want AC Sleeper", o.ID, o.Category)
		}
	}

	rec = do(t, e, http.MethodGet, base+"/offers?category=rocket", nil)
	expectStatus(t, rec, http.StatusBadRequest)
	rec = do(t, e, http.MethodGet, base+"/offers?departure_after=late", nil)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = do(t, e, http.MethodGet, base, nil)
	snap := decode[SessionResponse](t, rec)
	if snap.Step != wizard.StepResults || len(snap.Wizard.Offers) != mockdata.OfferCount {
		t.Fatalf("after filtered view step = %s with %d offers, want results with %d", snap.Step, len(snap.Wizard.Offers), mockdata.OfferCount)
	}
	if snap.Wizard.Offers[0].ID != "bus-1" {
		t.Errorf("stored offers reordered: first = %s, want bus-1", snap.Wizard.Offers[0].ID)
	}
}

func TestBackKeepsSelection(t *testing.T) {
	e := newTestServer(t)
	id := createSession(t, e)
	base := "/api/v1/sessions/" + id

	do(t, e, http.MethodPost, base+"/search", searchBody)
	do(t, e, http.MethodPost, base+"/offers/bus-1", nil)
	do(t, e, http.MethodPost, base+"/seats/L-1-1/toggle", nil)
	do(t, e, http.MethodPost, base+"/passengers", nil)

	rec := do(t, e, http.MethodPost, base+"/back", nil)
	expectStatus(t, rec, http.StatusOK)
	snap := decode[SessionResponse](t, rec)
	if snap.Step != wizard.StepSeats || len(snap.Wizard.SelectedSeatIDs) != 1 {
		t.Errorf("after back step = %s selected = %v, want seats with one seat", snap.Step, snap.Wizard.SelectedSeatIDs)
	}

	rec = do(t, e, http.MethodPost, base+"/reset", nil)
	expectStatus(t, rec, http.StatusOK)
	snap = decode[SessionResponse](t, rec)
	if snap.Step != wizard.StepSearch || snap.TotalPrice != 0 {
		t.Errorf("after reset step = %s total = %d, want search and 0", snap.Step, snap.TotalPrice)
	}

	rec = do(t, e, http.MethodPost, base+"/back", nil)
	expectStatus(t, rec, http.StatusConflict)
}

func TestShellRoutes(t *testing.T) {
	e := newTestServer(t)
	id := createSession(t, e)
	base := "/api/v1/sessions/" + id

	rec := do(t, e, http.MethodPost, base+"/ticket", models.TicketRequest{PNR: "volo4821"})
	expectStatus(t, rec, http.StatusOK)
	if got := rec.Body.String(); !strings.Contains(got, `"status":"found"`) {
		t.Errorf("ticket lookup body = %s, want found", got)
	}

	rec = do(t, e, http.MethodPost, base+"/contact", models.ContactRequest{Name: "Asha", Email: "not-an-email", Message: "hi"})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = do(t, e, http.MethodPost, base+"/contact", models.ContactRequest{Name: "Asha", Email: "asha@example.com", Message: "hi"})
	expectStatus(t, rec, http.StatusOK)
	if got := decode[SessionResponse](t, rec).Contact; got != "sent" {
		t.Errorf("contact = %q, want sent", got)
	}

	rec = do(t, e, http.MethodPost, base+"/view", models.NavigateRequest{View: "moon"})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = do(t, e, http.MethodPost, base+"/reset-all", nil)
	expectStatus(t, rec, http.StatusOK)
	snap := decode[SessionResponse](t, rec)
	if snap.Contact != "idle" || snap.Ticket.Status != "none" || snap.View != "home" {
		t.Errorf("after reset-all = %+v, want idle contact, no ticket, home view", snap)
	}
}

func TestStatelessRoutes(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/tickets/ab", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"status":"not_found"`) {
		t.Errorf("short PNR body = %s, want not_found", rec.Body.String())
	}

	rec = do(t, e, http.MethodGet, "/api/v1/cities", nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decode[map[string][]string](t, rec)["cities"]; len(got) != len(models.Cities) {
		t.Errorf("cities = %d, want %d", len(got), len(models.Cities))
	}

	rec = do(t, e, http.MethodGet, "/api/v1/sessions/does-not-exist", nil)
	expectStatus(t, rec, http.StatusNotFound)

	rec = do(t, e, http.MethodGet, "/health", nil)
	expectStatus(t, rec, http.StatusOK)
}
