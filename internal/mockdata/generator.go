package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/timezone"
	"github.com/dharmasatrya/volobus/pkg/currency"
)

const (
	OfferCount = 8

	sleeperTierPrice    = 1200
	nonSleeperTierPrice = 800
	maxSurcharge        = 500

	minRating   = 3.5
	ratingRange = 1.5

	busTotalSeats     = 30
	minAvailableSeats = 10
	availableSpread   = 15

	firstDepartureHour = 18

	ReferencePrefix = "VOLO"
)

var Operators = []string{
	"VoloBus Prime", "Orange Tours", "SRS Travels", "VRL Logistics", "National Travels", "InterCity SmartBus",
}

var Amenities = []string{
	"WiFi", "Water Bottle", "Blanket", "Charging Point", "Reading Light", "Emergency Exit",
}

// Rand is the random capability the generators draw from. *rand.Rand
// satisfies it; tests pass fixed sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Generator produces mock bus offers, seat layouts and booking references.
// It holds no state other than its random source.
type Generator struct {
	rnd Rand
}

// NewGenerator returns a generator backed by rnd, or by the goroutine-safe
// package-level source when rnd is nil.
func NewGenerator(rnd Rand) *Generator {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Generator{rnd: rnd}
}

// GenerateOffers always returns OfferCount offers ordered by departure.
// An unparseable date falls back to today in IST.
func (g *Generator) GenerateOffers(params models.SearchParams) []models.BusOffer {
	date, err := timezone.ParseCalendarDate(params.Date)
	if err != nil {
		date = time.Now().In(timezone.IST)
	}

	offers := make([]models.BusOffer, OfferCount)
	for i := range offers {
		basePrice := nonSleeperTierPrice
		if i%2 == 0 {
			basePrice = sleeperTierPrice
		}
		basePrice += g.rnd.Intn(maxSurcharge)

		duration := models.Duration{
			Hours:   8 + i%3,
			Minutes: 30,
		}
		duration.TotalMinutes = duration.Hours*60 + duration.Minutes

		departure := timezone.AtClock(date, firstDepartureHour+i, 0)
		arrival := departure.Add(time.Duration(duration.TotalMinutes) * time.Minute)

		offers[i] = models.BusOffer{
			ID:            fmt.Sprintf("bus-%d", i+1),
			OperatorName:  Operators[i%len(Operators)],
			Category:      models.Categories[i%len(models.Categories)],
			DepartureTime: departure,
			ArrivalTime:   arrival,
			Duration:      duration,
			Source:        params.Source,
			Destination:   params.Destination,
			BasePrice:     basePrice,
			Price: models.Price{
				Amount:    basePrice,
				Currency:  "INR",
				Formatted: currency.FormatINR(basePrice),
			},
			Rating:         minRating + g.rnd.Float64()*ratingRange,
			TotalSeats:     busTotalSeats,
			AvailableSeats: minAvailableSeats + g.rnd.Intn(availableSpread),
			Amenities:      append([]string(nil), Amenities[:3+g.rnd.Intn(3)]...),
		}
	}

	return offers
}

// ReferenceCode returns a booking reference such as VOLO4821.
func (g *Generator) ReferenceCode() string {
	return fmt.Sprintf("%s%d", ReferencePrefix, 1000+g.rnd.Intn(9000))
}
