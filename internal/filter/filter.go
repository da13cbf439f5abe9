package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/ranking"
	"github.com/dharmasatrya/volobus/internal/timezone"
)

// Apply returns a filtered, sorted copy of offers. The input slice is never
// reordered.
func Apply(offers []models.BusOffer, filters *models.OfferFilters, sortBy, sortOrder string) []models.BusOffer {
	filtered := applyFilters(offers, filters)

	if sortBy == "best_value" {
		filtered = ranking.CalculateScores(filtered)
	}

	return applySort(filtered, sortBy, sortOrder)
}

func applyFilters(offers []models.BusOffer, filters *models.OfferFilters) []models.BusOffer {
	result := make([]models.BusOffer, 0, len(offers))

	for _, o := range offers {
		if filters == nil || matchesFilters(o, filters) {
			result = append(result, o)
		}
	}

	return result
}

func matchesFilters(o models.BusOffer, filters *models.OfferFilters) bool {
	if filters.PriceMin != nil && o.BasePrice < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && o.BasePrice > *filters.PriceMax {
		return false
	}

	if filters.MinRating != nil && o.Rating < *filters.MinRating {
		return false
	}

	if len(filters.Categories) > 0 {
		found := false
		for _, c := range filters.Categories {
			if strings.EqualFold(string(o.Category), string(c)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, a := range filters.Amenities {
		if !o.HasAmenity(a) {
			return false
		}
	}

	depTime := minutesOfDay(o.DepartureTime)
	if filters.DepartureTimeMin != nil {
		minTime, err := timezone.ParseClock(*filters.DepartureTimeMin)
		if err == nil && depTime < minTime {
			return false
		}
	}
	if filters.DepartureTimeMax != nil {
		maxTime, err := timezone.ParseClock(*filters.DepartureTimeMax)
		if err == nil && depTime > maxTime {
			return false
		}
	}

	return true
}

func minutesOfDay(t time.Time) int {
	t = t.In(timezone.IST)
	return t.Hour()*60 + t.Minute()
}

func applySort(offers []models.BusOffer, sortBy, sortOrder string) []models.BusOffer {
	if len(offers) == 0 {
		return offers
	}

	ascending := strings.ToLower(sortOrder) != "desc"

	var less func(i, j int) bool
	switch strings.ToLower(sortBy) {
	case "price":
		less = func(i, j int) bool { return offers[i].BasePrice < offers[j].BasePrice }
	case "rating":
		less = func(i, j int) bool { return offers[i].Rating < offers[j].Rating }
	case "duration":
		less = func(i, j int) bool { return offers[i].Duration.TotalMinutes < offers[j].Duration.TotalMinutes }
	case "seats":
		less = func(i, j int) bool { return offers[i].AvailableSeats < offers[j].AvailableSeats }
	case "best_value":
		less = func(i, j int) bool { return offers[i].BestValueScore < offers[j].BestValueScore }
	default:
		// Departure order is the order offers are generated in.
		less = func(i, j int) bool { return offers[i].DepartureTime.Before(offers[j].DepartureTime) }
	}

	sort.SliceStable(offers, func(i, j int) bool {
		if ascending {
			return less(i, j)
		}
		return less(j, i)
	})

	return offers
}
