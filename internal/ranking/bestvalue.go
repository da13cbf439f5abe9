package ranking

import (
	"math"

	"github.com/dharmasatrya/volobus/internal/models"
)

const (
	PriceWeight    = 0.5
	DurationWeight = 0.3
	RatingWeight   = 0.2

	maxRating = 5.0
)

func CalculateScores(offers []models.BusOffer) []models.BusOffer {
	if len(offers) == 0 {
		return offers
	}

	maxPrice := findMaxPrice(offers)
	maxDuration := findMaxDuration(offers)

	result := make([]models.BusOffer, len(offers))
	for i, o := range offers {
		result[i] = o
		result[i].BestValueScore = CalculateBestValue(o, maxPrice, maxDuration)
	}

	return result
}

// Lower score = better value. Rating counts against the score by how far it
// falls short of five stars.
func CalculateBestValue(offer models.BusOffer, maxPrice, maxDuration float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (float64(offer.BasePrice) / maxPrice) * 100
	}

	durationScore := 0.0
	if maxDuration > 0 {
		durationScore = (float64(offer.Duration.TotalMinutes) / maxDuration) * 100
	}

	ratingScore := (maxRating - offer.Rating) / maxRating * 100
	score := (priceScore * PriceWeight) + (durationScore * DurationWeight) + (ratingScore * RatingWeight)

	return math.Round(score*100) / 100
}

func findMaxPrice(offers []models.BusOffer) float64 {
	maxPrice := 0.0
	for _, o := range offers {
		if p := float64(o.BasePrice); p > maxPrice {
			maxPrice = p
		}
	}
	return maxPrice
}

func findMaxDuration(offers []models.BusOffer) float64 {
	maxDuration := 0.0
	for _, o := range offers {
		dur := float64(o.Duration.TotalMinutes)
		if dur > maxDuration {
			maxDuration = dur
		}
	}
	return maxDuration
}
