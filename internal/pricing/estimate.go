// Package pricing turns questionnaire answers into an estimated installation price.
package pricing

import (
	"math"

	"github.com/julianstephens/quotewiz/internal/models"
)

// Estimate returns the rounded price for the given answers. Unanswered fields
// contribute nothing, so a partially filled set still yields a usable figure.
func Estimate(a models.AnswerSet) int {
	return Explain(a).Total
}

// Explain computes the estimate and keeps every intermediate value. The running
// value is only rounded once, after the urgency factor.
func Explain(a models.AnswerSet) models.PriceBreakdown {
	b := models.PriceBreakdown{
		BasePrice:          BasePrice(a.ACType),
		CapacityMultiplier: CapacityMultiplier(a.Capacity),
		BuildingFactor:     BuildingFactor(a.BuildingType),
		FloorSurcharge:     FloorSurcharge(a.Floor),
		DifficultyFactor:   DifficultyFactor(a.InstallationDifficulty),
		UrgencyFactor:      UrgencyFactor(a.Urgency),
	}
	if a.Rooms > 1 {
		b.RoomSurcharge = float64(a.Rooms-1) * RoomSurcharge
	}

	price := b.BasePrice
	price *= b.CapacityMultiplier
	price += b.RoomSurcharge
	price *= b.BuildingFactor
	price += b.FloorSurcharge
	price *= b.DifficultyFactor
	price *= b.UrgencyFactor

	b.Raw = price
	b.Total = toInt(math.Round(price))
	return b
}

// toInt saturates instead of wrapping when price is outside int range.
func toInt(price float64) int {
	switch {
	case math.IsNaN(price):
		return 0
	case price >= math.MaxInt:
		return math.MaxInt
	case price <= math.MinInt:
		return math.MinInt
	}
	return int(price)
}
