package pricing

import "github.com/julianstephens/quotewiz/internal/models"

const (
	// RoomSurcharge is added per room beyond the first
	RoomSurcharge = 50000
)

var (
	basePrices = map[models.ACType]float64{
		models.ACCeilingCassette: 180000,
		models.ACCeilingMounted:  150000,
		models.ACWallMounted:     120000,
		models.ACFloorStanding:   200000,
		models.ACDuctType:        250000,
	}

	capacityMultipliers = map[models.Capacity]float64{
		models.Capacity2_5:  1.0,
		models.Capacity4_0:  1.3,
		models.Capacity5_0:  1.6,
		models.Capacity6_0:  1.9,
		models.Capacity8_0:  2.5,
		models.Capacity10_0: 3.2,
	}

	buildingFactors = map[models.BuildingType]float64{
		models.BuildingHighRise: 1.2,
		models.BuildingOld:      1.15,
	}

	floorSurcharges = map[models.Floor]float64{
		models.Floor4To6:  30000,
		models.Floor7Plus: 50000,
	}

	difficultyFactors = map[models.Difficulty]float64{
		models.DifficultyDifficult:     1.3,
		models.DifficultyVeryDifficult: 1.5,
	}

	urgencyFactors = map[models.Urgency]float64{
		models.UrgencyUrgent:    1.2,
		models.UrgencyEmergency: 1.5,
	}
)

// lookup returns the table entry for key, or def when the key is unanswered or
// not listed.
func lookup[K comparable](table map[K]float64, key K, def float64) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return def
}

// BasePrice returns the unit base price for an AC type, 0 when unanswered.
func BasePrice(t models.ACType) float64 {
	return lookup(basePrices, t, 0)
}

// CapacityMultiplier returns the price multiplier for a capacity, 1 when unanswered.
func CapacityMultiplier(c models.Capacity) float64 {
	return lookup(capacityMultipliers, c, 1)
}

// BuildingFactor returns the multiplier for a building type.
func BuildingFactor(b models.BuildingType) float64 {
	return lookup(buildingFactors, b, 1)
}

// FloorSurcharge returns the flat surcharge for a floor band.
func FloorSurcharge(f models.Floor) float64 {
	return lookup(floorSurcharges, f, 0)
}

// DifficultyFactor returns the multiplier for an installation difficulty.
func DifficultyFactor(d models.Difficulty) float64 {
	return lookup(difficultyFactors, d, 1)
}

// UrgencyFactor returns the multiplier for an urgency.
func UrgencyFactor(u models.Urgency) float64 {
	return lookup(urgencyFactors, u, 1)
}
