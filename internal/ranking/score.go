package ranking

import (
	"math"

	"github.com/fuelwise/fuelwise/backend-go/internal/models"
)

// Value score coefficients. The four weights cap the score at 100; the
// constants below them set where each component saturates.
const (
	volumeWeight   = 40.0
	costWeight     = 30.0
	priceWeight    = 20.0
	distanceWeight = 10.0

	fullVolumeLiters    = 50.0 // volume component saturates at a full tank
	costPerLiterCeiling = 3.0  // cost component hits zero at this cost per liter
	distanceCeilingKm   = 10.0 // distance component hits zero at this range
)

// valueScore blends affordability, cost efficiency, price competitiveness
// and proximity into an integer 0-100 score, higher is better. A station
// with no affordable volume or no cost scores zero.
func valueScore(fuelVolume, totalCost, oneWayKm, unitPrice float64, stats models.AreaStats) int {
	if fuelVolume <= 0 || totalCost <= 0 {
		return 0
	}

	volumeScore := math.Min(fuelVolume/fullVolumeLiters, 1) * volumeWeight

	costPerLiter := totalCost / fuelVolume
	costScore := math.Max(0, (costPerLiterCeiling-costPerLiter)/costPerLiterCeiling) * costWeight

	priceScore := 0.0
	if stats.AvgPrice > 0 {
		priceScore = math.Max(0, (stats.AvgPrice-unitPrice)/stats.AvgPrice) * priceWeight
	}

	distanceScore := math.Max(0, (distanceCeilingKm-oneWayKm)/distanceCeilingKm) * distanceWeight

	return int(math.Round(volumeScore + costScore + priceScore + distanceScore))
}
