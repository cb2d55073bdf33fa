package ranking

import "github.com/fuelwise/fuelwise/backend-go/internal/models"

// ComputeAreaStats aggregates the unit prices of all correlated stations
// of one request into mean, maximum and minimum. ok is false for an empty
// set; callers must then skip scoring and savings entirely rather than
// divide by zero.
func ComputeAreaStats(stations []models.CorrelatedStation) (models.AreaStats, bool) {
	if len(stations) == 0 {
		return models.AreaStats{}, false
	}

	sum := 0.0
	minPrice := stations[0].Price
	maxPrice := stations[0].Price
	for _, s := range stations {
		sum += s.Price
		if s.Price < minPrice {
			minPrice = s.Price
		}
		if s.Price > maxPrice {
			maxPrice = s.Price
		}
	}

	return models.AreaStats{
		AvgPrice: sum / float64(len(stations)),
		MaxPrice: maxPrice,
		MinPrice: minPrice,
	}, true
}
