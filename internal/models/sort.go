package models

import (
	"fmt"
	"math"
	"sort"
)

// RankedSortKey selects the criterion used to order ranked stations.
type RankedSortKey string

const (
	SortValueScore RankedSortKey = "value_score"
	SortSavings    RankedSortKey = "savings"
	SortDistance   RankedSortKey = "distance"
	SortFuelVolume RankedSortKey = "fuel_volume"
	SortTotalCost  RankedSortKey = "total_cost"
)

// ParseRankedSortKey validates a caller-supplied sort key. The empty string
// maps to the default value-score ordering.
func ParseRankedSortKey(s string) (RankedSortKey, error) {
	switch RankedSortKey(s) {
	case "":
		return SortValueScore, nil
	case SortValueScore, SortSavings, SortDistance, SortFuelVolume, SortTotalCost:
		return RankedSortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key: %q", s)
}

// SortRanked orders stations in place by the given key. The sort is stable:
// descending for score, savings and volume, ascending for distance and
// total cost.
func SortRanked(stations []RankedStation, key RankedSortKey) {
	sort.SliceStable(stations, func(i, j int) bool {
		a, b := stations[i], stations[j]
		switch key {
		case SortSavings:
			return a.SavingsVsAverage > b.SavingsVsAverage
		case SortDistance:
			return distanceOrInf(a.CorrelatedStation) < distanceOrInf(b.CorrelatedStation)
		case SortFuelVolume:
			return a.FuelVolume > b.FuelVolume
		case SortTotalCost:
			return a.TotalCost < b.TotalCost
		default:
			return a.ValueScore > b.ValueScore
		}
	})
}

// SortByDistance orders correlated stations in place by ascending travel
// distance. Stations without a distance sort last.
func SortByDistance(stations []CorrelatedStation) {
	sort.SliceStable(stations, func(i, j int) bool {
		return distanceOrInf(stations[i]) < distanceOrInf(stations[j])
	})
}

func distanceOrInf(s CorrelatedStation) int {
	if s.DistanceMeters == nil {
		return math.MaxInt
	}
	return *s.DistanceMeters
}
