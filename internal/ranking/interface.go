package ranking

import (
	"context"

	"github.com/fuelwise/fuelwise/backend-go/internal/models"
)

// Pipeline exposes the two station ranking operations.
type Pipeline interface {
	DistancesOnly(ctx context.Context, origin models.Origin, radiusMeters int) ([]models.CorrelatedStation, error)
	RankByBudget(ctx context.Context, origin models.Origin, budget, efficiency float64, radiusMeters int) ([]models.RankedStation, error)
}

// StationSource finds candidates and confirms their fuel prices.
type StationSource interface {
	SearchNearby(ctx context.Context, origin models.Origin, radiusMeters int) ([]models.Candidate, error)
	EnrichStations(ctx context.Context, candidates []models.Candidate) []models.EnrichedStation
}

// DistanceSource attaches travel distance and duration to an ordered
// station list, positionally aligned.
type DistanceSource interface {
	Correlate(ctx context.Context, origin models.Origin, stations []models.EnrichedStation) ([]models.CorrelatedStation, error)
}
