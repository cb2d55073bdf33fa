package places

import (
	"context"

	"github.com/fuelwise/fuelwise/backend-go/internal/models"
)

// StationSource finds fuel station candidates and confirms their prices.
type StationSource interface {
	SearchNearby(ctx context.Context, origin models.Origin, radiusMeters int) ([]models.Candidate, error)
	EnrichStations(ctx context.Context, candidates []models.Candidate) []models.EnrichedStation
}
