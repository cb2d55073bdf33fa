package ranking

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/fuelwise/fuelwise/backend-go/internal/models"
)

// DefaultRadiusMeters is used when the caller leaves the search radius
// unset.
const DefaultRadiusMeters = 5000

// Service orchestrates the station ranking pipeline: nearby search, price
// enrichment, distance correlation, and the economic scoring on top.
type Service struct {
	stations  StationSource
	distances DistanceSource
}

func NewService(stations StationSource, distances DistanceSource) *Service {
	return &Service{
		stations:  stations,
		distances: distances,
	}
}

// DistancesOnly returns all priced stations around the origin, sorted by
// ascending travel distance. Stations whose distance could not be resolved
// are excluded.
func (s *Service) DistancesOnly(ctx context.Context, origin models.Origin, radiusMeters int) ([]models.CorrelatedStation, error) {
	correlated, err := s.correlatedStations(ctx, origin, radiusMeters)
	if err != nil {
		return nil, err
	}

	models.SortByDistance(correlated)

	return correlated, nil
}

// RankByBudget returns all priced stations around the origin annotated
// with the fuel volume affordable on the budget, the cost breakdown, the
// value score and the savings against the area baselines. The result is
// unsorted; callers pick a sort criterion.
func (s *Service) RankByBudget(ctx context.Context, origin models.Origin, budget, efficiency float64, radiusMeters int) ([]models.RankedStation, error) {
	correlated, err := s.correlatedStations(ctx, origin, radiusMeters)
	if err != nil {
		return nil, err
	}
	if len(correlated) == 0 {
		return []models.RankedStation{}, nil
	}

	stats, _ := ComputeAreaStats(correlated)

	ranked := make([]models.RankedStation, len(correlated))
	for i, st := range correlated {
		oneWayKm := float64(*st.DistanceMeters) / 1000

		econ := computeEconomics(st.Price, oneWayKm, budget, efficiency)
		fuelCost := econ.FuelVolume * st.Price
		totalCost := econ.TravelCost + fuelCost

		costPerLiter := 0.0
		if econ.FuelVolume > 0 {
			costPerLiter = totalCost / econ.FuelVolume
		}

		ranked[i] = models.RankedStation{
			CorrelatedStation:           st,
			FuelVolume:                  econ.FuelVolume,
			TravelCost:                  econ.TravelCost,
			FuelCost:                    fuelCost,
			TotalCost:                   totalCost,
			CostPerLiterIncludingTravel: costPerLiter,
			SavingsVsAverage:            savingsVsBaseline(stats.AvgPrice, st.Price, econ.FuelVolume),
			SavingsVsMostExpensive:      savingsVsBaseline(stats.MaxPrice, st.Price, econ.FuelVolume),
			ValueScore:                  valueScore(econ.FuelVolume, totalCost, oneWayKm, st.Price, stats),
			AreaStats:                   stats,
		}
	}

	return ranked, nil
}

// correlatedStations runs the shared front half of both pipelines: search,
// parallel enrichment, one distance matrix call, and the drop of stations
// without a resolvable distance. Enrichment failures are recovered
// per-station; search and matrix failures fail the whole run.
func (s *Service) correlatedStations(ctx context.Context, origin models.Origin, radiusMeters int) ([]models.CorrelatedStation, error) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}

	candidates, err := s.stations.SearchNearby(ctx, origin, radiusMeters)
	if err != nil {
		return nil, NewProviderError("searching nearby stations", err)
	}

	enriched := s.stations.EnrichStations(ctx, candidates)
	if len(enriched) == 0 {
		log.Debug().Int("candidate_count", len(candidates)).Msg("No candidates survived enrichment")
		return nil, nil
	}

	correlated, err := s.distances.Correlate(ctx, origin, enriched)
	if err != nil {
		return nil, NewProviderError("correlating distances", err)
	}

	kept := make([]models.CorrelatedStation, 0, len(correlated))
	for _, c := range correlated {
		if c.DistanceMeters != nil {
			kept = append(kept, c)
		}
	}

	log.Debug().
		Int("candidate_count", len(candidates)).
		Int("enriched_count", len(enriched)).
		Int("correlated_count", len(kept)).
		Msg("Pipeline front half complete")

	return kept, nil
}
