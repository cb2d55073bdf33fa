package places

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/fuelwise/fuelwise/backend-go/internal/models"
	"github.com/fuelwise/fuelwise/backend-go/pkg/http/client"
)

// DefaultRadiusMeters is used when the caller does not supply a radius.
const DefaultRadiusMeters = 5000

const enrichWorkerCount = 4

// GooglePlaces finds gas stations via the legacy Nearby Search API and
// confirms their fuel prices via the Places v1 details API. The two APIs
// live on different hosts, hence the two clients.
type GooglePlaces struct {
	searchClient  *client.Client
	detailsClient *client.Client
	apiKey        string
}

func NewGooglePlaces(searchClient, detailsClient *client.Client, apiKey string) *GooglePlaces {
	return &GooglePlaces{
		searchClient:  searchClient,
		detailsClient: detailsClient,
		apiKey:        apiKey,
	}
}

func (g *GooglePlaces) SearchNearby(ctx context.Context, origin models.Origin, radiusMeters int) ([]models.Candidate, error) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}

	resp, err := g.searchClient.Get(ctx, fmt.Sprintf(
		"/maps/api/place/nearbysearch/json?location=%s&radius=%d&type=gas_station&key=%s",
		origin.LatLng(), radiusMeters, g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("fetching nearby stations: %w", err)
	}

	var searchResp struct {
		Results []struct {
			PlaceID  string `json:"place_id"`
			Name     string `json:"name"`
			Vicinity string `json:"vicinity"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	if err := json.Unmarshal(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("decoding nearby search response: %w", err)
	}

	candidates := make([]models.Candidate, len(searchResp.Results))
	for i, r := range searchResp.Results {
		candidates[i] = models.Candidate{
			PlaceID:  r.PlaceID,
			Name:     r.Name,
			Vicinity: r.Vicinity,
			Location: models.Location{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		}
	}

	log.Debug().Int("candidate_count", len(candidates)).Msg("Nearby search returned candidates")

	return candidates, nil
}

// EnrichStations fetches details for every candidate concurrently. A
// candidate whose details fetch fails or that has no decodable regular
// unleaded price is dropped; the survivors come back in candidate order.
func (g *GooglePlaces) EnrichStations(ctx context.Context, candidates []models.Candidate) []models.EnrichedStation {
	// One result slot per candidate, keyed by its original position, so
	// completion order never reorders the output.
	results := make([]*models.EnrichedStation, len(candidates))

	work := make(chan int, len(candidates))

	var wg sync.WaitGroup
	for w := 0; w < enrichWorkerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = g.enrichStation(ctx, candidates[i])
			}
		}()
	}

	for i := range candidates {
		work <- i
	}
	close(work)
	wg.Wait()

	enriched := make([]models.EnrichedStation, 0, len(candidates))
	for _, r := range results {
		if r != nil {
			enriched = append(enriched, *r)
		}
	}

	log.Debug().
		Int("candidate_count", len(candidates)).
		Int("enriched_count", len(enriched)).
		Msg("Enrichment complete")

	return enriched
}

func (g *GooglePlaces) enrichStation(ctx context.Context, candidate models.Candidate) *models.EnrichedStation {
	resp, err := g.detailsClient.Get(ctx, fmt.Sprintf(
		"/v1/places/%s?fields=displayName,formattedAddress,fuelOptions&key=%s",
		candidate.PlaceID, g.apiKey))
	if err != nil {
		log.Warn().Err(err).Str("place_id", candidate.PlaceID).Msg("Dropping candidate: details fetch failed")
		return nil
	}

	var details placeDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		log.Warn().Err(err).Str("place_id", candidate.PlaceID).Msg("Dropping candidate: malformed details response")
		return nil
	}

	price, ok := details.regularUnleadedPrice()
	if !ok {
		log.Debug().Str("place_id", candidate.PlaceID).Msg("Dropping candidate: no regular unleaded price")
		return nil
	}

	name := candidate.Name
	if details.DisplayName != nil && details.DisplayName.Text != "" {
		name = details.DisplayName.Text
	}
	address := candidate.Vicinity
	if details.FormattedAddress != "" {
		address = details.FormattedAddress
	}

	return &models.EnrichedStation{
		PlaceID:  candidate.PlaceID,
		Name:     name,
		Address:  address,
		Location: candidate.Location,
		Lat:      candidate.Location.Lat,
		Lng:      candidate.Location.Lng,
		Price:    price,
	}
}

type placeDetails struct {
	DisplayName *struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
	FuelOptions      *struct {
		FuelPrices []fuelPrice `json:"fuelPrices"`
	} `json:"fuelOptions"`
}

// regularUnleadedPrice returns the decoded regular unleaded price. Absence
// of the fuel entry or of either price field is a normal outcome, reported
// through ok, not an error.
func (d *placeDetails) regularUnleadedPrice() (float64, bool) {
	if d.FuelOptions == nil {
		return 0, false
	}
	for _, fp := range d.FuelOptions.FuelPrices {
		if fp.Type != fuelTypeRegularUnleaded {
			continue
		}
		if fp.Price == nil || fp.Price.Units == nil || fp.Price.Nanos == nil {
			return 0, false
		}
		return decodePrice(*fp.Price.Units, *fp.Price.Nanos), true
	}
	return 0, false
}
