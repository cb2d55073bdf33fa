package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/fuelwise/fuelwise/backend-go/internal/models"
	"github.com/fuelwise/fuelwise/backend-go/pkg/http/client"
)

// Correlator attaches travel distance and duration to an ordered station
// list. The Nth result corresponds to the Nth input station.
type Correlator interface {
	Correlate(ctx context.Context, origin models.Origin, stations []models.EnrichedStation) ([]models.CorrelatedStation, error)
}

// GoogleMatrix correlates stations via the Distance Matrix API, one call
// per request with the origin against all destinations.
type GoogleMatrix struct {
	httpClient *client.Client
	apiKey     string
}

func NewGoogleMatrix(httpClient *client.Client, apiKey string) *GoogleMatrix {
	return &GoogleMatrix{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

type matrixElement struct {
	Status   string `json:"status"`
	Distance *struct {
		Value int    `json:"value"`
		Text  string `json:"text"`
	} `json:"distance"`
	Duration *struct {
		Text string `json:"text"`
	} `json:"duration"`
}

func (g *GoogleMatrix) Correlate(ctx context.Context, origin models.Origin, stations []models.EnrichedStation) ([]models.CorrelatedStation, error) {
	if len(stations) == 0 {
		return nil, nil
	}

	// The destinations string is built from the same ordered list used to
	// index the response below. Reordering either side mis-attributes
	// distances.
	destinations := make([]string, len(stations))
	for i, s := range stations {
		destinations[i] = models.FormatLatLng(s.Location.Lat, s.Location.Lng)
	}

	resp, err := g.httpClient.Get(ctx, fmt.Sprintf(
		"/maps/api/distancematrix/json?origins=%s&destinations=%s&key=%s",
		origin.LatLng(), url.QueryEscape(strings.Join(destinations, "|")), g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("fetching distance matrix: %w", err)
	}

	var matrixResp struct {
		Rows []struct {
			Elements []matrixElement `json:"elements"`
		} `json:"rows"`
	}

	if err := json.Unmarshal(resp.Body, &matrixResp); err != nil {
		return nil, fmt.Errorf("decoding distance matrix response: %w", err)
	}

	if len(matrixResp.Rows) != 1 {
		return nil, fmt.Errorf("expected 1 distance matrix row, got %d", len(matrixResp.Rows))
	}

	elements := matrixResp.Rows[0].Elements
	if len(elements) != len(stations) {
		return nil, fmt.Errorf("distance matrix elements do not match destinations: got %d, want %d",
			len(elements), len(stations))
	}

	correlated := make([]models.CorrelatedStation, len(stations))
	for i, s := range stations {
		cs := models.CorrelatedStation{EnrichedStation: s}
		el := elements[i]
		if el.Distance != nil {
			meters := el.Distance.Value
			cs.DistanceMeters = &meters
			cs.DistanceText = el.Distance.Text
		} else {
			log.Warn().Str("place_id", s.PlaceID).Str("status", el.Status).Msg("Distance matrix element without distance")
		}
		if el.Duration != nil {
			cs.DurationText = el.Duration.Text
		}
		correlated[i] = cs
	}

	return correlated, nil
}
