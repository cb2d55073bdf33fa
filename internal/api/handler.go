package api

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/fuelwise/fuelwise/backend-go/internal/models"
	"github.com/fuelwise/fuelwise/backend-go/internal/ranking"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

// DistanceStationView is a correlated station annotated for the
// distance-only response: the per-liter cents saved against the nearest
// station, present only when positive.
type DistanceStationView struct {
	models.CorrelatedStation
	CentsSaved *float64 `json:"cents_saved,omitempty"`
}

type DistancesResponse struct {
	APIResponse
	AreaStats *models.AreaStats     `json:"area_stats,omitempty"`
	Stations  []DistanceStationView `json:"stations"`
}

type RankingsResponse struct {
	APIResponse
	Stations []models.RankedStation `json:"stations"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

// NewDistancesResponse annotates a distance-sorted station list with area
// stats and the reference-station price differentials. The reference is
// the nearest station, i.e. the first entry of the sorted list.
func NewDistancesResponse(stations []models.CorrelatedStation) *DistancesResponse {
	resp := &DistancesResponse{
		APIResponse: APIResponse{ResponseType: "distances"},
		Stations:    make([]DistanceStationView, len(stations)),
	}

	if stats, ok := ranking.ComputeAreaStats(stations); ok {
		resp.AreaStats = &stats
	}

	var referencePrice float64
	if len(stations) > 0 {
		referencePrice = stations[0].Price
	}

	for i, s := range stations {
		view := DistanceStationView{CorrelatedStation: s}
		if cents, ok := ranking.CentsSavedVsReference(referencePrice, s.Price); ok {
			view.CentsSaved = &cents
		}
		resp.Stations[i] = view
	}

	return resp
}

func NewRankingsResponse(stations []models.RankedStation) *RankingsResponse {
	return &RankingsResponse{
		APIResponse: APIResponse{ResponseType: "rankings"},
		Stations:    stations,
	}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// DistancesRequest is the POST body of the distances-only operation.
type DistancesRequest struct {
	Origin *models.Origin `json:"origin"`
	Radius *int           `json:"radius"`
}

// RankingsRequest is the POST body of the budget ranking operation.
type RankingsRequest struct {
	Origin     *models.Origin `json:"origin"`
	Radius     *int           `json:"radius"`
	Budget     *float64       `json:"budget"`
	Efficiency *float64       `json:"efficiency"`
	Sort       string         `json:"sort"`
}

func (r *DistancesRequest) Validate() error {
	return validateOrigin(r.Origin)
}

func (r *RankingsRequest) Validate() error {
	if err := validateOrigin(r.Origin); err != nil {
		return err
	}
	if !isFiniteNumber(r.Budget) {
		return ValidationError{Reason: "Invalid budget"}
	}
	if !isFiniteNumber(r.Efficiency) {
		return ValidationError{Reason: "Invalid efficiency"}
	}
	if _, err := models.ParseRankedSortKey(r.Sort); err != nil {
		return ValidationError{Reason: "Invalid sort key"}
	}
	return nil
}

// RadiusMeters returns the requested radius, or zero to let the pipeline
// apply its default.
func (r *DistancesRequest) RadiusMeters() int {
	if r.Radius == nil {
		return 0
	}
	return *r.Radius
}

func (r *RankingsRequest) RadiusMeters() int {
	if r.Radius == nil {
		return 0
	}
	return *r.Radius
}

// SortKey returns the validated sort key; call after Validate.
func (r *RankingsRequest) SortKey() models.RankedSortKey {
	key, err := models.ParseRankedSortKey(r.Sort)
	if err != nil {
		return models.SortValueScore
	}
	return key
}

func validateOrigin(origin *models.Origin) error {
	if origin == nil {
		return ValidationError{Reason: "Invalid origin"}
	}
	if math.IsNaN(origin.Lat) || math.IsInf(origin.Lat, 0) ||
		math.IsNaN(origin.Lng) || math.IsInf(origin.Lng, 0) {
		return ValidationError{Reason: "Invalid origin"}
	}
	if origin.Lat < -90 || origin.Lat > 90 || origin.Lng < -180 || origin.Lng > 180 {
		return ValidationError{Reason: "Invalid origin"}
	}
	return nil
}

func isFiniteNumber(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
