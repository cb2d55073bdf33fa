package models

import "strconv"

// Origin is the caller-supplied search position.
type Origin struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LatLng renders the origin as the "lat,lng" pair the Google APIs expect.
func (o Origin) LatLng() string {
	return FormatLatLng(o.Lat, o.Lng)
}

// Location is a station's position as reported by the search provider.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Candidate is a raw nearby-search result, before its fuel price has been
// confirmed. Candidates never leave the pipeline.
type Candidate struct {
	PlaceID  string
	Name     string
	Vicinity string
	Location Location
}

// EnrichedStation is a candidate confirmed to sell regular unleaded at a
// decodable price. Immutable once created.
type EnrichedStation struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"station_name"`
	Address  string   `json:"address"`
	Location Location `json:"location"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Price    float64  `json:"price"`
}

// CorrelatedStation is an enriched station with travel distance and
// duration attached. DistanceMeters is nil when the matrix element for the
// station was malformed.
type CorrelatedStation struct {
	EnrichedStation
	DistanceMeters *int   `json:"distance"`
	DistanceText   string `json:"distance_text"`
	DurationText   string `json:"duration_text"`
}

// AreaStats is the price baseline across all correlated stations of one
// request.
type AreaStats struct {
	AvgPrice float64 `json:"avg_price"`
	MaxPrice float64 `json:"max_price"`
	MinPrice float64 `json:"min_price"`
}

// RankedStation is the final output unit of the budget pipeline.
type RankedStation struct {
	CorrelatedStation
	FuelVolume                  float64   `json:"fuel_volume"`
	TravelCost                  float64   `json:"travel_cost"`
	FuelCost                    float64   `json:"fuel_cost"`
	TotalCost                   float64   `json:"total_cost"`
	CostPerLiterIncludingTravel float64   `json:"cost_per_liter_including_travel"`
	SavingsVsAverage            float64   `json:"savings_vs_average"`
	SavingsVsMostExpensive      float64   `json:"savings_vs_most_expensive"`
	ValueScore                  int       `json:"value_score"`
	AreaStats                   AreaStats `json:"area_stats"`
}

// FormatLatLng renders a coordinate pair the way the Google APIs expect it
// in query strings.
func FormatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
