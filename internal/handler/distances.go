package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/fuelwise/fuelwise/backend-go/internal/api"
	"github.com/fuelwise/fuelwise/backend-go/internal/ranking"
)

// DistancesHandler serves the distance-only pipeline: every priced station
// around the origin, sorted by ascending travel distance.
type DistancesHandler struct {
	pipeline ranking.Pipeline
}

func NewDistancesHandler(pipeline ranking.Pipeline) *DistancesHandler {
	return &DistancesHandler{
		pipeline: pipeline,
	}
}

func (h *DistancesHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req api.DistancesRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return api.Error("Invalid request body", http.StatusBadRequest)
	}

	if err := req.Validate(); err != nil {
		var vErr api.ValidationError
		if errors.As(err, &vErr) {
			return api.Error(vErr.Error(), http.StatusBadRequest)
		}
		return api.Error("Invalid parameters", http.StatusBadRequest)
	}

	stations, err := h.pipeline.DistancesOnly(ctx, *req.Origin, req.RadiusMeters())
	if err != nil {
		log.Error().Err(err).Msg("Distances pipeline failed")
		return api.Error("Failed to fetch station data", http.StatusInternalServerError)
	}

	return api.Success(api.NewDistancesResponse(stations))
}
