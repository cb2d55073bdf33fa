package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/fuelwise/fuelwise/backend-go/internal/api"
	"github.com/fuelwise/fuelwise/backend-go/internal/models"
	"github.com/fuelwise/fuelwise/backend-go/internal/ranking"
)

// RankingsHandler serves the budget pipeline: stations annotated with
// affordable fuel volume, cost breakdown, value score and savings, sorted
// by the caller's chosen criterion.
type RankingsHandler struct {
	pipeline ranking.Pipeline
}

func NewRankingsHandler(pipeline ranking.Pipeline) *RankingsHandler {
	return &RankingsHandler{
		pipeline: pipeline,
	}
}

func (h *RankingsHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req api.RankingsRequest
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

	stations, err := h.pipeline.RankByBudget(ctx, *req.Origin, *req.Budget, *req.Efficiency, req.RadiusMeters())
	if err != nil {
		log.Error().Err(err).Msg("Rankings pipeline failed")
		return api.Error("Failed to calculate volume-based data", http.StatusInternalServerError)
	}

	models.SortRanked(stations, req.SortKey())

	return api.Success(api.NewRankingsResponse(stations))
}
