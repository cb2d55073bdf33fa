package main

import (
	"sync"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/fuelwise/fuelwise/backend-go/internal/config"
	"github.com/fuelwise/fuelwise/backend-go/internal/distance"
	"github.com/fuelwise/fuelwise/backend-go/internal/handler"
	"github.com/fuelwise/fuelwise/backend-go/internal/places"
	"github.com/fuelwise/fuelwise/backend-go/internal/ranking"
	"github.com/fuelwise/fuelwise/backend-go/pkg/http/client"
)

var (
	distancesHandler *handler.DistancesHandler
	setupOnce        sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		log.Info().Str("env", cfg.Environment).Msg("Environment")

		mapsClient := client.New(client.Options{
			BaseURL: cfg.MapsBaseURL,
			Timeout: cfg.HTTPTimeout,
		})
		placesClient := client.New(client.Options{
			BaseURL: cfg.PlacesBaseURL,
			Timeout: cfg.HTTPTimeout,
		})

		stationSource := places.NewGooglePlaces(mapsClient, placesClient, cfg.GoogleAPIKey)
		distanceSource := distance.NewGoogleMatrix(mapsClient, cfg.GoogleAPIKey)
		pipeline := ranking.NewService(stationSource, distanceSource)

		distancesHandler = handler.NewDistancesHandler(pipeline)
	})
}

func main() {
	lambda.Start(distancesHandler.HandleRequest)
}
