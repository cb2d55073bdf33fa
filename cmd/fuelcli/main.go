package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/muesli/gominatim"
	"github.com/urfave/cli/v2"

	"github.com/fuelwise/fuelwise/backend-go/internal/config"
	"github.com/fuelwise/fuelwise/backend-go/internal/distance"
	"github.com/fuelwise/fuelwise/backend-go/internal/models"
	"github.com/fuelwise/fuelwise/backend-go/internal/places"
	"github.com/fuelwise/fuelwise/backend-go/internal/ranking"
	"github.com/fuelwise/fuelwise/backend-go/pkg/http/client"
)

const nominatimServer = "https://nominatim.openstreetmap.org/"

func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	app := &cli.App{
		Name:  "fuelcli",
		Usage: "Find nearby fuel stations and rank them by value",
		Commands: []*cli.Command{
			nearbyCommand(),
			rankCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func originFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  "lat",
			Usage: "Latitude of the origin",
		},
		&cli.Float64Flag{
			Name:  "lng",
			Usage: "Longitude of the origin",
		},
		&cli.StringFlag{
			Name:  "location",
			Usage: "Origin as a free-text location, resolved via Nominatim",
		},
		&cli.IntFlag{
			Name:    "radius",
			Aliases: []string{"r"},
			Usage:   "Search radius in meters",
			Value:   ranking.DefaultRadiusMeters,
		},
	}
}

func nearbyCommand() *cli.Command {
	return &cli.Command{
		Name:  "nearby",
		Usage: "List nearby stations with prices, sorted by distance",
		Flags: originFlags(),
		Action: func(c *cli.Context) error {
			origin, err := resolveOrigin(c)
			if err != nil {
				return err
			}

			pipeline, err := newPipeline()
			if err != nil {
				return err
			}

			stations, err := pipeline.DistancesOnly(context.Background(), origin, c.Int("radius"))
			if err != nil {
				return err
			}

			if len(stations) == 0 {
				fmt.Println("No priced stations found")
				return nil
			}

			for i, s := range stations {
				fmt.Printf("Station %d:\n", i+1)
				fmt.Printf("  Name: %s\n", s.Name)
				fmt.Printf("  Address: %s\n", s.Address)
				fmt.Printf("  Price: %.3f/L\n", s.Price)
				fmt.Printf("  Distance: %s (%s)\n", s.DistanceText, s.DurationText)
				fmt.Println()
			}
			return nil
		},
	}
}

func rankCommand() *cli.Command {
	flags := append(originFlags(),
		&cli.Float64Flag{
			Name:     "budget",
			Usage:    "Total fuel budget",
			Required: true,
		},
		&cli.Float64Flag{
			Name:     "efficiency",
			Usage:    "Vehicle efficiency in liters per 100 km",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Sort key: value_score, savings, distance, fuel_volume or total_cost",
			Value: string(models.SortValueScore),
		},
	)

	return &cli.Command{
		Name:  "rank",
		Usage: "Rank nearby stations by how far the fuel budget goes",
		Flags: flags,
		Action: func(c *cli.Context) error {
			origin, err := resolveOrigin(c)
			if err != nil {
				return err
			}

			sortKey, err := models.ParseRankedSortKey(c.String("sort"))
			if err != nil {
				return err
			}

			pipeline, err := newPipeline()
			if err != nil {
				return err
			}

			stations, err := pipeline.RankByBudget(context.Background(), origin, c.Float64("budget"), c.Float64("efficiency"), c.Int("radius"))
			if err != nil {
				return err
			}

			if len(stations) == 0 {
				fmt.Println("No priced stations found")
				return nil
			}

			models.SortRanked(stations, sortKey)

			stats := stations[0].AreaStats
			fmt.Printf("Area prices: avg %.3f, min %.3f, max %.3f\n\n", stats.AvgPrice, stats.MinPrice, stats.MaxPrice)

			for i, s := range stations {
				fmt.Printf("Station %d (score %d):\n", i+1, s.ValueScore)
				fmt.Printf("  Name: %s\n", s.Name)
				fmt.Printf("  Price: %.3f/L, %s away\n", s.Price, s.DistanceText)
				fmt.Printf("  Fuel for budget: %.2f L (travel cost %.2f, total %.2f)\n", s.FuelVolume, s.TravelCost, s.TotalCost)
				if s.SavingsVsAverage > 0 {
					fmt.Printf("  Saves %.2f vs the area average\n", s.SavingsVsAverage)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

// resolveOrigin turns the lat/lng flags, or a free-text location, into an
// origin. A location wins over coordinates when both are given.
func resolveOrigin(c *cli.Context) (models.Origin, error) {
	if loc := c.String("location"); loc != "" {
		gominatim.SetServer(nominatimServer)

		qry := gominatim.SearchQuery{Q: loc}
		resp, err := qry.Get()
		if err != nil {
			return models.Origin{}, err
		}
		if len(resp) == 0 {
			return models.Origin{}, fmt.Errorf("location not found: %s", loc)
		}
		fmt.Println("Location found:", resp[0].DisplayName)

		lat, err := strconv.ParseFloat(resp[0].Lat, 64)
		if err != nil {
			return models.Origin{}, fmt.Errorf("parsing resolved latitude: %w", err)
		}
		lng, err := strconv.ParseFloat(resp[0].Lon, 64)
		if err != nil {
			return models.Origin{}, fmt.Errorf("parsing resolved longitude: %w", err)
		}
		return models.Origin{Lat: lat, Lng: lng}, nil
	}

	lat := c.Float64("lat")
	lng := c.Float64("lng")
	if lat == 0 && lng == 0 {
		return models.Origin{}, errors.New("location or latitude and longitude are required")
	}
	return models.Origin{Lat: lat, Lng: lng}, nil
}

func newPipeline() (*ranking.Service, error) {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	if cfg.GoogleAPIKey == "" {
		return nil, errors.New("GOOGLE_API_KEY is required")
	}

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

	return ranking.NewService(stationSource, distanceSource), nil
}
