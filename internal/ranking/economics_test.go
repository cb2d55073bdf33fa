package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEconomics(t *testing.T) {
	tests := []struct {
		name       string
		unitPrice  float64
		oneWayKm   float64
		budget     float64
		efficiency float64
		wantVolume float64
		wantTravel float64
	}{
		{
			name:      "typical trip",
			unitPrice: 1.80, oneWayKm: 5, budget: 40, efficiency: 8,
			// 0.4L burned getting there, 0.72 spent, 39.28 left at the pump.
			wantVolume: 21.822222, wantTravel: 0.72,
		},
		{
			name:      "station at the origin",
			unitPrice: 2.00, oneWayKm: 0, budget: 30, efficiency: 10,
			wantVolume: 15, wantTravel: 0,
		},
		{
			name:      "travel cost equals budget",
			unitPrice: 2.00, oneWayKm: 1000, budget: 40, efficiency: 2,
			wantVolume: 0, wantTravel: 40,
		},
		{
			name:      "travel cost exceeds budget",
			unitPrice: 2.00, oneWayKm: 2000, budget: 40, efficiency: 2,
			wantVolume: 0, wantTravel: 80,
		},
		{
			name:      "zero budget",
			unitPrice: 1.50, oneWayKm: 3, budget: 0, efficiency: 8,
			wantVolume: 0, wantTravel: 0.36,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeEconomics(tt.unitPrice, tt.oneWayKm, tt.budget, tt.efficiency)

			assert.InDelta(t, tt.wantVolume, got.FuelVolume, 1e-6)
			assert.InDelta(t, tt.wantTravel, got.TravelCost, 1e-9)
			assert.GreaterOrEqual(t, got.FuelVolume, 0.0)
			assert.GreaterOrEqual(t, got.TravelCost, 0.0)
		})
	}
}

func TestComputeEconomicsVolumeDecreasesWithDistance(t *testing.T) {
	prev := computeEconomics(1.80, 0, 40, 8).FuelVolume
	for km := 1.0; km <= 50; km++ {
		cur := computeEconomics(1.80, km, 40, 8).FuelVolume
		assert.Less(t, cur, prev, "volume must strictly decrease with distance at %v km", km)
		prev = cur
	}
}

func TestComputeEconomicsZeroPrice(t *testing.T) {
	got := computeEconomics(0, 5, 40, 8)

	assert.Zero(t, got.FuelVolume)
	assert.Zero(t, got.TravelCost)
}
