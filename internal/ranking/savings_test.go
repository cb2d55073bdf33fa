package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavingsVsBaseline(t *testing.T) {
	tests := []struct {
		name          string
		baselinePrice float64
		unitPrice     float64
		fuelVolume    float64
		want          float64
	}{
		{name: "cheaper than baseline", baselinePrice: 2.0, unitPrice: 1.8, fuelVolume: 20, want: 4.0},
		{name: "at baseline", baselinePrice: 1.8, unitPrice: 1.8, fuelVolume: 20, want: 0},
		{name: "dearer than baseline floors to zero", baselinePrice: 1.8, unitPrice: 2.0, fuelVolume: 20, want: 0},
		{name: "zero volume", baselinePrice: 2.0, unitPrice: 1.8, fuelVolume: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := savingsVsBaseline(tt.baselinePrice, tt.unitPrice, tt.fuelVolume)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestCentsSavedVsReference(t *testing.T) {
	cents, ok := CentsSavedVsReference(1.95, 1.80)
	require.True(t, ok)
	assert.InDelta(t, 15.0, cents, 1e-9)

	_, ok = CentsSavedVsReference(1.80, 1.80)
	assert.False(t, ok)

	_, ok = CentsSavedVsReference(1.80, 1.95)
	assert.False(t, ok)
}
