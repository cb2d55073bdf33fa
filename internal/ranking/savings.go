package ranking

// savingsVsBaseline is the money saved filling fuelVolume liters at
// unitPrice instead of the baseline price. Negative differentials floor to
// zero, never reported as a loss.
func savingsVsBaseline(baselinePrice, unitPrice, fuelVolume float64) float64 {
	savings := (baselinePrice - unitPrice) * fuelVolume
	if savings < 0 {
		return 0
	}
	return savings
}

// CentsSavedVsReference is the per-liter differential, in cents, of a
// station against a reference station (the nearest one in the
// distance-only view). Reported only when positive.
func CentsSavedVsReference(referencePrice, unitPrice float64) (float64, bool) {
	cents := (referencePrice - unitPrice) * 100
	if cents <= 0 {
		return 0, false
	}
	return cents, true
}
