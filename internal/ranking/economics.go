package ranking

// economics is the outcome of spending part of a fuel budget on the drive
// to a station.
type economics struct {
	// FuelVolume is the quantity of fuel, in liters, purchasable with the
	// budget left after covering the travel cost.
	FuelVolume float64
	// TravelCost is the monetary cost of the fuel consumed driving the
	// one-way distance to the station.
	TravelCost float64
}

// computeEconomics converts a monetary budget, a one-way distance and a
// vehicle efficiency into an affordable fuel volume at the given unit
// price. Both outputs are non-negative; the volume is zero whenever the
// travel cost meets or exceeds the budget.
func computeEconomics(unitPrice, oneWayKm, budget, efficiencyLPer100Km float64) economics {
	fuelForTravel := oneWayKm * efficiencyLPer100Km / 100
	travelCost := fuelForTravel * unitPrice

	volume := 0.0
	if unitPrice > 0 && travelCost < budget {
		volume = (budget - travelCost) / unitPrice
	}

	return economics{
		FuelVolume: volume,
		TravelCost: travelCost,
	}
}
