package places

// Fuel type tag used by the Places fuelOptions field for regular unleaded.
const fuelTypeRegularUnleaded = "REGULAR_UNLEADED"

// money mirrors the google.type.Money JSON shape used by the Places fuel
// price fields: whole units as a decimal string, nanos as a number.
type money struct {
	Units *int64 `json:"units,string"`
	Nanos *int64 `json:"nanos"`
}

type fuelPrice struct {
	Type  string `json:"type"`
	Price *money `json:"price"`
}

// decodePrice converts a whole-units plus nanos pair into a unit price with
// milli-unit resolution. Nanos round half up to the nearest milli-unit and
// carry into the whole units when they round to a full unit, so
// decodePrice(2, 999999999) is 3.000.
func decodePrice(units, nanos int64) float64 {
	milli := (nanos + 500_000) / 1_000_000
	return float64(units*1000+milli) / 1000
}
