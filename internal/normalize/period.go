package normalize

import "math"

// ScaleTo24h converts a volume measured over periodHours into its 24-hour
// equivalent, rounded to the nearest mL. Apply it once per aggregated total,
// never per field, so rounding does not compound.
func ScaleTo24h(valueML float64, periodHours int) int64 {
	if periodHours <= 0 {
		periodHours = 24
	}
	return int64(math.Round(valueML * 24 / float64(periodHours)))
}
