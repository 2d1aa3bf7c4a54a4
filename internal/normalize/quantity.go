package normalize

import "math"

// Bounds for clinical quantities. Values outside them are clamped, except
// weight, which is rejected.
const (
	MaxVolumeML = 50000.0

	MaxWeightKg = 300.0

	MinTemperatureC     = 34.0
	MaxTemperatureC     = 42.0
	DefaultTemperatureC = 37.0

	MinSpO2 = 50.0
	MaxSpO2 = 100.0

	MinFiO2 = 21.0
	MaxFiO2 = 100.0
)

// Volume parses a period-bound volume in mL clamped to [0, 50000].
// Returns nil when the value is absent.
func Volume(s string) *float64 {
	n := ParseNumber(s)
	if n == nil {
		return nil
	}
	v := Clamp(*n, 0, MaxVolumeML)
	return &v
}

// VolumeOrZero is the summation form of a parsed volume: absent counts as 0 mL.
func VolumeOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Weight parses a body weight in kg. Values outside (0, 300] are treated as absent.
func Weight(s string) *float64 {
	n := ParseNumber(s)
	if n == nil || *n <= 0 || *n > MaxWeightKg {
		return nil
	}
	return n
}

// Temperature parses a body temperature in Celsius clamped to [34, 42],
// falling back to 37.0 when the text is empty or unparseable.
func Temperature(s string) float64 {
	n := ParseNumber(s)
	if n == nil {
		return DefaultTemperatureC
	}
	return Clamp(*n, MinTemperatureC, MaxTemperatureC)
}

// SpO2 parses an oxygen saturation percentage clamped to [50, 100].
func SpO2(s string) *float64 {
	return clamped(s, MinSpO2, MaxSpO2)
}

// FiO2 parses a fraction of inspired oxygen percentage clamped to [21, 100].
func FiO2(s string) *float64 {
	return clamped(s, MinFiO2, MaxFiO2)
}

// RoundTenth rounds to one decimal place, halves towards +Inf
// (-0.25 becomes -0.2, 0.25 becomes 0.3).
func RoundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

func clamped(s string, lo, hi float64) *float64 {
	n := ParseNumber(s)
	if n == nil {
		return nil
	}
	v := Clamp(*n, lo, hi)
	return &v
}
