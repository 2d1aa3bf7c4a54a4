package balance

import (
	"math"

	"github.com/gyeh/carebalance/internal/classify"
	"github.com/gyeh/carebalance/internal/model"
	"github.com/gyeh/carebalance/internal/normalize"
)

// Perspiration model coefficients. The baseline is 10 mL/kg over 24h.
const (
	baseMLPerKg           = 10.0
	feverPerDegree        = 0.10
	persistentFever       = 0.05
	persistentAntipyretic = 0.02
	ventHumidified        = 0.90
	ventDry               = 1.10
)

// PerspirationFactors are the risk factors that scale insensible loss.
type PerspirationFactors struct {
	Fever           bool
	TemperatureC    float64
	FeverPersistent bool
	Antipyretic     bool
	Ventilated      bool
	Humidified      bool
	SkinLoss        model.SkinLoss
}

// FactorsFromInput extracts the perspiration risk factors from a snapshot.
func FactorsFromInput(in *model.Input) PerspirationFactors {
	return PerspirationFactors{
		Fever:           in.Fever,
		TemperatureC:    normalize.Temperature(in.Temperature),
		FeverPersistent: in.FeverPersistent,
		Antipyretic:     in.Antipyretic,
		Ventilated:      classify.NormalizeVentMode(in.Ventilation) != model.VentNone,
		Humidified:      in.Humidified,
		SkinLoss:        in.SkinLoss,
	}
}

// Multiplier returns the combined factor applied to the weight baseline.
// Adjustments stack multiplicatively.
func (f PerspirationFactors) Multiplier() float64 {
	m := 1.0
	if f.Fever {
		m *= 1 + feverPerDegree*math.Max(0, f.TemperatureC-normalize.DefaultTemperatureC)
		if f.FeverPersistent {
			if f.Antipyretic {
				m *= 1 + persistentAntipyretic
			} else {
				m *= 1 + persistentFever
			}
		}
	}
	if f.Ventilated {
		if f.Humidified {
			m *= ventHumidified
		} else {
			m *= ventDry
		}
	}
	if sf := classify.SkinLossFactor(f.SkinLoss); sf > 0 {
		m *= 1 + sf
	}
	return m
}

// Perspiration estimates insensible loss in mL/24h. It is defined on a 24h
// basis and never period-scaled. Returns nil when weight is absent.
func Perspiration(weightKg *float64, f PerspirationFactors) *int64 {
	if weightKg == nil {
		return nil
	}
	p := int64(math.Round(*weightKg * baseMLPerKg * f.Multiplier()))
	return &p
}
