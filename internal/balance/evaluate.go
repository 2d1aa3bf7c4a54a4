package balance

import (
	"github.com/gyeh/carebalance/internal/classify"
	"github.com/gyeh/carebalance/internal/model"
	"github.com/gyeh/carebalance/internal/normalize"
)

// Evaluate derives the full balance for a snapshot. It has no side effects,
// and the same Input always yields an identical Result.
func Evaluate(in *model.Input) *model.Result {
	period := in.Period.Hours()
	ventilated := classify.NormalizeVentMode(in.Ventilation) != model.VentNone

	r := &model.Result{
		PeriodHours:  period,
		WeightKg:     normalize.Weight(in.Weight),
		TemperatureC: normalize.Temperature(in.Temperature),
		SpO2:         normalize.SpO2(in.SpO2),
		SpO2Advice:   classify.MissingSpO2Advice,
	}

	if in.ChronicDialysis {
		r.DryWeightKg = normalize.Weight(in.DryWeight)
		if r.WeightKg != nil && r.DryWeightKg != nil {
			d := normalize.RoundTenth(*r.WeightKg - *r.DryWeightKg)
			r.WeightDeltaKg = &d
		}
	}

	if r.SpO2 != nil {
		band := classify.SpO2Band(*r.SpO2)
		r.SpO2Band = &band
		r.SpO2Advice = classify.SpO2Advice(band)
	}

	if ventilated {
		r.FiO2 = normalize.FiO2(in.FiO2)
	}

	r.Volumes = ParseVolumes(in)
	totals := Aggregate(r.Volumes, period)
	r.InPeriod = totals.InPeriod
	r.OutPeriod = totals.OutPeriod
	r.In24h = totals.In24h
	r.Out24h = totals.Out24h
	r.ECT24h = totals.ECT24h

	r.Perspiration24h = Perspiration(r.WeightKg, FactorsFromInput(in))

	b := Balance(totals, r.Perspiration24h)
	r.ClinicalBalance = b.Clinical
	r.TotalBalance = b.Total
	r.TotalBalanceWithECT = b.TotalWithECT

	r.Alerts = Alerts(in, r.Volumes, r.TemperatureC)
	return r
}
