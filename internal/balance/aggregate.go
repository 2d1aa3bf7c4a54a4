package balance

import (
	"math"

	"github.com/gyeh/carebalance/internal/classify"
	"github.com/gyeh/carebalance/internal/model"
	"github.com/gyeh/carebalance/internal/normalize"
)

// Totals are the period sums and their 24h equivalents.
type Totals struct {
	InPeriod  int64
	OutPeriod int64
	In24h     int64
	Out24h    int64
	ECT24h    int64
}

// Balances are the three nested balance figures in mL/24h.
type Balances struct {
	Clinical     int64 // IN - OUT
	Total        int64 // IN - (OUT + perspiration)
	TotalWithECT int64 // IN - (OUT + perspiration + ECT)
}

// ParseVolumes parses every IN/OUT field of a snapshot. Surgical-only fields
// are parsed only for surgical patients, sweating only when flagged, and ECT
// removal only when a therapy is active.
func ParseVolumes(in *model.Input) model.Volumes {
	v := model.Volumes{
		Oral:        normalize.Volume(in.In.Oral),
		Intravenous: normalize.Volume(in.In.Intravenous),
		Enteral:     normalize.Volume(in.In.Enteral),
		Flush:       normalize.Volume(in.In.Flush),
		OtherIn:     normalize.Volume(in.In.Other),

		Diuresis: normalize.Volume(in.Out.Diuresis),
		Drains:   normalize.Volume(in.Out.Drains),
		Vomit:    normalize.Volume(in.Out.Vomit),
		Aspirate: normalize.Volume(in.Out.Aspirate),
		OtherOut: normalize.Volume(in.Out.Other),
	}
	if in.Sweating {
		v.Sweating = normalize.Volume(in.SweatingVolume)
	}
	if in.Surgical {
		v.Stool = normalize.Volume(in.Out.Stool)
		v.Bleeding = normalize.Volume(in.Out.Bleeding)
		v.Fistula = normalize.Volume(in.Out.Fistula)
	}
	if classify.NormalizeECTMode(in.ECT) != model.ECTNone {
		v.ECTNetRemoval = normalize.Volume(in.ECTNetRemoval)
	}
	return v
}

// Aggregate sums the parsed volumes over the period and scales each total to
// 24h once. Perspiration is not part of OUT; ECT is kept apart.
func Aggregate(v model.Volumes, periodHours int) Totals {
	inPeriod := sumML(v.Oral, v.Intravenous, v.Enteral, v.Flush, v.OtherIn)
	outPeriod := sumML(
		v.Diuresis, v.Drains, v.Vomit, v.Aspirate, v.OtherOut,
		v.Sweating,
		v.Stool, v.Bleeding, v.Fistula,
	)
	ectPeriod := sumML(v.ECTNetRemoval)

	return Totals{
		InPeriod:  inPeriod,
		OutPeriod: outPeriod,
		In24h:     normalize.ScaleTo24h(float64(inPeriod), periodHours),
		Out24h:    normalize.ScaleTo24h(float64(outPeriod), periodHours),
		ECT24h:    normalize.ScaleTo24h(float64(ectPeriod), periodHours),
	}
}

// Balance computes the three nested balances. A nil perspiration counts as 0.
func Balance(t Totals, perspiration24h *int64) Balances {
	var p int64
	if perspiration24h != nil {
		p = *perspiration24h
	}
	return Balances{
		Clinical:     t.In24h - t.Out24h,
		Total:        t.In24h - (t.Out24h + p),
		TotalWithECT: t.In24h - (t.Out24h + p + t.ECT24h),
	}
}

func sumML(vals ...*float64) int64 {
	var sum float64
	for _, v := range vals {
		sum += normalize.VolumeOrZero(v)
	}
	return int64(math.Round(sum))
}
