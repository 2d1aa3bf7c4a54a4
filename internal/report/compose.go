package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gyeh/carebalance/internal/classify"
	"github.com/gyeh/carebalance/internal/model"
)

// NotAvailable marks a value that was not measured. It is never rendered as
// 0 or blank so "measured zero" and "not measured" stay distinct.
const NotAvailable = "n/a"

const (
	title         = "CareBalance-N: nursing note (draft)"
	noteSweating  = "Note: profuse sweating is clinical OUT (not insensible loss)."
	noteECT       = "Note: clinical IN/OUT are independent of extracorporeal removal; ECT is documented separately."
	ectAlertHint  = " (warning: missing/zero value)"
	perspirationH = "(perspiration always estimated over 24h)"
)

// Compose assembles the nursing note for a snapshot and its evaluated
// result. Sections always appear in the same order.
func Compose(in *model.Input, r *model.Result) string {
	p := r.PeriodHours
	lines := []string{
		title,
		fmt.Sprintf("Observation period: %s. %s", periodText(p), perspirationH),
		fmt.Sprintf("Current weight: %s kg.", num(r.WeightKg)),
		dialysisText(in, r),
		"Anuria: " + yesNo(in.Anuria) + ".",
		"Skin/burns/extensive wounds: " + classify.SkinLossLabel(in.SkinLoss) + ".",
		sweatingText(in, r, p),
		"Surgical patient: " + yesNo(in.Surgical) + ".",
		temperatureText(in, r),
		spo2Text(r),
		"Ventilation: " + ventilationText(in, r) + ".",
		"",
		fmt.Sprintf("IN in period (mL/%dh): oral %s, IV %s, enteral %s, flush/irrigation %s, other %s.",
			p, num(r.Volumes.Oral), num(r.Volumes.Intravenous), num(r.Volumes.Enteral),
			num(r.Volumes.Flush), num(r.Volumes.OtherIn)),
		fmt.Sprintf("IN total (24h): %d mL.", r.In24h),
		"",
		outText(in, r, p),
		fmt.Sprintf("OUT total (24h, excl. perspiration): %d mL.", r.Out24h),
		"",
		fmt.Sprintf("Estimated perspiration (24h): %s mL.", intOrNA(r.Perspiration24h)),
		fmt.Sprintf("Clinical balance (24h, IN-OUT): %d mL.", r.ClinicalBalance),
		fmt.Sprintf("Total balance (24h, IN-OUT-perspiration): %d mL.%s", r.TotalBalance, perspirationHint(r)),
		"",
		"Separate ECT: " + ectText(in, r) + ".",
		fmt.Sprintf("Total balance + ECT (24h, IN-OUT-perspiration-ECT): %d mL.%s", r.TotalBalanceWithECT, perspirationHint(r)),
	}
	for _, a := range r.Alerts {
		lines = append(lines, "Alert: "+a.Message)
	}
	lines = append(lines, noteSweating, noteECT)
	return strings.Join(lines, "\n")
}

func periodText(p int) string {
	if p == int(model.Period24h) {
		return "24h"
	}
	return fmt.Sprintf("%dh (scaled to 24h)", p)
}

func dialysisText(in *model.Input, r *model.Result) string {
	if !in.ChronicDialysis {
		return "Chronic dialysis: no."
	}
	delta := NotAvailable
	if r.WeightDeltaKg != nil {
		delta = formatFloat(*r.WeightDeltaKg)
		if *r.WeightDeltaKg > 0 {
			delta = "+" + delta
		}
	}
	return fmt.Sprintf("Chronic dialysis: yes. Dry weight: %s kg. Weight delta (current-dry): %s kg.",
		num(r.DryWeightKg), delta)
}

func sweatingText(in *model.Input, r *model.Result, p int) string {
	if !in.Sweating {
		return "Profuse sweating: no."
	}
	return fmt.Sprintf("Profuse sweating: yes (OUT in period %s mL/%dh).", num(r.Volumes.Sweating), p)
}

func temperatureText(in *model.Input, r *model.Result) string {
	t := "afebrile"
	if in.Fever {
		t = strconv.FormatFloat(r.TemperatureC, 'f', 1, 64) + "°C"
	}
	if in.FeverPersistent {
		t += " (persistent >24h)"
	}
	if in.Antipyretic {
		t += " - antipyretic"
	}
	return "Temperature: " + t + "."
}

func spo2Text(r *model.Result) string {
	if r.SpO2 == nil {
		return fmt.Sprintf("SpO2: %s (band %s).", NotAvailable, NotAvailable)
	}
	return fmt.Sprintf("SpO2: %s%% (band %s).", formatFloat(*r.SpO2), classify.SpO2BandLabel(*r.SpO2Band))
}

func ventilationText(in *model.Input, r *model.Result) string {
	mode := classify.NormalizeVentMode(in.Ventilation)
	if mode == model.VentNone {
		return "none"
	}
	s := classify.VentModeLabel(mode)
	if r.FiO2 != nil {
		s += ", FiO2 " + formatFloat(*r.FiO2) + "%"
	}
	return s + ", humidification " + yesNo(in.Humidified)
}

func outText(in *model.Input, r *model.Result, p int) string {
	v := r.Volumes
	var b strings.Builder
	fmt.Fprintf(&b, "OUT in period (mL/%dh) excl. perspiration: diuresis %s, drains %s, vomit/gastric residual %s, aspirate %s",
		p, num(v.Diuresis), num(v.Drains), num(v.Vomit), num(v.Aspirate))
	if in.Surgical {
		fmt.Fprintf(&b, ", stool/diarrhea/stoma %s, bleeding/losses %s, fistula/enteric output %s",
			num(v.Stool), num(v.Bleeding), num(v.Fistula))
	}
	fmt.Fprintf(&b, ", sweating %s, other OUT %s.", num(v.Sweating), num(v.OtherOut))
	return b.String()
}

func ectText(in *model.Input, r *model.Result) string {
	mode := classify.NormalizeECTMode(in.ECT)
	if mode == model.ECTNone {
		return "none"
	}
	removal := NotAvailable
	if r.Volumes.ECTNetRemoval != nil {
		removal = strconv.FormatInt(r.ECT24h, 10)
	}
	s := fmt.Sprintf("%s - net removal (24h) %s mL", classify.ECTModeLabel(mode), removal)
	if r.HasAlert(model.AlertECTMissing) || r.HasAlert(model.AlertECTZero) {
		s += ectAlertHint
	}
	return s
}

// perspirationHint flags totals computed without a perspiration estimate.
func perspirationHint(r *model.Result) string {
	if r.Perspiration24h == nil {
		return " (perspiration n/a)"
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func num(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return formatFloat(*v)
}

func intOrNA(v *int64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
