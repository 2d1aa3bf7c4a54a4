package classify

import (
	"fmt"
	"strings"

	"github.com/gyeh/carebalance/internal/model"
)

// AllVentModes lists ventilation modes in canonical order; the first is the default.
var AllVentModes = []model.VentMode{
	model.VentNone,
	model.VentLowFlow,
	model.VentHighFlow,
	model.VentNIVCPAP,
	model.VentNIVBiPAP,
	model.VentInvasive,
}

// AllECTModes lists extracorporeal modes in canonical order; the first is the default.
var AllECTModes = []model.ECTMode{
	model.ECTNone,
	model.ECTIHD,
	model.ECTCRRT,
	model.ECTSCUF,
	model.ECTPeritoneal,
	model.ECTECMO,
	model.ECTBypass,
	model.ECTOther,
}

// AllSkinLosses lists skin-loss grades in canonical order; the first is the default.
var AllSkinLosses = []model.SkinLoss{
	model.SkinNone,
	model.SkinModerate,
	model.SkinSevere,
}

// VentModeByName resolves a ventilation mode case-insensitively, or ok=false.
func VentModeByName(name string) (model.VentMode, bool) {
	return byName(AllVentModes, name)
}

// ECTModeByName resolves an extracorporeal mode case-insensitively, or ok=false.
func ECTModeByName(name string) (model.ECTMode, bool) {
	return byName(AllECTModes, name)
}

// SkinLossByName resolves a skin-loss grade case-insensitively, or ok=false.
func SkinLossByName(name string) (model.SkinLoss, bool) {
	return byName(AllSkinLosses, name)
}

// NormalizeVentMode maps unknown values to VentNone.
func NormalizeVentMode(v model.VentMode) model.VentMode {
	if m, ok := VentModeByName(string(v)); ok {
		return m
	}
	return AllVentModes[0]
}

// NormalizeECTMode maps unknown values to ECTNone.
func NormalizeECTMode(v model.ECTMode) model.ECTMode {
	if m, ok := ECTModeByName(string(v)); ok {
		return m
	}
	return AllECTModes[0]
}

// NormalizeSkinLoss maps unknown values to SkinNone.
func NormalizeSkinLoss(v model.SkinLoss) model.SkinLoss {
	if m, ok := SkinLossByName(string(v)); ok {
		return m
	}
	return AllSkinLosses[0]
}

// VentModeLabel returns the display name of a ventilation mode.
func VentModeLabel(v model.VentMode) string {
	switch NormalizeVentMode(v) {
	case model.VentLowFlow:
		return "Oxygen therapy (low flow)"
	case model.VentHighFlow:
		return "HFNO / high flow"
	case model.VentNIVCPAP:
		return "NIV - CPAP"
	case model.VentNIVBiPAP:
		return "NIV - BiPAP/PSV"
	case model.VentInvasive:
		return "Invasive ventilation (IMV)"
	default:
		return "None"
	}
}

// ECTModeLabel returns the display name of an extracorporeal mode.
func ECTModeLabel(m model.ECTMode) string {
	switch NormalizeECTMode(m) {
	case model.ECTIHD:
		return "Intermittent hemodialysis (IHD)"
	case model.ECTCRRT:
		return "CRRT"
	case model.ECTSCUF:
		return "SCUF / ultrafiltration"
	case model.ECTPeritoneal:
		return "Peritoneal dialysis (PD)"
	case model.ECTECMO:
		return "ECMO"
	case model.ECTBypass:
		return "Cardiopulmonary bypass (CPB)"
	case model.ECTOther:
		return "Other"
	default:
		return "None"
	}
}

// SkinLossLabel returns the display name of a skin-loss grade.
func SkinLossLabel(s model.SkinLoss) string {
	switch NormalizeSkinLoss(s) {
	case model.SkinModerate:
		return "Moderate (extensive wounds/dressings)"
	case model.SkinSevere:
		return "Severe (burns/open abdomen/wide exposure)"
	default:
		return "None"
	}
}

// SkinLossFactor is the extra perspiration fraction for a skin-loss grade.
func SkinLossFactor(s model.SkinLoss) float64 {
	switch NormalizeSkinLoss(s) {
	case model.SkinModerate:
		return 0.15
	case model.SkinSevere:
		return 0.30
	default:
		return 0
	}
}

func byName[T ~string](all []T, name string) (T, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range all {
		if strings.ToLower(string(v)) == name {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// ValidateInput checks the enumerated fields of a snapshot. Empty modes are
// accepted and read as the default variant.
func ValidateInput(in *model.Input) error {
	if !in.Period.Valid() {
		return fmt.Errorf("period must be 6, 12 or 24, got %d", in.Period)
	}
	if in.Ventilation != "" {
		if _, ok := VentModeByName(string(in.Ventilation)); !ok {
			return fmt.Errorf("unknown ventilation mode %q", in.Ventilation)
		}
	}
	if in.ECT != "" {
		if _, ok := ECTModeByName(string(in.ECT)); !ok {
			return fmt.Errorf("unknown extracorporeal mode %q", in.ECT)
		}
	}
	if in.SkinLoss != "" {
		if _, ok := SkinLossByName(string(in.SkinLoss)); !ok {
			return fmt.Errorf("unknown skin loss %q", in.SkinLoss)
		}
	}
	return nil
}
