package classify

import "github.com/gyeh/carebalance/internal/model"

// MissingSpO2Advice is shown instead of a band when no saturation was entered.
const MissingSpO2Advice = "Enter SpO2 for classification (<85, 85-88, 88-92, 92-96, 96-100)."

// SpO2Band places a saturation in its band. Each threshold is a strict
// upper bound, so 88.0 falls in "88-92".
func SpO2Band(spo2 float64) model.SpO2Band {
	switch {
	case spo2 < 85:
		return model.SpO2Below85
	case spo2 < 88:
		return model.SpO2To88
	case spo2 < 92:
		return model.SpO2To92
	case spo2 < 96:
		return model.SpO2To96
	default:
		return model.SpO2To100
	}
}

// SpO2BandLabel returns the display form of a band, e.g. "85-88%".
func SpO2BandLabel(b model.SpO2Band) string {
	switch b {
	case model.SpO2Below85:
		return "<85%"
	case model.SpO2To88:
		return "85-88%"
	case model.SpO2To92:
		return "88-92%"
	case model.SpO2To96:
		return "92-96%"
	default:
		return "96-100%"
	}
}

// SpO2Advice returns the advisory text for a band.
func SpO2Advice(b model.SpO2Band) string {
	switch b {
	case model.SpO2Below85:
		return "SpO2 <85%: critical hypoxemia."
	case model.SpO2To88:
		return "SpO2 85-88%: severe hypoxemia."
	case model.SpO2To92:
		return "SpO2 88-92%: borderline (assess clinical context)."
	case model.SpO2To96:
		return "SpO2 92-96%: optimal range for most patients."
	default:
		return "SpO2 96-100%: high; if appropriate consider lowering FiO2 to avoid hyperoxia."
	}
}
