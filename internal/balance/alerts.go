package balance

import (
	"github.com/gyeh/carebalance/internal/classify"
	"github.com/gyeh/carebalance/internal/model"
)

// HighFeverC is the temperature from which a febrile patient is flagged for
// dehydration risk.
const HighFeverC = 39.5

// Advisory texts, one per alert code.
var alertMessages = map[model.AlertCode]string{
	model.AlertDiuresisMissing: "Diuresis not entered: if the patient is not anuric, enter diuresis (mL in the period).",
	model.AlertSweatingMissing: "Profuse sweating: enter an estimate of the mL in the period.",
	model.AlertSweatingZero:    "Profuse sweating: value = 0 (verify).",
	model.AlertECTMissing:      "ECT active: enter the net removal (in the selected period).",
	model.AlertECTZero:         "ECT active: net removal = 0 (verify this is correct).",
	model.AlertHighFever:       "High fever (>=39.5°C): increased risk of dehydration.",
}

// AlertMessage returns the advisory text for a code.
func AlertMessage(code model.AlertCode) string {
	return alertMessages[code]
}

// Alerts evaluates every advisory rule independently. Absent values count
// as unanswered here, never as zero. Output order is fixed.
func Alerts(in *model.Input, v model.Volumes, temperatureC float64) []model.Alert {
	var codes []model.AlertCode

	if !in.Anuria && v.Diuresis == nil {
		codes = append(codes, model.AlertDiuresisMissing)
	}

	if in.Sweating {
		switch {
		case v.Sweating == nil:
			codes = append(codes, model.AlertSweatingMissing)
		case *v.Sweating == 0:
			codes = append(codes, model.AlertSweatingZero)
		}
	}

	if classify.NormalizeECTMode(in.ECT) != model.ECTNone {
		switch {
		case v.ECTNetRemoval == nil:
			codes = append(codes, model.AlertECTMissing)
		case *v.ECTNetRemoval == 0:
			codes = append(codes, model.AlertECTZero)
		}
	}

	if in.Fever && temperatureC >= HighFeverC {
		codes = append(codes, model.AlertHighFever)
	}

	alerts := make([]model.Alert, len(codes))
	for i, c := range codes {
		alerts[i] = model.Alert{Code: c, Message: AlertMessage(c)}
	}
	return alerts
}
