package model

// AlertCode identifies an advisory raised during evaluation.
type AlertCode string

const (
	AlertDiuresisMissing AlertCode = "diuresis_missing"
	AlertSweatingMissing AlertCode = "sweating_missing"
	AlertSweatingZero    AlertCode = "sweating_zero"
	AlertECTMissing      AlertCode = "ect_missing"
	AlertECTZero         AlertCode = "ect_zero"
	AlertHighFever       AlertCode = "high_fever"
)

// Alert is a non-blocking advisory surfaced alongside the balance.
type Alert struct {
	Code    AlertCode `json:"code"`
	Message string    `json:"message"`
}

// Volumes is the parsed form of Intake/Output fields. Nil means not entered.
type Volumes struct {
	Oral        *float64 `json:"oral"`
	Intravenous *float64 `json:"intravenous"`
	Enteral     *float64 `json:"enteral"`
	Flush       *float64 `json:"flush"`
	OtherIn     *float64 `json:"other_in"`

	Diuresis *float64 `json:"diuresis"`
	Drains   *float64 `json:"drains"`
	Vomit    *float64 `json:"vomit"`
	Aspirate *float64 `json:"aspirate"`
	OtherOut *float64 `json:"other_out"`
	Sweating *float64 `json:"sweating"`

	Stool    *float64 `json:"stool"`
	Bleeding *float64 `json:"bleeding"`
	Fistula  *float64 `json:"fistula"`

	ECTNetRemoval *float64 `json:"ect_net_removal"`
}

// Result is the derived balance for one Input. It is rebuilt from scratch on
// every evaluation. All *24h figures are mL over 24 hours.
type Result struct {
	PeriodHours int `json:"period_hours"`

	WeightKg      *float64 `json:"weight_kg"`
	DryWeightKg   *float64 `json:"dry_weight_kg"`
	WeightDeltaKg *float64 `json:"weight_delta_kg"`

	TemperatureC float64   `json:"temperature_c"`
	SpO2         *float64  `json:"spo2"`
	SpO2Band     *SpO2Band `json:"spo2_band"`
	SpO2Advice   string    `json:"spo2_advice"`
	FiO2         *float64  `json:"fio2"`

	Volumes Volumes `json:"volumes"`

	InPeriod  int64 `json:"in_period"`
	OutPeriod int64 `json:"out_period"`
	In24h     int64 `json:"in_24h"`
	Out24h    int64 `json:"out_24h"` // excludes perspiration

	Perspiration24h *int64 `json:"perspiration_24h"`
	ECT24h          int64  `json:"ect_24h"`

	ClinicalBalance     int64 `json:"clinical_balance"`
	TotalBalance        int64 `json:"total_balance"`
	TotalBalanceWithECT int64 `json:"total_balance_with_ect"`

	Alerts []Alert `json:"alerts"`
}

// HasAlert reports whether an alert with the given code was raised.
func (r *Result) HasAlert(code AlertCode) bool {
	for _, a := range r.Alerts {
		if a.Code == code {
			return true
		}
	}
	return false
}
