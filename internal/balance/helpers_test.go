package balance

import "github.com/gyeh/carebalance/internal/model"

func f64(v float64) *float64 { return &v }

// baseInput is a 70 kg afebrile patient on a 24h window with nothing else set.
func baseInput() *model.Input {
	in := model.NewInput()
	in.Weight = "70"
	in.Out.Diuresis = "0"
	return in
}
