package classify

import (
	"testing"

	"github.com/gyeh/carebalance/internal/model"
)

func TestSpO2Band_Boundaries(t *testing.T) {
	cases := []struct {
		spo2 float64
		want model.SpO2Band
	}{
		{50, model.SpO2Below85},
		{84.9, model.SpO2Below85},
		{85.0, model.SpO2To88},
		{87.9, model.SpO2To88},
		{88.0, model.SpO2To92},
		{91.9, model.SpO2To92},
		{92.0, model.SpO2To96},
		{95.9, model.SpO2To96},
		{96.0, model.SpO2To100},
		{100, model.SpO2To100},
	}
	for _, tc := range cases {
		if got := SpO2Band(tc.spo2); got != tc.want {
			t.Errorf("SpO2Band(%v): got %q, want %q", tc.spo2, got, tc.want)
		}
	}
}

func TestSpO2Advice_DistinctPerBand(t *testing.T) {
	seen := make(map[string]model.SpO2Band)
	for _, b := range []model.SpO2Band{model.SpO2Below85, model.SpO2To88, model.SpO2To92, model.SpO2To96, model.SpO2To100} {
		msg := SpO2Advice(b)
		if msg == "" || msg == MissingSpO2Advice {
			t.Errorf("band %q: unexpected advice %q", b, msg)
		}
		if other, ok := seen[msg]; ok {
			t.Errorf("bands %q and %q share advice %q", b, other, msg)
		}
		seen[msg] = b
	}
}

func TestSpO2BandLabel(t *testing.T) {
	if got := SpO2BandLabel(model.SpO2To88); got != "85-88%" {
		t.Errorf("got %q", got)
	}
	if got := SpO2BandLabel(model.SpO2Below85); got != "<85%" {
		t.Errorf("got %q", got)
	}
}
