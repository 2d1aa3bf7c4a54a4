package classify

import (
	"testing"

	"github.com/gyeh/carebalance/internal/model"
)

func TestSkinLossFactor(t *testing.T) {
	cases := map[model.SkinLoss]float64{
		model.SkinNone:     0,
		model.SkinModerate: 0.15,
		model.SkinSevere:   0.30,
		"bogus":            0,
		"":                 0,
	}
	for s, want := range cases {
		if got := SkinLossFactor(s); got != want {
			t.Errorf("SkinLossFactor(%q): got %v, want %v", s, got, want)
		}
	}
}

func TestUnknownValuesFallBackToFirstVariant(t *testing.T) {
	if got := NormalizeVentMode("jet"); got != model.VentNone {
		t.Errorf("vent: got %q", got)
	}
	if got := NormalizeECTMode("plasmapheresis"); got != model.ECTNone {
		t.Errorf("ect: got %q", got)
	}
	if got := NormalizeSkinLoss("mild"); got != model.SkinNone {
		t.Errorf("skin: got %q", got)
	}
	if got := ECTModeLabel("plasmapheresis"); got != "None" {
		t.Errorf("ect label: got %q", got)
	}
}

func TestByName_CaseInsensitive(t *testing.T) {
	if m, ok := ECTModeByName(" CRRT "); !ok || m != model.ECTCRRT {
		t.Errorf("got %q ok=%v", m, ok)
	}
	if m, ok := VentModeByName("NIV_BiPAP"); !ok || m != model.VentNIVBiPAP {
		t.Errorf("got %q ok=%v", m, ok)
	}
}

func TestLabels_Exhaustive(t *testing.T) {
	for _, v := range AllVentModes[1:] {
		if VentModeLabel(v) == "None" {
			t.Errorf("vent mode %q has no label", v)
		}
	}
	for _, m := range AllECTModes[1:] {
		if ECTModeLabel(m) == "None" {
			t.Errorf("ect mode %q has no label", m)
		}
	}
	for _, s := range AllSkinLosses[1:] {
		if SkinLossLabel(s) == "None" {
			t.Errorf("skin loss %q has no label", s)
		}
	}
}

func TestValidateInput(t *testing.T) {
	in := model.NewInput()
	if err := ValidateInput(in); err != nil {
		t.Fatalf("blank input: %v", err)
	}

	in.Period = 8
	if err := ValidateInput(in); err == nil {
		t.Error("expected error for 8h period")
	}

	in = model.NewInput()
	in.ECT = "bogus"
	if err := ValidateInput(in); err == nil {
		t.Error("expected error for unknown ECT mode")
	}

	in = model.NewInput()
	in.Ventilation = ""
	if err := ValidateInput(in); err != nil {
		t.Errorf("empty ventilation should be accepted: %v", err)
	}
}
