package balance

import (
	"testing"

	"github.com/gyeh/carebalance/internal/model"
)

func TestPerspiration_Baseline(t *testing.T) {
	p := Perspiration(f64(70), PerspirationFactors{TemperatureC: 37})
	if p == nil || *p != 700 {
		t.Fatalf("got %v, want 700", p)
	}
}

func TestPerspiration_AbsentWeight(t *testing.T) {
	if p := Perspiration(nil, PerspirationFactors{Fever: true, TemperatureC: 40}); p != nil {
		t.Errorf("got %d, want nil", *p)
	}
}

func TestPerspiration_Fever(t *testing.T) {
	p := Perspiration(f64(70), PerspirationFactors{Fever: true, TemperatureC: 39.0})
	if p == nil || *p != 840 {
		t.Fatalf("got %v, want 840", p)
	}
}

func TestPerspiration_FeverBelow37DoesNotReduce(t *testing.T) {
	p := Perspiration(f64(70), PerspirationFactors{Fever: true, TemperatureC: 35})
	if p == nil || *p != 700 {
		t.Fatalf("got %v, want 700", p)
	}
}

func TestPerspiration_PersistentFeverStacks(t *testing.T) {
	t.Run("no_antipyretic", func(t *testing.T) {
		// 700 * 1.2 * 1.05 = 882
		p := Perspiration(f64(70), PerspirationFactors{Fever: true, TemperatureC: 39, FeverPersistent: true})
		if p == nil || *p != 882 {
			t.Fatalf("got %v, want 882", p)
		}
	})
	t.Run("antipyretic", func(t *testing.T) {
		// 700 * 1.2 * 1.02 = 856.8
		p := Perspiration(f64(70), PerspirationFactors{Fever: true, TemperatureC: 39, FeverPersistent: true, Antipyretic: true})
		if p == nil || *p != 857 {
			t.Fatalf("got %v, want 857", p)
		}
	})
	t.Run("persistent_without_fever_ignored", func(t *testing.T) {
		p := Perspiration(f64(70), PerspirationFactors{TemperatureC: 39, FeverPersistent: true})
		if p == nil || *p != 700 {
			t.Fatalf("got %v, want 700", p)
		}
	})
}

func TestPerspiration_Ventilation(t *testing.T) {
	humid := Perspiration(f64(70), PerspirationFactors{TemperatureC: 37, Ventilated: true, Humidified: true})
	dry := Perspiration(f64(70), PerspirationFactors{TemperatureC: 37, Ventilated: true})
	if humid == nil || *humid != 630 {
		t.Errorf("humidified: got %v, want 630", humid)
	}
	if dry == nil || *dry != 770 {
		t.Errorf("dry: got %v, want 770", dry)
	}
}

func TestPerspiration_SkinLoss(t *testing.T) {
	mod := Perspiration(f64(70), PerspirationFactors{TemperatureC: 37, SkinLoss: model.SkinModerate})
	sev := Perspiration(f64(70), PerspirationFactors{TemperatureC: 37, SkinLoss: model.SkinSevere})
	if mod == nil || *mod != 805 {
		t.Errorf("moderate: got %v, want 805", mod)
	}
	if sev == nil || *sev != 910 {
		t.Errorf("severe: got %v, want 910", sev)
	}
}

func TestPerspiration_MonotonicInTemperature(t *testing.T) {
	var prev int64
	for temp := 34.0; temp <= 42.0; temp += 0.1 {
		p := Perspiration(f64(82.3), PerspirationFactors{
			Fever: true, TemperatureC: temp, FeverPersistent: true,
			Ventilated: true, SkinLoss: model.SkinModerate,
		})
		if *p < prev {
			t.Fatalf("perspiration decreased at %.1f°C: %d < %d", temp, *p, prev)
		}
		prev = *p
	}
}

func TestFactorsFromInput(t *testing.T) {
	in := model.NewInput()
	in.Fever = true
	in.Temperature = "38,5"
	in.Ventilation = "hfno"
	f := FactorsFromInput(in)
	if !f.Fever || f.TemperatureC != 38.5 || !f.Ventilated {
		t.Errorf("unexpected factors: %+v", f)
	}

	in.Ventilation = "nonsense"
	if FactorsFromInput(in).Ventilated {
		t.Error("unknown ventilation mode must read as none")
	}
}
