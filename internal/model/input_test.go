package model

import "testing"

func TestNewInput_Defaults(t *testing.T) {
	in := NewInput()
	if in.Period != Period24h || in.Temperature != "37.0" {
		t.Errorf("period=%d temperature=%q", in.Period, in.Temperature)
	}
	if in.Ventilation != VentNone || in.ECT != ECTNone || in.SkinLoss != SkinNone {
		t.Errorf("modes: %q %q %q", in.Ventilation, in.ECT, in.SkinLoss)
	}
}

func TestReset(t *testing.T) {
	in := NewInput()
	in.Weight = "80"
	in.Fever = true
	in.In.Oral = "500"
	in.ECT = ECTCRRT
	in.Reset()
	if *in != *NewInput() {
		t.Errorf("reset left %+v", in)
	}
}

func TestSetSurgical(t *testing.T) {
	in := NewInput()
	in.SetSurgical(true)
	in.Out.Stool = "100"
	in.Out.Bleeding = "50"
	in.Out.Fistula = "20"
	in.Out.Diuresis = "900"

	in.SetSurgical(true)
	if in.Out.Stool != "100" {
		t.Error("enabling must keep values")
	}

	in.SetSurgical(false)
	if in.Surgical || in.Out.Stool != "" || in.Out.Bleeding != "" || in.Out.Fistula != "" {
		t.Errorf("surgical fields not cleared: %+v", in.Out)
	}
	if in.Out.Diuresis != "900" {
		t.Error("non-surgical field cleared")
	}
}

func TestPeriod_Hours(t *testing.T) {
	cases := map[Period]int{Period6h: 6, Period12h: 12, Period24h: 24, 0: 24, 8: 24}
	for p, want := range cases {
		if got := p.Hours(); got != want {
			t.Errorf("Period(%d).Hours(): got %d, want %d", p, got, want)
		}
	}
}

func TestSnapshotRow_ToInput(t *testing.T) {
	row := &SnapshotRow{
		SnapshotID:  "s1",
		Period:      12,
		Weight:      "70",
		Ventilation: "imv",
		InOral:      "300",
		OutDiuresis: "400",
		OutStool:    "90",
		ECT:         "crrt",
	}
	in := row.ToInput()
	if in.Period != Period12h || in.Weight != "70" || in.Ventilation != VentInvasive || in.ECT != ECTCRRT {
		t.Errorf("unexpected input: %+v", in)
	}
	if in.In.Oral != "300" || in.Out.Diuresis != "400" {
		t.Errorf("volumes: %+v %+v", in.In, in.Out)
	}
	if in.Out.Stool != "" {
		t.Error("stool kept for non-surgical row")
	}

	row.Surgical = true
	if in := row.ToInput(); in.Out.Stool != "90" {
		t.Errorf("stool: got %q", in.Out.Stool)
	}
}

func TestNewResultRow(t *testing.T) {
	p := int64(700)
	band := SpO2To96
	r := &Result{
		PeriodHours:     12,
		In24h:           2000,
		Perspiration24h: &p,
		SpO2Band:        &band,
		Alerts: []Alert{
			{Code: AlertDiuresisMissing},
			{Code: AlertHighFever},
		},
	}
	row := NewResultRow("b1", "s1", 3, r, "note")
	if row.BatchID != "b1" || row.SnapshotID != "s1" || row.RowNumber != 3 || row.PeriodHours != 12 {
		t.Errorf("ids: %+v", row)
	}
	if row.Alerts != "diuresis_missing;high_fever" {
		t.Errorf("alerts: got %q", row.Alerts)
	}
	if row.SpO2Band == nil || *row.SpO2Band != "92-96" {
		t.Errorf("band: got %v", row.SpO2Band)
	}
	if row.Perspiration24h == nil || *row.Perspiration24h != 700 {
		t.Errorf("perspiration: got %v", row.Perspiration24h)
	}

	empty := NewResultRow("b1", "s2", 4, &Result{}, "")
	if empty.Alerts != "" || empty.SpO2Band != nil {
		t.Errorf("empty row: %+v", empty)
	}
}
