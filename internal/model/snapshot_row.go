package model

// SnapshotRow mirrors the Parquet schema of a batch input file: one Input
// per row, numeric fields kept as the raw text that was charted.
type SnapshotRow struct {
	SnapshotID string `parquet:"snapshot_id"`
	Period     int32  `parquet:"period_hours"`

	Weight          string `parquet:"weight,optional"`
	ChronicDialysis bool   `parquet:"chronic_dialysis"`
	DryWeight       string `parquet:"dry_weight,optional"`
	SpO2            string `parquet:"spo2,optional"`

	Fever           bool   `parquet:"fever"`
	Temperature     string `parquet:"temperature,optional"`
	FeverPersistent bool   `parquet:"fever_persistent"`
	Antipyretic     bool   `parquet:"antipyretic"`

	Ventilation string `parquet:"ventilation,optional"`
	FiO2        string `parquet:"fio2,optional"`
	Humidified  bool   `parquet:"humidified"`

	SkinLoss string `parquet:"skin_loss,optional"`
	Anuria   bool   `parquet:"anuria"`
	Surgical bool   `parquet:"surgical"`

	InOral        string `parquet:"in_oral,optional"`
	InIntravenous string `parquet:"in_intravenous,optional"`
	InEnteral     string `parquet:"in_enteral,optional"`
	InFlush       string `parquet:"in_flush,optional"`
	InOther       string `parquet:"in_other,optional"`

	OutDiuresis string `parquet:"out_diuresis,optional"`
	OutDrains   string `parquet:"out_drains,optional"`
	OutVomit    string `parquet:"out_vomit,optional"`
	OutAspirate string `parquet:"out_aspirate,optional"`
	OutOther    string `parquet:"out_other,optional"`
	OutStool    string `parquet:"out_stool,optional"`
	OutBleeding string `parquet:"out_bleeding,optional"`
	OutFistula  string `parquet:"out_fistula,optional"`

	Sweating       bool   `parquet:"sweating"`
	SweatingVolume string `parquet:"sweating_volume,optional"`

	ECT           string `parquet:"ect,optional"`
	ECTNetRemoval string `parquet:"ect_net_removal,optional"`
}

// ToInput converts the row into an Input. Surgical-only fields are dropped
// when the row is not flagged surgical.
func (r *SnapshotRow) ToInput() *Input {
	in := &Input{
		Period:          Period(r.Period),
		Weight:          r.Weight,
		ChronicDialysis: r.ChronicDialysis,
		DryWeight:       r.DryWeight,
		SpO2:            r.SpO2,
		Fever:           r.Fever,
		Temperature:     r.Temperature,
		FeverPersistent: r.FeverPersistent,
		Antipyretic:     r.Antipyretic,
		Ventilation:     VentMode(r.Ventilation),
		FiO2:            r.FiO2,
		Humidified:      r.Humidified,
		SkinLoss:        SkinLoss(r.SkinLoss),
		Anuria:          r.Anuria,
		In: Intake{
			Oral:        r.InOral,
			Intravenous: r.InIntravenous,
			Enteral:     r.InEnteral,
			Flush:       r.InFlush,
			Other:       r.InOther,
		},
		Out: Output{
			Diuresis: r.OutDiuresis,
			Drains:   r.OutDrains,
			Vomit:    r.OutVomit,
			Aspirate: r.OutAspirate,
			Other:    r.OutOther,
			Stool:    r.OutStool,
			Bleeding: r.OutBleeding,
			Fistula:  r.OutFistula,
		},
		Sweating:       r.Sweating,
		SweatingVolume: r.SweatingVolume,
		ECT:            ECTMode(r.ECT),
		ECTNetRemoval:  r.ECTNetRemoval,
	}
	in.SetSurgical(r.Surgical)
	return in
}

// SnapshotColumns returns the columns a batch input file must carry.
func SnapshotColumns() []string {
	return []string{"snapshot_id", "period_hours"}
}
