package model

// Input is one snapshot of everything the caller has entered. Numeric
// fields stay as raw text and are reparsed on every evaluation.
type Input struct {
	Period Period `yaml:"period" json:"period"`

	Weight          string `yaml:"weight" json:"weight"`
	ChronicDialysis bool   `yaml:"chronic_dialysis" json:"chronic_dialysis"`
	DryWeight       string `yaml:"dry_weight" json:"dry_weight"`

	SpO2 string `yaml:"spo2" json:"spo2"`

	Fever           bool   `yaml:"fever" json:"fever"`
	Temperature     string `yaml:"temperature" json:"temperature"`
	FeverPersistent bool   `yaml:"fever_persistent" json:"fever_persistent"` // fever lasting more than 24h
	Antipyretic     bool   `yaml:"antipyretic" json:"antipyretic"`

	Ventilation VentMode `yaml:"ventilation" json:"ventilation"`
	FiO2        string   `yaml:"fio2" json:"fio2"`
	Humidified  bool     `yaml:"humidified" json:"humidified"`

	SkinLoss SkinLoss `yaml:"skin_loss" json:"skin_loss"`
	Anuria   bool     `yaml:"anuria" json:"anuria"`
	Surgical bool     `yaml:"surgical" json:"surgical"`

	In  Intake `yaml:"in" json:"in"`
	Out Output `yaml:"out" json:"out"`

	Sweating       bool   `yaml:"sweating" json:"sweating"`
	SweatingVolume string `yaml:"sweating_volume" json:"sweating_volume"`

	ECT           ECTMode `yaml:"ect" json:"ect"`
	ECTNetRemoval string  `yaml:"ect_net_removal" json:"ect_net_removal"`
}

// Intake holds the period-bound IN volumes (mL).
type Intake struct {
	Oral        string `yaml:"oral" json:"oral"`
	Intravenous string `yaml:"intravenous" json:"intravenous"`
	Enteral     string `yaml:"enteral" json:"enteral"`
	Flush       string `yaml:"flush" json:"flush"`
	Other       string `yaml:"other" json:"other"`
}

// Output holds the period-bound OUT volumes (mL). Stool, Bleeding and
// Fistula only count for surgical patients.
type Output struct {
	Diuresis string `yaml:"diuresis" json:"diuresis"`
	Drains   string `yaml:"drains" json:"drains"`
	Vomit    string `yaml:"vomit" json:"vomit"`
	Aspirate string `yaml:"aspirate" json:"aspirate"`
	Other    string `yaml:"other" json:"other"`

	Stool    string `yaml:"stool" json:"stool"`
	Bleeding string `yaml:"bleeding" json:"bleeding"`
	Fistula  string `yaml:"fistula" json:"fistula"`
}

// NewInput returns the blank snapshot a fresh form starts from.
func NewInput() *Input {
	return &Input{
		Period:      Period24h,
		Temperature: "37.0",
		Ventilation: VentNone,
		SkinLoss:    SkinNone,
		ECT:         ECTNone,
	}
}

// Reset restores the blank snapshot in place.
func (in *Input) Reset() {
	*in = *NewInput()
}

// SetSurgical toggles the surgical-patient flag. Turning it off clears the
// surgical-only OUT fields so stale values cannot re-enter a later sum.
func (in *Input) SetSurgical(on bool) {
	in.Surgical = on
	if !on {
		in.Out.Stool = ""
		in.Out.Bleeding = ""
		in.Out.Fistula = ""
	}
}
