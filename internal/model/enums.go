package model

// Period is the observation window in hours over which period-bound volumes
// were measured.
type Period int

const (
	Period6h  Period = 6
	Period12h Period = 12
	Period24h Period = 24
)

// AllPeriods lists the supported observation windows.
var AllPeriods = []Period{Period6h, Period12h, Period24h}

// Valid reports whether p is one of AllPeriods.
func (p Period) Valid() bool {
	for _, v := range AllPeriods {
		if p == v {
			return true
		}
	}
	return false
}

// Hours returns the window length, falling back to 24 for unknown values.
func (p Period) Hours() int {
	if !p.Valid() {
		return int(Period24h)
	}
	return int(p)
}

// VentMode is the respiratory support in use.
type VentMode string

const (
	VentNone     VentMode = "none"
	VentLowFlow  VentMode = "o2"
	VentHighFlow VentMode = "hfno"
	VentNIVCPAP  VentMode = "niv_cpap"
	VentNIVBiPAP VentMode = "niv_bipap"
	VentInvasive VentMode = "imv"
)

// ECTMode is the extracorporeal therapy, if any.
type ECTMode string

const (
	ECTNone       ECTMode = "none"
	ECTIHD        ECTMode = "ihd"
	ECTCRRT       ECTMode = "crrt"
	ECTSCUF       ECTMode = "scuf"
	ECTPeritoneal ECTMode = "dp"
	ECTECMO       ECTMode = "ecmo"
	ECTBypass     ECTMode = "cpb"
	ECTOther      ECTMode = "other"
)

// SkinLoss grades extra insensible loss through damaged skin
// (burns, extensive wounds, open abdomen).
type SkinLoss string

const (
	SkinNone     SkinLoss = "none"
	SkinModerate SkinLoss = "moderate"
	SkinSevere   SkinLoss = "severe"
)

// SpO2Band is an oxygen saturation range.
type SpO2Band string

const (
	SpO2Below85 SpO2Band = "<85"
	SpO2To88    SpO2Band = "85-88"
	SpO2To92    SpO2Band = "88-92"
	SpO2To96    SpO2Band = "92-96"
	SpO2To100   SpO2Band = "96-100"
)
