package model

import "strings"

// ResultRow is the Parquet schema of a batch output file.
type ResultRow struct {
	BatchID    string `parquet:"batch_id"`
	SnapshotID string `parquet:"snapshot_id"`
	RowNumber  int64  `parquet:"row_number"`

	PeriodHours int32 `parquet:"period_hours"`

	In24h           int64  `parquet:"in_24h"`
	Out24h          int64  `parquet:"out_24h"`
	Perspiration24h *int64 `parquet:"perspiration_24h,optional"`
	ECT24h          int64  `parquet:"ect_24h"`

	ClinicalBalance     int64 `parquet:"clinical_balance"`
	TotalBalance        int64 `parquet:"total_balance"`
	TotalBalanceWithECT int64 `parquet:"total_balance_with_ect"`

	SpO2Band *string `parquet:"spo2_band,optional"`
	Alerts   string  `parquet:"alerts"`
	Report   string  `parquet:"report"`
}

// NewResultRow flattens a Result into its output row.
func NewResultRow(batchID, snapshotID string, rowNum int64, r *Result, report string) *ResultRow {
	row := &ResultRow{
		BatchID:             batchID,
		SnapshotID:          snapshotID,
		RowNumber:           rowNum,
		PeriodHours:         int32(r.PeriodHours),
		In24h:               r.In24h,
		Out24h:              r.Out24h,
		Perspiration24h:     r.Perspiration24h,
		ECT24h:              r.ECT24h,
		ClinicalBalance:     r.ClinicalBalance,
		TotalBalance:        r.TotalBalance,
		TotalBalanceWithECT: r.TotalBalanceWithECT,
		Report:              report,
	}
	if r.SpO2Band != nil {
		b := string(*r.SpO2Band)
		row.SpO2Band = &b
	}
	codes := make([]string, len(r.Alerts))
	for i, a := range r.Alerts {
		codes[i] = string(a.Code)
	}
	row.Alerts = strings.Join(codes, ";")
	return row
}
