// mkfixture writes a small Parquet file of representative snapshots for the
// batch command: one row per clinical scenario worth eyeballing.
// Usage: go run ./cmd/mkfixture --out testdata/snapshots.parquet
package main

import (
	"flag"
	"fmt"
	"os"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/carebalance/internal/model"
)

func main() {
	out := flag.String("out", "testdata/snapshots.parquet", "output parquet")
	repeat := flag.Int("repeat", 1, "write each scenario this many times")
	flag.Parse()

	var rows []model.SnapshotRow
	for i := 0; i < *repeat; i++ {
		for _, s := range scenarios() {
			s.SnapshotID = fmt.Sprintf("%s-%d", s.SnapshotID, i+1)
			rows = append(rows, s)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	writer := goparquet.NewGenericWriter[model.SnapshotRow](f)
	if _, err := writer.Write(rows); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d snapshots to %s\n", len(rows), *out)
}

func scenarios() []model.SnapshotRow {
	return []model.SnapshotRow{
		{
			SnapshotID: "baseline", Period: 24,
			Weight: "70", SpO2: "95", Temperature: "37.0",
			InOral: "1200", InIntravenous: "1000",
			OutDiuresis: "1500",
		},
		{
			SnapshotID: "fever-12h", Period: 12,
			Weight: "72,5", SpO2: "91%", Fever: true, Temperature: "39.6", FeverPersistent: true,
			InIntravenous: "800", InEnteral: "300",
			OutDiuresis: "600", OutDrains: "120",
			Sweating: true, SweatingVolume: "200",
		},
		{
			SnapshotID: "ventilated-burns", Period: 6,
			Weight: "80", SpO2: "88", Temperature: "37.0",
			Ventilation: "imv", FiO2: "60", Humidified: true, SkinLoss: "severe",
			InIntravenous: "500", InFlush: "50",
			OutDiuresis: "150", OutAspirate: "40",
		},
		{
			SnapshotID: "surgical-crrt", Period: 24,
			Weight: "84,0", SpO2: "97", Temperature: "37.0",
			Surgical: true, ECT: "crrt", ECTNetRemoval: "2400",
			InIntravenous: "2500",
			OutDiuresis: "300", OutStool: "250", OutBleeding: "100", OutFistula: "80",
		},
		{
			SnapshotID: "dialysis-anuric", Period: 24,
			Weight: "68", ChronicDialysis: true, DryWeight: "66,5", Anuria: true,
			Temperature: "37.0", ECT: "ihd",
			InOral: "900",
		},
		{
			SnapshotID: "missing-weight", Period: 12,
			Temperature: "37.0",
			InOral: "400",
		},
	}
}
