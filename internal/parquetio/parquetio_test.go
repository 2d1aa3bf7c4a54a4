package parquetio

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/carebalance/internal/model"
)

func writeSnapshots(t *testing.T, rows []model.SnapshotRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshots.parquet")
	w, err := Create[model.SnapshotRow](path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func TestRoundTrip(t *testing.T) {
	in := []model.SnapshotRow{
		{SnapshotID: "a", Period: 24, Weight: "70", OutDiuresis: "900"},
		{SnapshotID: "b", Period: 6, Weight: "81,5", Fever: true, Temperature: "39.6", ECT: "crrt"},
		{SnapshotID: "c", Period: 12},
	}
	path := writeSnapshots(t, in)

	r, err := Open[model.SnapshotRow](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if r.NumRows() != int64(len(in)) {
		t.Fatalf("NumRows: got %d, want %d", r.NumRows(), len(in))
	}
	if err := ValidateSchema(r.Schema()); err != nil {
		t.Fatalf("ValidateSchema: %v", err)
	}

	out := make([]model.SnapshotRow, 10)
	n, err := r.Read(out)
	if err != nil && err != io.EOF {
		t.Fatalf("Read: %v", err)
	}
	if n != len(in) {
		t.Fatalf("read %d rows, want %d", n, len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("row %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestValidateSchema_MissingColumn(t *testing.T) {
	type partial struct {
		SnapshotID string `parquet:"snapshot_id"`
	}
	if err := ValidateSchema(parquet.SchemaOf(partial{})); err == nil {
		t.Fatal("expected error for missing period_hours")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open[model.SnapshotRow](filepath.Join(t.TempDir(), "nope.parquet")); err == nil {
		t.Fatal("expected error")
	}
}

func TestReadAll(t *testing.T) {
	rows := make([]model.SnapshotRow, 600)
	for i := range rows {
		rows[i] = model.SnapshotRow{SnapshotID: "s", Period: 6}
	}
	path := writeSnapshots(t, rows)

	r, err := Open[model.SnapshotRow](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	got, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != len(rows) {
		t.Errorf("got %d rows, want %d", len(got), len(rows))
	}
}
