package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lightcapturers/wfdata/models"
)

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Count() != 0 {
		t.Fatalf("expected empty dataset, got %d records", Count())
	}
}

func TestReplacePersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.json")
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	recs := []models.SaleRecord{
		{
			ID:      1,
			Date:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Channel: "Shopify",
			Wheel:   "Maverick",
			Size:    "20x9",
			Price:   320,
			SKU:     "SKU-1",
		},
	}
	if err := Replace(recs); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if Count() != 1 {
		t.Fatalf("expected 1 record, got %d", Count())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	// Normalize runs on replace: productTitle is derived.
	if got := Get()[0].ProductTitle; got != "Maverick20x9" {
		t.Fatalf("productTitle = %q", got)
	}

	// A fresh load round-trips the snapshot.
	if err := Load(path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if Count() != 1 || Get()[0].SKU != "SKU-1" {
		t.Fatalf("round-trip mismatch: %+v", Get())
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err == nil {
		t.Fatalf("expected error for malformed snapshot")
	}
}
