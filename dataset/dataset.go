// Package dataset holds the process-wide sale record set. The records are
// loaded once at startup from a JSON snapshot file and are read-only
// afterwards; the only writer is the refresh endpoint, which swaps in a whole
// new snapshot.
package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/lightcapturers/wfdata/models"
)

var (
	mu        sync.RWMutex
	records   []models.SaleRecord
	snapshot  string
	updatedAt time.Time
)

// Load reads the snapshot file into memory. A missing file is not an error:
// the service starts with an empty dataset and waits for a refresh.
func Load(path string) error {
	mu.Lock()
	defer mu.Unlock()
	snapshot = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️  [DATASET] Snapshot %s not found, starting empty", path)
			records = []models.SaleRecord{}
			updatedAt = time.Now()
			return nil
		}
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var loaded []models.SaleRecord
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	for i := range loaded {
		loaded[i].Normalize()
	}

	records = loaded
	updatedAt = time.Now()
	log.Printf("✅ [DATASET] Loaded %d records from %s", len(records), path)
	return nil
}

// Get returns the current record set. Callers must treat it as read-only.
func Get() []models.SaleRecord {
	mu.RLock()
	defer mu.RUnlock()
	return records
}

// Replace swaps in a freshly ingested record set and persists it to the
// snapshot file so the next startup sees the same data.
func Replace(recs []models.SaleRecord) error {
	for i := range recs {
		recs[i].Normalize()
	}

	mu.Lock()
	defer mu.Unlock()

	if snapshot != "" {
		data, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		if err := os.WriteFile(snapshot, data, 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}

	records = recs
	updatedAt = time.Now()
	log.Printf("✅ [DATASET] Replaced dataset with %d records", len(records))
	return nil
}

// Count returns the number of loaded records.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(records)
}

// LastUpdated returns when the dataset was last loaded or replaced.
func LastUpdated() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return updatedAt
}
