package analytics

import (
	"testing"

	"github.com/lightcapturers/wfdata/models"
)

func TestAggregateByTimeDaily(t *testing.T) {
	records := sampleRecords()
	series := AggregateByTime(records, GranularityDaily)
	if len(series) != 5 {
		t.Fatalf("expected 5 daily buckets, got %d", len(series))
	}
	if series[0].Key != "2024-07-01" || series[4].Key != "2024-07-31" {
		t.Fatalf("daily buckets out of order: %s .. %s", series[0].Key, series[4].Key)
	}
	if series[0].Sales != 320 || series[0].OrderCount != 1 {
		t.Fatalf("first bucket = %+v", series[0])
	}
}

func TestAggregateByTimeDailyMerges(t *testing.T) {
	records := sampleRecords()
	records = append(records, record("2024-07-01", "eBay", "Fuel", "Rebel", "17x9", "5x127", "Chrome", "SKU-2", 180))
	series := AggregateByTime(records, GranularityDaily)
	if series[0].Sales != 500 || series[0].OrderCount != 2 {
		t.Fatalf("same-day records not merged: %+v", series[0])
	}
}

func TestAggregateByTimeWeeklyYearBoundary(t *testing.T) {
	records := []struct {
		date string
	}{
		{"2025-01-02"},
		{"2024-12-28"},
		{"2024-12-20"},
	}
	set := make([]models.SaleRecord, 0, len(records))
	for i, r := range records {
		rec := record(r.date, "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU", float64(100*(i+1)))
		set = append(set, rec)
	}

	series := AggregateByTime(set, GranularityWeekly)
	if len(series) != 3 {
		t.Fatalf("expected 3 weekly buckets, got %d", len(series))
	}
	// Chronological order by real date: both December weeks precede the
	// January week even though "2025-W1" sorts before "2024-W52" lexically.
	if series[0].Start.Year() != 2024 || series[1].Start.Year() != 2024 || series[2].Start.Year() != 2025 {
		t.Fatalf("weekly buckets misordered across year boundary: %s, %s, %s",
			series[0].Key, series[1].Key, series[2].Key)
	}
	if series[2].Label != "Week 1, 2025" {
		t.Fatalf("unexpected weekly label %q", series[2].Label)
	}
}

func TestAggregateByTimeMonthly(t *testing.T) {
	set := []struct {
		date  string
		price float64
	}{
		{"2024-06-30", 100},
		{"2024-07-01", 200},
		{"2024-07-20", 300},
	}
	records := make([]models.SaleRecord, 0, len(set))
	for _, s := range set {
		records = append(records, record(s.date, "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU", s.price))
	}

	series := AggregateByTime(records, GranularityMonthly)
	if len(series) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(series))
	}
	if series[0].Key != "2024-06" || series[0].Label != "June 2024" {
		t.Fatalf("first monthly bucket = %+v", series[0])
	}
	if series[1].Sales != 500 || series[1].OrderCount != 2 {
		t.Fatalf("July bucket = %+v", series[1])
	}
}

func TestAggregateByTimeEmpty(t *testing.T) {
	series := AggregateByTime(nil, GranularityWeekly)
	if len(series) != 0 {
		t.Fatalf("expected empty series, got %d buckets", len(series))
	}
}

func TestWeekNumberJanuaryFirst(t *testing.T) {
	if wk := weekNumber(day("2024-01-01")); wk != 1 {
		t.Fatalf("week of Jan 1 2024 = %d, want 1", wk)
	}
	// Dec 28 2024 is day-of-year 362; Jan 1 2024 is a Monday (weekday 1):
	// ceil((362 + 1 + 1) / 7) = 52.
	if wk := weekNumber(day("2024-12-28")); wk != 52 {
		t.Fatalf("week of Dec 28 2024 = %d, want 52", wk)
	}
}
