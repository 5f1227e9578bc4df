package analytics

import (
	"math"
	"testing"

	"github.com/lightcapturers/wfdata/models"
)

func TestComputeMetricsEmpty(t *testing.T) {
	got := ComputeMetrics(nil)
	for name, m := range map[string]models.MetricValue{
		"totalSales":     got.TotalSales,
		"totalOrders":    got.TotalOrders,
		"averagePrice":   got.AveragePrice,
		"uniqueProducts": got.UniqueProducts,
	} {
		if m.Value != 0 || m.ChangePercent != 0 {
			t.Errorf("%s: expected zero value and delta, got %+v", name, m)
		}
		if m.Direction != "flat" {
			t.Errorf("%s: expected flat direction, got %q", name, m.Direction)
		}
	}
}

func TestComputeMetricsSingleDay(t *testing.T) {
	records := []models.SaleRecord{
		record("2024-07-10", "Shopify", "Fuel", "Maverick", "20x9", "6x135", "Matte Black", "SKU-1", 100),
		record("2024-07-10", "eBay", "Fuel", "Rebel", "17x9", "5x127", "Chrome", "SKU-2", 200),
		record("2024-07-10", "Amazon", "Vision", "Rocker", "20x9", "6x135", "Bronze", "SKU-1", 300),
	}
	got := ComputeMetrics(records)

	if got.TotalSales.Value != 600 {
		t.Fatalf("totalSales = %v, want 600", got.TotalSales.Value)
	}
	if got.TotalOrders.Value != 3 {
		t.Fatalf("totalOrders = %v, want 3", got.TotalOrders.Value)
	}
	if got.AveragePrice.Value != 200 {
		t.Fatalf("averagePrice = %v, want 200", got.AveragePrice.Value)
	}
	if got.UniqueProducts.Value != 2 {
		t.Fatalf("uniqueProducts = %v, want 2 (SKU-1 repeats)", got.UniqueProducts.Value)
	}

	// Degenerate midpoint: first period is empty, so every delta is 0.
	if got.TotalSales.ChangePercent != 0 || got.TotalOrders.ChangePercent != 0 {
		t.Fatalf("expected zero deltas on single-day data, got %+v", got)
	}
	if got.TotalSales.Direction != "flat" {
		t.Fatalf("expected flat direction, got %q", got.TotalSales.Direction)
	}
}

func TestComputeMetricsPeriodDeltas(t *testing.T) {
	// First half: 2 orders, $300. Second half: 3 orders, $900.
	records := []models.SaleRecord{
		record("2024-07-01", "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU-1", 100),
		record("2024-07-02", "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU-2", 200),
		record("2024-07-20", "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU-3", 300),
		record("2024-07-21", "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU-4", 300),
		record("2024-07-21", "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU-5", 300),
	}
	got := ComputeMetrics(records)

	if math.Abs(got.TotalSales.ChangePercent-200) > 1e-9 {
		t.Fatalf("sales delta = %v, want 200", got.TotalSales.ChangePercent)
	}
	if got.TotalSales.Direction != "up" {
		t.Fatalf("expected up direction, got %q", got.TotalSales.Direction)
	}
	if math.Abs(got.TotalOrders.ChangePercent-50) > 1e-9 {
		t.Fatalf("orders delta = %v, want 50", got.TotalOrders.ChangePercent)
	}
	// Average went from 150 to 300.
	if math.Abs(got.AveragePrice.ChangePercent-100) > 1e-9 {
		t.Fatalf("avg price delta = %v, want 100", got.AveragePrice.ChangePercent)
	}
}

func TestComputeMetricsDownDirection(t *testing.T) {
	records := []models.SaleRecord{
		record("2024-07-01", "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU-1", 500),
		record("2024-07-30", "Shopify", "Fuel", "A", "20x9", "6x135", "Black", "SKU-2", 100),
	}
	got := ComputeMetrics(records)
	if got.TotalSales.Direction != "down" {
		t.Fatalf("expected down direction, got %q", got.TotalSales.Direction)
	}
	if math.Abs(got.TotalSales.ChangePercent-(-80)) > 1e-9 {
		t.Fatalf("sales delta = %v, want -80", got.TotalSales.ChangePercent)
	}
}
