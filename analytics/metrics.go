package analytics

import (
	"time"

	"github.com/lightcapturers/wfdata/models"
)

// ComputeMetrics derives the four dashboard card metrics from a filtered
// record set, each with a period-over-period change indicator.
//
// The comparison splits the set at the midpoint between the earliest and
// latest record dates: records strictly before the midpoint form the first
// period, the rest the second. Each change is (second - first) / first * 100,
// or 0 whenever the first-period value is 0 (including the empty and
// single-day cases, where the first period is empty by construction).
func ComputeMetrics(records []models.SaleRecord) models.MetricsResult {
	sales, orders, avg, unique := summarize(records)

	var result models.MetricsResult
	if len(records) == 0 {
		result.TotalSales = metricValue(0, 0)
		result.TotalOrders = metricValue(0, 0)
		result.AveragePrice = metricValue(0, 0)
		result.UniqueProducts = metricValue(0, 0)
		return result
	}

	minDate, maxDate := records[0].Date, records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(minDate) {
			minDate = r.Date
		}
		if r.Date.After(maxDate) {
			maxDate = r.Date
		}
	}
	midpoint := time.Unix((minDate.Unix()+maxDate.Unix())/2, 0).UTC()

	var first, second []models.SaleRecord
	for _, r := range records {
		if r.Date.Before(midpoint) {
			first = append(first, r)
		} else {
			second = append(second, r)
		}
	}

	firstSales, firstOrders, firstAvg, firstUnique := summarize(first)
	secondSales, secondOrders, secondAvg, secondUnique := summarize(second)

	result.TotalSales = metricValue(sales, percentChange(firstSales, secondSales))
	result.TotalOrders = metricValue(float64(orders), percentChange(float64(firstOrders), float64(secondOrders)))
	result.AveragePrice = metricValue(avg, percentChange(firstAvg, secondAvg))
	result.UniqueProducts = metricValue(float64(unique), percentChange(float64(firstUnique), float64(secondUnique)))
	return result
}

// summarize computes the four raw aggregates over a record set.
func summarize(records []models.SaleRecord) (sales float64, orders int, avg float64, unique int) {
	skus := make(map[string]bool, len(records))
	for _, r := range records {
		sales += r.Price
		skus[r.SKU] = true
	}
	orders = len(records)
	if orders > 0 {
		avg = sales / float64(orders)
	}
	unique = len(skus)
	return sales, orders, avg, unique
}

func percentChange(first, second float64) float64 {
	if first <= 0 {
		return 0
	}
	return (second - first) / first * 100
}

func metricValue(value, change float64) models.MetricValue {
	direction := "flat"
	if change > 0 {
		direction = "up"
	} else if change < 0 {
		direction = "down"
	}
	return models.MetricValue{Value: value, ChangePercent: change, Direction: direction}
}
