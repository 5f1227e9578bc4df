package analytics

import (
	"sort"

	"github.com/lightcapturers/wfdata/models"
)

// AggregateByCategory buckets a filtered record set by one categorical
// attribute, accumulating sales and order counts per value. Buckets are
// returned in ascending lexical order of their key.
func AggregateByCategory(records []models.SaleRecord, category Category) []models.CategoryBucket {
	buckets := make(map[string]*models.CategoryBucket)

	for i := range records {
		value := attributeValue(&records[i], category)
		b, ok := buckets[value]
		if !ok {
			b = &models.CategoryBucket{Key: value}
			buckets[value] = b
		}
		b.Sales += records[i].Price
		b.OrderCount++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]models.CategoryBucket, 0, len(keys))
	for _, k := range keys {
		series = append(series, *buckets[k])
	}
	return series
}

// ChannelShares breaks filtered sales down by channel and computes each
// channel's percentage share of the total. Channels appear in first-seen
// order; shares sum to 100 within rounding, or are all 0 when total sales
// are 0.
func ChannelShares(records []models.SaleRecord) []models.ChannelShare {
	totals := make(map[string]float64)
	order := make([]string, 0)

	var totalSales float64
	for i := range records {
		ch := records[i].Channel
		if _, seen := totals[ch]; !seen {
			order = append(order, ch)
		}
		totals[ch] += records[i].Price
		totalSales += records[i].Price
	}

	shares := make([]models.ChannelShare, 0, len(order))
	for _, ch := range order {
		share := 0.0
		if totalSales > 0 {
			share = totals[ch] / totalSales * 100
		}
		shares = append(shares, models.ChannelShare{
			Channel:      ch,
			Sales:        totals[ch],
			SharePercent: share,
		})
	}
	return shares
}
