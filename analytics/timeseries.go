package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lightcapturers/wfdata/models"
)

// Granularity selects the bucketing period for a sales time series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ValidGranularity reports whether name is a supported bucketing period.
func ValidGranularity(name string) bool {
	switch Granularity(name) {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// AggregateByTime buckets a filtered record set by calendar day, week or
// month and returns the series in chronological order. Ordering is by the
// earliest record date inside each bucket, never by the key string: a lexical
// sort of weekly keys would put "2025-W1" before "2024-W52".
func AggregateByTime(records []models.SaleRecord, granularity Granularity) []models.TimeBucket {
	buckets := make(map[string]*models.TimeBucket)

	for i := range records {
		r := &records[i]
		day := dayOf(r.Date)
		key, label := bucketKey(day, granularity)

		b, ok := buckets[key]
		if !ok {
			b = &models.TimeBucket{Key: key, Label: label, Start: day}
			buckets[key] = b
		}
		if day.Before(b.Start) {
			b.Start = day
		}
		b.Sales += r.Price
		b.OrderCount++
	}

	series := make([]models.TimeBucket, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Start.Before(series[j].Start)
	})
	return series
}

func bucketKey(day time.Time, granularity Granularity) (key, label string) {
	switch granularity {
	case GranularityWeekly:
		week := weekNumber(day)
		key = fmt.Sprintf("%d-W%d", day.Year(), week)
		label = fmt.Sprintf("Week %d, %d", week, day.Year())
	case GranularityMonthly:
		key = day.Format("2006-01")
		label = fmt.Sprintf("%s %d", day.Month(), day.Year())
	default:
		key = day.Format("2006-01-02")
		label = key
	}
	return key, label
}

// weekNumber computes the dashboard's week-of-year: the day-of-year offset
// from January 1st, shifted by January 1st's weekday, divided by 7 and
// rounded up. Week 1 starts on January 1st whatever weekday that is.
func weekNumber(day time.Time) int {
	jan1 := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	pastDays := day.Sub(jan1).Hours() / 24
	return int(math.Ceil((pastDays + float64(jan1.Weekday()) + 1) / 7))
}
