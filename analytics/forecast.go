package analytics

import (
	"math"
	"time"

	"github.com/lightcapturers/wfdata/models"
)

// Forecast horizons in days.
var forecastHorizons = [4]int{30, 90, 180, 365}

// Forecast projects order volume over the standard horizons from the daily
// order rate observed between start and end. When either bound is zero both
// are derived from the earliest and latest record dates. With no records and
// no bounds every projection is 0.
//
// This is a deliberate run-rate extrapolation. It carries no seasonality,
// trend or confidence interval.
func Forecast(records []models.SaleRecord, start, end time.Time) models.ForecastResult {
	if start.IsZero() || end.IsZero() {
		if len(records) == 0 {
			return models.ForecastResult{}
		}
		start, end = records[0].Date, records[0].Date
		for _, r := range records[1:] {
			if r.Date.Before(start) {
				start = r.Date
			}
			if r.Date.After(end) {
				end = r.Date
			}
		}
	}

	start, end = dayOf(start), dayOf(end)

	// Inclusive day count: a single-day range spans 1 day.
	daySpan := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if daySpan <= 0 {
		return models.ForecastResult{
			Period: models.ForecastPeriod{StartDate: start, EndDate: end},
		}
	}

	dailyRate := float64(len(records)) / float64(daySpan)

	result := models.ForecastResult{
		Period:         models.ForecastPeriod{StartDate: start, EndDate: end},
		DaySpan:        daySpan,
		DailyOrderRate: dailyRate,
	}
	result.Next30Days = project(dailyRate, forecastHorizons[0])
	result.Next90Days = project(dailyRate, forecastHorizons[1])
	result.Next180Days = project(dailyRate, forecastHorizons[2])
	result.Next365Days = project(dailyRate, forecastHorizons[3])
	return result
}

func project(dailyRate float64, horizonDays int) int {
	return int(math.Round(dailyRate * float64(horizonDays)))
}
