package models

import "time"

// MetricValue is one dashboard metric together with its first-half vs
// second-half percentage change over the active date range.
type MetricValue struct {
	Value         float64 `json:"value"`
	ChangePercent float64 `json:"changePercent"`
	Direction     string  `json:"direction"` // "up", "down" or "flat"
}

// MetricsResult holds the four summary metrics shown on the dashboard cards.
type MetricsResult struct {
	TotalSales     MetricValue `json:"totalSales"`
	TotalOrders    MetricValue `json:"totalOrders"`
	AveragePrice   MetricValue `json:"averagePrice"`
	UniqueProducts MetricValue `json:"uniqueProducts"`
}

// TimeBucket is one point in a chronological sales series.
type TimeBucket struct {
	Key        string    `json:"key"`   // e.g. "2024-07-15", "2024-W29", "2024-07"
	Label      string    `json:"label"` // e.g. "Week 29, 2024", "July 2024"
	Start      time.Time `json:"start"`
	Sales      float64   `json:"sales"`
	OrderCount int       `json:"orderCount"`
}

// CategoryBucket is one bar in a category breakdown chart.
type CategoryBucket struct {
	Key        string  `json:"key"`
	Sales      float64 `json:"sales"`
	OrderCount int     `json:"orderCount"`
}

// ChannelShare is one slice of the sales-by-channel pie chart.
type ChannelShare struct {
	Channel      string  `json:"channel"`
	Sales        float64 `json:"sales"`
	SharePercent float64 `json:"sharePercent"`
}

// ProductRank is one entry in a top-products list. The categorical attributes
// are taken from the first record seen for the product title; every record
// sharing a title is assumed to share them.
type ProductRank struct {
	Title       string  `json:"title"`
	Sales       float64 `json:"sales"`
	OrderCount  int     `json:"orderCount"`
	Vendor      string  `json:"vendor"`
	Wheel       string  `json:"wheel"`
	Size        string  `json:"size"`
	BoltPattern string  `json:"boltPattern"`
	Finish      string  `json:"finish"`
	Channel     string  `json:"channel"`
}

// ForecastPeriod defines the observed date range a forecast was derived from.
type ForecastPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ForecastResult projects order volume forward from the observed daily rate.
// It is a straight run-rate extrapolation: no seasonality or trend.
type ForecastResult struct {
	Period         ForecastPeriod `json:"period"`
	DaySpan        int            `json:"daySpan"`
	DailyOrderRate float64        `json:"dailyOrderRate"`
	Next30Days     int            `json:"next30Days"`
	Next90Days     int            `json:"next90Days"`
	Next180Days    int            `json:"next180Days"`
	Next365Days    int            `json:"next365Days"`
}
