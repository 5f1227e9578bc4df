package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lightcapturers/wfdata/analytics"
	"github.com/lightcapturers/wfdata/dataset"
)

// HandleGetDashboardMetrics computes the four summary card metrics over the
// filtered record set.
// GET /api/v1/dashboard/metrics
func HandleGetDashboardMetrics(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	filtered := analytics.Filter(dataset.Get(), spec)
	metrics := analytics.ComputeMetrics(filtered)

	log.Printf("📊 [DASHBOARD] Metrics over %d filtered records", len(filtered))
	return c.JSON(fiber.Map{"success": true, "data": metrics})
}

// HandleGetSalesSeries returns the time-bucketed sales series for the main
// chart.
// GET /api/v1/dashboard/sales-series?granularity=daily|weekly|monthly
func HandleGetSalesSeries(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	granularity := c.Query("granularity", string(analytics.GranularityDaily))
	if !analytics.ValidGranularity(granularity) {
		return badRequest(c, "granularity must be daily, weekly or monthly")
	}

	filtered := analytics.Filter(dataset.Get(), spec)
	series := analytics.AggregateByTime(filtered, analytics.Granularity(granularity))

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"granularity": granularity,
		"series":      series,
	}})
}

// HandleGetCategoryBreakdown returns sales and order counts bucketed by one
// product attribute.
// GET /api/v1/dashboard/category-breakdown?category=wheel|vendor|size|boltPattern|finish
func HandleGetCategoryBreakdown(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	category := c.Query("category", string(analytics.CategoryWheel))
	if !analytics.ValidCategory(category) || category == string(analytics.CategoryChannel) {
		return badRequest(c, "category must be wheel, vendor, size, boltPattern or finish")
	}

	filtered := analytics.Filter(dataset.Get(), spec)
	series := analytics.AggregateByCategory(filtered, analytics.Category(category))

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"category": category,
		"series":   series,
	}})
}

// HandleGetChannelShares returns each channel's share of filtered sales for
// the pie chart.
// GET /api/v1/dashboard/channel-shares
func HandleGetChannelShares(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	filtered := analytics.Filter(dataset.Get(), spec)
	shares := analytics.ChannelShares(filtered)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"shares": shares}})
}

// HandleGetTopProducts returns the ranked product lists.
// GET /api/v1/dashboard/top-products?rankBy=revenue|orderCount&limit=10
func HandleGetTopProducts(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rankBy := c.Query("rankBy", string(analytics.RankByRevenue))
	if rankBy != string(analytics.RankByRevenue) && rankBy != string(analytics.RankByOrderCount) {
		return badRequest(c, "rankBy must be revenue or orderCount")
	}
	limit := c.QueryInt("limit", analytics.DefaultTopProducts)

	filtered := analytics.Filter(dataset.Get(), spec)
	ranked := analytics.TopProducts(filtered, limit, analytics.RankBy(rankBy))

	// An empty list over a non-empty subset means no record carried a
	// product title; the client renders "no product data" rather than an
	// error in both cases.
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"rankBy":   rankBy,
		"products": ranked,
	}})
}

// HandleGetForecast projects order volume from the run rate over the active
// date range.
// GET /api/v1/dashboard/forecast
func HandleGetForecast(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	filtered := analytics.Filter(dataset.Get(), spec)
	forecast := analytics.Forecast(filtered, spec.StartDate, spec.EndDate)

	return c.JSON(fiber.Map{"success": true, "data": forecast})
}
