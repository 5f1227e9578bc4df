package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lightcapturers/wfdata/handlers"
	"github.com/lightcapturers/wfdata/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Dashboard Routes ---
	dashboard := api.Group("/dashboard")
	dashboard.Get("/metrics", handlers.HandleGetDashboardMetrics)
	dashboard.Get("/sales-series", handlers.HandleGetSalesSeries)
	dashboard.Get("/category-breakdown", handlers.HandleGetCategoryBreakdown)
	dashboard.Get("/channel-shares", handlers.HandleGetChannelShares)
	dashboard.Get("/top-products", handlers.HandleGetTopProducts)
	dashboard.Get("/forecast", handlers.HandleGetForecast)

	// --- Record & Filter Routes ---
	api.Get("/records", handlers.HandleListRecords)
	filters := api.Group("/filters")
	filters.Get("/options", handlers.HandleGetFilterOptions)
	filters.Get("/options/dependent", handlers.HandleGetDependentOptions)

	// --- Data Routes ---
	data := api.Group("/data")
	data.Get("/status", handlers.HandleGetDataStatus)
	data.Post("/refresh", middleware.APIKeyRequired, handlers.HandleRefreshData)

	// --- Insight Routes ---
	insights := api.Group("/insights")
	insights.Post("/summary", handlers.HandleGetSalesInsights)
}
