package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lightcapturers/wfdata/config"
	"github.com/lightcapturers/wfdata/dataset"
	"github.com/lightcapturers/wfdata/ingest"
	"github.com/lightcapturers/wfdata/models"
)

// HandleGetDataStatus reports how much data is loaded and when it last
// changed, for the dashboard's "last updated" display.
// GET /api/v1/data/status
func HandleGetDataStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"totalRecords": dataset.Count(),
		"lastUpdated":  dataset.LastUpdated(),
	}})
}

// HandleRefreshData re-ingests the dataset from the configured source and
// swaps it in atomically.
// POST /api/v1/data/refresh?source=sheets|csv
func HandleRefreshData(c *fiber.Ctx) error {
	source := c.Query("source", "sheets")
	cfg := config.AppConfig

	var records []models.SaleRecord
	var err error

	switch source {
	case "sheets":
		if cfg.SpreadsheetID == "" || cfg.SheetName == "" {
			return badRequest(c, "SPREADSHEET_ID and SHEET_NAME are not configured")
		}
		records, err = ingest.FetchSheetRecords(context.Background(), ingest.SheetSource{
			SpreadsheetID:   cfg.SpreadsheetID,
			SheetName:       cfg.SheetName,
			CredentialsPath: cfg.CredentialsPath,
		})
	case "csv":
		if cfg.CSVFile == "" {
			return badRequest(c, "CSV_FILE is not configured")
		}
		records, err = ingest.ReadCSVFile(cfg.CSVFile)
	default:
		return badRequest(c, "source must be sheets or csv")
	}

	if err != nil {
		log.Printf("❌ [REFRESH] Ingestion from %s failed: %v", source, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update data",
		})
	}

	if err := dataset.Replace(records); err != nil {
		log.Printf("❌ [REFRESH] Failed to store new dataset: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to store updated data",
		})
	}

	log.Printf("✅ [REFRESH] Data updated from %s: %d records", source, len(records))
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"source":       source,
		"totalRecords": len(records),
		"lastUpdated":  dataset.LastUpdated(),
	}})
}
