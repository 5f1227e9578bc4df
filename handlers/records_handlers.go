package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lightcapturers/wfdata/analytics"
	"github.com/lightcapturers/wfdata/dataset"
	"github.com/lightcapturers/wfdata/utils"
)

// HandleListRecords returns a page of the filtered record set.
// GET /api/v1/records?page=1&pageSize=50
func HandleListRecords(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 50)

	filtered := analytics.Filter(dataset.Get(), spec)
	start, end := utils.PageBounds(len(filtered), page, pageSize)

	log.Printf("📥 [RECORDS] Returning %d-%d of %d filtered records", start, end, len(filtered))
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"records":    filtered[start:end],
		"pagination": utils.CreatePagination(len(filtered), page, pageSize),
	}})
}

// HandleGetFilterOptions lists the distinct values for every filter dropdown,
// computed over the full dataset.
// GET /api/v1/filters/options
func HandleGetFilterOptions(c *fiber.Ctx) error {
	options := analytics.UniqueValues(dataset.Get())
	return c.JSON(fiber.Map{"success": true, "data": options})
}

// HandleGetDependentOptions narrows the dropdown options to combinations
// consistent with one selected attribute value.
// GET /api/v1/filters/options/dependent?attribute=vendor&value=Fuel
func HandleGetDependentOptions(c *fiber.Ctx) error {
	attribute := c.Query("attribute")
	if !analytics.ValidCategory(attribute) {
		return badRequest(c, "attribute must be channel, vendor, wheel, size, boltPattern or finish")
	}
	value := c.Query("value")

	options := analytics.DependentOptions(dataset.Get(), analytics.Category(attribute), value)
	return c.JSON(fiber.Map{"success": true, "data": options})
}
