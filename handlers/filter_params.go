package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lightcapturers/wfdata/models"
	"github.com/lightcapturers/wfdata/utils"
)

// parseFilterSpec builds a FilterSpec from the request's query parameters.
// Every dashboard endpoint accepts the same set:
//
//	startDate, endDate          — any accepted date format
//	channel, vendor, wheel,
//	size, boltPattern, finish   — single-value exact matches
//	channels, vendors, wheels,
//	sizes, boltPatterns,
//	finishes                    — comma-separated multi-value sets
//	productTitles               — comma-separated explicit selection
//	search                      — free-text term
func parseFilterSpec(c *fiber.Ctx) (models.FilterSpec, error) {
	var spec models.FilterSpec

	if raw := c.Query("startDate"); raw != "" {
		t, err := utils.ParseFlexibleDate(raw)
		if err != nil {
			return spec, fmt.Errorf("invalid startDate format")
		}
		spec.StartDate = t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := utils.ParseFlexibleDate(raw)
		if err != nil {
			return spec, fmt.Errorf("invalid endDate format")
		}
		spec.EndDate = t
	}

	spec.Channel = c.Query("channel")
	spec.Vendor = c.Query("vendor")
	spec.Wheel = c.Query("wheel")
	spec.Size = c.Query("size")
	spec.BoltPattern = c.Query("boltPattern")
	spec.Finish = c.Query("finish")

	spec.Channels = splitList(c.Query("channels"))
	spec.Vendors = splitList(c.Query("vendors"))
	spec.Wheels = splitList(c.Query("wheels"))
	spec.Sizes = splitList(c.Query("sizes"))
	spec.BoltPatterns = splitList(c.Query("boltPatterns"))
	spec.Finishes = splitList(c.Query("finishes"))

	spec.ProductTitles = splitList(c.Query("productTitles"))
	spec.SearchTerm = c.Query("search")

	return spec, nil
}

// splitList splits a comma-separated query value, trimming whitespace and
// dropping empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
