package analytics

import "github.com/lightcapturers/wfdata/models"

// UniqueValues collects the distinct values of every categorical attribute in
// first-seen order. The dashboard uses this to populate its filter dropdowns.
func UniqueValues(records []models.SaleRecord) models.FilterOptions {
	return models.FilterOptions{
		Channels:     distinctValues(records, CategoryChannel),
		Vendors:      distinctValues(records, CategoryVendor),
		Wheels:       distinctValues(records, CategoryWheel),
		Sizes:        distinctValues(records, CategorySize),
		BoltPatterns: distinctValues(records, CategoryBoltPattern),
		Finishes:     distinctValues(records, CategoryFinish),
	}
}

// DependentOptions narrows the dropdown options to the records where the
// given attribute has the given value, so selecting a vendor trims the other
// dropdowns to combinations that actually exist. An empty value means no
// narrowing.
func DependentOptions(records []models.SaleRecord, category Category, value string) models.FilterOptions {
	if value == "" {
		return UniqueValues(records)
	}
	subset := make([]models.SaleRecord, 0, len(records))
	for i := range records {
		if attributeValue(&records[i], category) == value {
			subset = append(subset, records[i])
		}
	}
	return UniqueValues(subset)
}

func distinctValues(records []models.SaleRecord, category Category) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for i := range records {
		v := attributeValue(&records[i], category)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}
