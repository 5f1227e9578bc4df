package analytics

import (
	"strings"
	"time"

	"github.com/lightcapturers/wfdata/models"
)

// Filter returns the records matching spec, preserving input order. The input
// slice is never mutated.
//
// The override rules between the filter kinds are deliberate and mirror the
// dashboard's observed behavior: an explicit product-title selection wins over
// everything but the date bounds, and a search term replaces (rather than
// narrows) the categorical filters. Callers that want search AND categories
// must apply two passes themselves.
func Filter(records []models.SaleRecord, spec models.FilterSpec) []models.SaleRecord {
	matched := make([]models.SaleRecord, 0, len(records))

	titles := make(map[string]bool, len(spec.ProductTitles))
	for _, t := range spec.ProductTitles {
		titles[t] = true
	}
	term := strings.ToLower(spec.SearchTerm)

	for i := range records {
		r := &records[i]

		if !withinDateBounds(r.Date, spec.StartDate, spec.EndDate) {
			continue
		}

		// Explicit product selection bypasses category filters and search.
		if len(titles) > 0 {
			if titles[r.ProductTitle] {
				matched = append(matched, *r)
			}
			continue
		}

		// A search term replaces the category filters entirely.
		if term != "" {
			if matchesSearch(r, term) {
				matched = append(matched, *r)
			}
			continue
		}

		if matchesCategories(r, &spec) {
			matched = append(matched, *r)
		}
	}

	return matched
}

// withinDateBounds checks a record date against optional inclusive calendar
// bounds. The end bound covers the entire end day: a record dated exactly on
// endDate passes regardless of either side's time component.
func withinDateBounds(date, start, end time.Time) bool {
	day := dayOf(date)
	if !start.IsZero() && day.Before(dayOf(start)) {
		return false
	}
	if !end.IsZero() && !day.Before(dayOf(end).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// matchesCategories applies the per-attribute constraints. For each attribute
// a non-empty multi-value set overrides the single-value filter; attributes
// with neither set are unconstrained.
func matchesCategories(r *models.SaleRecord, spec *models.FilterSpec) bool {
	checks := []struct {
		value  string
		single string
		multi  []string
	}{
		{r.Channel, spec.Channel, spec.Channels},
		{r.Vendor, spec.Vendor, spec.Vendors},
		{r.Wheel, spec.Wheel, spec.Wheels},
		{r.Size, spec.Size, spec.Sizes},
		{r.BoltPattern, spec.BoltPattern, spec.BoltPatterns},
		{r.Finish, spec.Finish, spec.Finishes},
	}

	for _, c := range checks {
		if len(c.multi) > 0 {
			if !containsString(c.multi, c.value) {
				return false
			}
			continue
		}
		if c.single != "" && c.value != c.single {
			return false
		}
	}
	return true
}

// matchesSearch reports whether the lowercased term is a substring of any
// searchable field.
func matchesSearch(r *models.SaleRecord, term string) bool {
	fields := []string{
		r.Channel,
		r.Vendor,
		r.Wheel,
		r.Size,
		r.BoltPattern,
		r.Finish,
		r.SKU,
		r.ProductTitle,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
