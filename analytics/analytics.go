// Package analytics implements the pure filtering-and-aggregation engine
// behind the sales dashboard. Every function takes the record set (or an
// already filtered subset) as an explicit argument, performs a synchronous
// pass over it and returns freshly allocated plain data. Nothing in this
// package touches global state, the network or the clock.
package analytics

import (
	"time"

	"github.com/lightcapturers/wfdata/models"
)

// Category identifies one of the categorical attributes of a sale record.
type Category string

const (
	CategoryChannel     Category = "channel"
	CategoryVendor      Category = "vendor"
	CategoryWheel       Category = "wheel"
	CategorySize        Category = "size"
	CategoryBoltPattern Category = "boltPattern"
	CategoryFinish      Category = "finish"
)

// Categories lists every categorical attribute in display order.
var Categories = []Category{
	CategoryChannel,
	CategoryVendor,
	CategoryWheel,
	CategorySize,
	CategoryBoltPattern,
	CategoryFinish,
}

// ValidCategory reports whether name is a known categorical attribute.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// attributeValue returns a record's value for the given attribute. Unknown
// attributes read as empty string, which never matches a non-empty filter.
func attributeValue(r *models.SaleRecord, c Category) string {
	switch c {
	case CategoryChannel:
		return r.Channel
	case CategoryVendor:
		return r.Vendor
	case CategoryWheel:
		return r.Wheel
	case CategorySize:
		return r.Size
	case CategoryBoltPattern:
		return r.BoltPattern
	case CategoryFinish:
		return r.Finish
	}
	return ""
}

// dayOf truncates a timestamp to its calendar day. All date comparisons in
// the engine are calendar-day comparisons, so time-of-day and zone offsets
// on incoming records cannot cause off-by-one errors at day boundaries.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
