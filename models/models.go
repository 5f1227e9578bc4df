package models

import "time"

// --- Core Models ---

// SaleRecord is one order of a single wheel/tire product configuration.
// Quantity is always 1: every row in the source data represents one order,
// so order counts are record counts.
type SaleRecord struct {
	ID           int       `json:"id"`
	Date         time.Time `json:"date"`
	Channel      string    `json:"channel"`
	Vendor       string    `json:"vendor"`
	Wheel        string    `json:"wheel"`
	Size         string    `json:"size"`
	BoltPattern  string    `json:"boltPattern"`
	Finish       string    `json:"finish"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	SKU          string    `json:"sku"`
	ProductTitle string    `json:"productTitle"`
}

// Normalize fills derived fields on a record. Older data files carry no
// productTitle, in which case it is the concatenation of the wheel, size,
// bolt pattern and finish attributes.
func (r *SaleRecord) Normalize() {
	if r.ProductTitle == "" {
		r.ProductTitle = r.Wheel + r.Size + r.BoltPattern + r.Finish
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
}

// FilterSpec is the full set of constraints a dashboard query applies to the
// record set. It is built fresh from request parameters on every call and is
// never persisted.
//
// Precedence rules, in order:
//  1. Date bounds always apply. EndDate is inclusive of the whole end day.
//  2. A non-empty ProductTitles set overrides every categorical filter.
//  3. A non-empty SearchTerm overrides the categorical filters (but not the
//     date bounds).
//  4. Otherwise each attribute is checked against its multi-value filter if
//     set, else against its single-value filter if set.
type FilterSpec struct {
	StartDate time.Time `json:"startDate,omitempty"`
	EndDate   time.Time `json:"endDate,omitempty"`

	Channel     string `json:"channel,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	Wheel       string `json:"wheel,omitempty"`
	Size        string `json:"size,omitempty"`
	BoltPattern string `json:"boltPattern,omitempty"`
	Finish      string `json:"finish,omitempty"`

	Channels     []string `json:"channels,omitempty"`
	Vendors      []string `json:"vendors,omitempty"`
	Wheels       []string `json:"wheels,omitempty"`
	Sizes        []string `json:"sizes,omitempty"`
	BoltPatterns []string `json:"boltPatterns,omitempty"`
	Finishes     []string `json:"finishes,omitempty"`

	ProductTitles []string `json:"productTitles,omitempty"`
	SearchTerm    string   `json:"search,omitempty"`
}

// FilterOptions lists the distinct values available for each dropdown filter.
type FilterOptions struct {
	Channels     []string `json:"channels"`
	Vendors      []string `json:"vendors"`
	Wheels       []string `json:"wheels"`
	Sizes        []string `json:"sizes"`
	BoltPatterns []string `json:"boltPatterns"`
	Finishes     []string `json:"finishes"`
}
