package analytics

import (
	"sort"

	"github.com/lightcapturers/wfdata/models"
)

// RankBy selects the metric a top-products list is ordered by.
type RankBy string

const (
	RankByRevenue    RankBy = "revenue"
	RankByOrderCount RankBy = "orderCount"
)

// DefaultTopProducts is the list length used when the caller asks for 0 or
// fewer entries.
const DefaultTopProducts = 10

// TopProducts groups a filtered record set by product title and returns the
// top n groups by the chosen metric. Records without a product title are
// excluded from grouping. The sort is stable: products tied on the metric
// keep their first-seen relative order.
func TopProducts(records []models.SaleRecord, n int, by RankBy) []models.ProductRank {
	if n <= 0 {
		n = DefaultTopProducts
	}

	groups := make(map[string]*models.ProductRank)
	order := make([]string, 0)

	for i := range records {
		r := &records[i]
		if r.ProductTitle == "" {
			continue
		}
		g, ok := groups[r.ProductTitle]
		if !ok {
			g = &models.ProductRank{
				Title:       r.ProductTitle,
				Vendor:      r.Vendor,
				Wheel:       r.Wheel,
				Size:        r.Size,
				BoltPattern: r.BoltPattern,
				Finish:      r.Finish,
				Channel:     r.Channel,
			}
			groups[r.ProductTitle] = g
			order = append(order, r.ProductTitle)
		}
		g.Sales += r.Price
		g.OrderCount++
	}

	ranked := make([]models.ProductRank, 0, len(order))
	for _, title := range order {
		ranked = append(ranked, *groups[title])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if by == RankByOrderCount {
			return ranked[i].OrderCount > ranked[j].OrderCount
		}
		return ranked[i].Sales > ranked[j].Sales
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
