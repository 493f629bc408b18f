package pipeline

import "github.com/swawe/analytics-go/internal/domain"

// MergeNewOrders appends the normalized line items of candidate orders
// whose names are not yet represented in the existing record set.
// Orders already present are never reprocessed, even if their line
// items changed remotely (append-only semantics). Returns the merged
// set and the number of records added.
func MergeNewOrders(existing []domain.SaleRecord, candidates []domain.Order, costs domain.CostConfig) ([]domain.SaleRecord, int) {
	known := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		known[rec.OrderName] = struct{}{}
	}

	fresh := make([]domain.Order, 0, len(candidates))
	for _, order := range candidates {
		if _, ok := known[order.Name]; ok {
			continue
		}
		fresh = append(fresh, order)
	}

	if len(fresh) == 0 {
		return existing, 0
	}

	added := NormalizeOrders(fresh, costs)
	return append(existing, added...), len(added)
}
