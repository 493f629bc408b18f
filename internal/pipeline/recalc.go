package pipeline

import "github.com/swawe/analytics-go/internal/domain"

// RecalculateProfits re-derives cost_used and profit for every record
// under a new cost configuration. Pure: same length, same order, every
// other field untouched, no remote state consulted.
func RecalculateProfits(records []domain.SaleRecord, costs domain.CostConfig) []domain.SaleRecord {
	updated := make([]domain.SaleRecord, len(records))
	for i, rec := range records {
		rec.CostUsed = costs.TotalCost(rec.Category)
		rec.Profit = rec.SellingPrice - rec.CostUsed
		updated[i] = rec
	}
	return updated
}
