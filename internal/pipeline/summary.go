package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/swawe/analytics-go/internal/domain"
)

// BuildSalesSummary computes the dashboard headline metrics over a
// record set.
func BuildSalesSummary(records []domain.SaleRecord) domain.SalesSummary {
	summary := domain.SalesSummary{
		LineItems: len(records),
	}
	if len(records) == 0 {
		return summary
	}

	orders := make(map[string]struct{})
	profitable := 0
	byCategory := map[domain.Category]*domain.CategoryStats{}

	for _, rec := range records {
		summary.TotalRevenue += rec.SellingPrice
		summary.TotalProfit += rec.Profit
		summary.ItemsSold += rec.Quantity
		orders[rec.OrderName] = struct{}{}
		if rec.Profit > 0 {
			profitable++
		}

		stats, ok := byCategory[rec.Category]
		if !ok {
			stats = &domain.CategoryStats{Category: rec.Category}
			byCategory[rec.Category] = stats
		}
		stats.Revenue += rec.SellingPrice
		stats.Profit += rec.Profit
		stats.UnitsSold += rec.Quantity
		stats.LineItems++
	}

	summary.UniqueOrders = len(orders)
	summary.AvgOrderValue = summary.TotalRevenue / float64(len(records))
	summary.ProfitableShare = float64(profitable) / float64(len(records)) * 100
	if summary.TotalRevenue > 0 {
		summary.ProfitMargin = summary.TotalProfit / summary.TotalRevenue * 100
	}

	for _, cat := range []domain.Category{domain.CategoryHoodies, domain.CategoryTShirts} {
		stats, ok := byCategory[cat]
		if !ok {
			continue
		}
		if stats.Revenue > 0 {
			stats.ProfitMargin = stats.Profit / stats.Revenue * 100
		}
		stats.AvgProfitItem = stats.Profit / float64(stats.LineItems)
		summary.Categories = append(summary.Categories, *stats)
	}

	summary.OrderRange = orderRange(orders)

	return summary
}

// FilterRecordsByDate keeps records whose sale date falls within the
// inclusive [start, end] day range. Records with unparseable dates are
// kept, matching the fail-open behavior of the record filter the
// dashboard exposes.
func FilterRecordsByDate(records []domain.SaleRecord, start, end time.Time) []domain.SaleRecord {
	startDay := start.Truncate(24 * time.Hour)
	endDay := end.Truncate(24 * time.Hour)

	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, rec := range records {
		day, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			filtered = append(filtered, rec)
			continue
		}
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// orderRange derives the numeric min/max from "#1234"-style order
// names. Names without the prefix or with a non-numeric suffix are
// skipped.
func orderRange(orderNames map[string]struct{}) *domain.OrderRange {
	var r domain.OrderRange
	for name := range orderNames {
		if !strings.HasPrefix(name, "#") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(name, "#"))
		if err != nil {
			continue
		}
		if r.Valid == 0 || n < r.Min {
			r.Min = n
		}
		if r.Valid == 0 || n > r.Max {
			r.Max = n
		}
		r.Valid++
	}
	if r.Valid == 0 {
		return nil
	}
	return &r
}
