package pipeline

import (
	"fmt"
	"time"

	"github.com/swawe/analytics-go/internal/domain"
)

const dateLayout = "2006-01-02"

// NormalizeOrders flattens raw orders into deduplicated sale records
// using the given cost configuration. The (order name, line item id)
// dedup set is scoped to this invocation, so running it twice over the
// same input yields the same output, never double the records.
func NormalizeOrders(orders []domain.Order, costs domain.CostConfig) []domain.SaleRecord {
	return normalize(orders, costs, time.Now)
}

// normalize is the clock-injectable core, used directly by tests.
func normalize(orders []domain.Order, costs domain.CostConfig, now func() time.Time) []domain.SaleRecord {
	records := make([]domain.SaleRecord, 0, len(orders))
	seen := make(map[string]struct{})

	for _, order := range orders {
		orderName := order.Name
		if orderName == "" {
			orderName = "N/A"
		}

		saleDate := parseSaleDate(order.CreatedAt, now)
		customer := domain.MaskCustomer(orderContact(order))

		for _, item := range order.LineItems {
			key := fmt.Sprintf("%s_%d", orderName, item.ID)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			category := domain.ClassifyCategory(item.Name)
			costUsed := costs.TotalCost(category)
			sellingPrice := item.PriceValue()

			quantity := item.Quantity
			if quantity < 1 {
				quantity = 1
			}

			records = append(records, domain.SaleRecord{
				ItemName:          item.Name,
				Category:          category,
				SellingPrice:      sellingPrice,
				CostUsed:          costUsed,
				Profit:            sellingPrice - costUsed,
				Quantity:          quantity,
				Date:              saleDate,
				Customer:          customer,
				OrderName:         orderName,
				FinancialStatus:   order.FinancialStatus,
				FulfillmentStatus: order.ResolvedFulfillmentStatus(),
			})
		}
	}

	return records
}

// parseSaleDate derives the day-granular sale date from the order
// creation timestamp, falling back to today when parsing fails.
func parseSaleDate(createdAt string, now func() time.Time) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return now().Format(dateLayout)
	}
	return t.Format(dateLayout)
}

func orderContact(order domain.Order) string {
	if order.Email == "" {
		return "N/A"
	}
	return order.Email
}
