package pipeline

import "github.com/swawe/analytics-go/internal/domain"

// ClassifyPendingActions buckets every raw order into the action it
// requires and aggregates revenue/counts per bucket. Operates on raw
// orders, not sale records, because it needs the order-level total
// price. Stateless; recomputed in full on every fetch.
func ClassifyPendingActions(orders []domain.Order) domain.PendingActions {
	result := domain.PendingActions{
		Orders: make([]domain.PendingOrder, 0, len(orders)),
	}

	for _, order := range orders {
		rawFulfillment := order.ResolvedFulfillmentStatus()
		fulfillment := domain.ParseFulfillmentState(rawFulfillment)
		payment := domain.ParsePaymentState(order.FinancialStatus)
		bucket := domain.ClassifyAction(fulfillment, payment)

		total := order.TotalPriceValue()
		result.Orders = append(result.Orders, domain.PendingOrder{
			OrderName:         order.Name,
			TotalPrice:        total,
			Customer:          domain.MaskCustomer(order.Email),
			CreatedAt:         order.CreatedAt,
			LineItemCount:     len(order.LineItems),
			FinancialStatus:   order.FinancialStatus,
			FulfillmentStatus: rawFulfillment,
			Bucket:            bucket,
		})

		switch bucket {
		case domain.ActionToFulfill:
			result.ToFulfill.Revenue += total
			result.ToFulfill.Count++
		case domain.ActionPaymentToCapture:
			result.PaymentsToCapture.Revenue += total
			result.PaymentsToCapture.Count++
		default:
			continue
		}

		result.TotalRevenue += total
		result.TotalCount++
	}

	return result
}
