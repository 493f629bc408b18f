package domain

// PendingOrder is the per-order summary row in the pending-actions view.
type PendingOrder struct {
	OrderName         string       `json:"order_name"`
	TotalPrice        float64      `json:"total_price"`
	Customer          string       `json:"customer"`
	CreatedAt         string       `json:"created_at"`
	LineItemCount     int          `json:"line_item_count"`
	FinancialStatus   string       `json:"financial_status"`
	FulfillmentStatus string       `json:"fulfillment_status"`
	Bucket            ActionBucket `json:"bucket"`
}

// BucketTotals aggregates revenue and order count for one action bucket.
type BucketTotals struct {
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// PendingActions is the full action-required classification for a raw
// order set. Recomputed from scratch on every fetch.
type PendingActions struct {
	TotalRevenue      float64        `json:"total_revenue"`
	TotalCount        int            `json:"total_count"`
	Orders            []PendingOrder `json:"orders"`
	ToFulfill         BucketTotals   `json:"orders_to_fulfill"`
	PaymentsToCapture BucketTotals   `json:"payments_to_capture"`
}
