package domain

import "strconv"

// Order is a raw order as delivered by the Shopify Admin API. Only the
// fields the pipeline consumes are mapped.
type Order struct {
	ID                       int64      `json:"id"`
	Name                     string     `json:"name"`
	Email                    string     `json:"email"`
	CreatedAt                string     `json:"created_at"`
	TotalPrice               string     `json:"total_price"`
	FinancialStatus          string     `json:"financial_status"`
	FulfillmentStatus        string     `json:"fulfillment_status"`
	DisplayFulfillmentStatus string     `json:"displayFulfillmentStatus"`
	DisplayStatus            string     `json:"display_status"`
	LineItems                []LineItem `json:"line_items"`
}

// LineItem is one product/quantity entry within an order. Prices come
// over the wire as strings.
type LineItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// ResolvedFulfillmentStatus picks the fulfillment status field to
// classify on: the display status if present, then the legacy field,
// then the secondary display alias. Empty means unfulfilled.
func (o Order) ResolvedFulfillmentStatus() string {
	if o.DisplayFulfillmentStatus != "" {
		return o.DisplayFulfillmentStatus
	}
	if o.FulfillmentStatus != "" {
		return o.FulfillmentStatus
	}
	return o.DisplayStatus
}

// TotalPriceValue parses the order-level total price, returning 0 for
// missing or malformed values.
func (o Order) TotalPriceValue() float64 {
	v, err := strconv.ParseFloat(o.TotalPrice, 64)
	if err != nil {
		return 0
	}
	return v
}

// PriceValue parses the line item unit price, returning 0 for missing
// or malformed values.
func (li LineItem) PriceValue() float64 {
	v, err := strconv.ParseFloat(li.Price, 64)
	if err != nil {
		return 0
	}
	return v
}
