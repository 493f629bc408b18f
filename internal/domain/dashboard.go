package domain

// CategoryStats is the per-category performance breakdown.
type CategoryStats struct {
	Category      Category `json:"category"`
	Revenue       float64  `json:"revenue"`
	Profit        float64  `json:"profit"`
	ProfitMargin  float64  `json:"profit_margin"`
	AvgProfitItem float64  `json:"avg_profit_per_item"`
	UnitsSold     int      `json:"units_sold"`
	LineItems     int      `json:"line_items"`
}

// OrderRange is the numeric span of order display names, derived from
// the conventional "#1234" prefix. Malformed suffixes are skipped.
type OrderRange struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Valid int `json:"valid"`
}

// SalesSummary aggregates the dashboard headline metrics over a record
// set.
type SalesSummary struct {
	TotalRevenue    float64         `json:"total_revenue"`
	TotalProfit     float64         `json:"total_profit"`
	ProfitMargin    float64         `json:"profit_margin"`
	UniqueOrders    int             `json:"unique_orders"`
	LineItems       int             `json:"line_items"`
	ItemsSold       int             `json:"items_sold"`
	AvgOrderValue   float64         `json:"avg_order_value"`
	ProfitableShare float64         `json:"profitable_share"`
	Categories      []CategoryStats `json:"categories"`
	OrderRange      *OrderRange     `json:"order_range,omitempty"`
}
