package domain

import "strings"

// Category is the closed product category set used for costing.
type Category string

const (
	CategoryHoodies Category = "Hoodies"
	CategoryTShirts Category = "T-Shirts"
)

// ClassifyCategory assigns a category by case-insensitive substring
// match on the item name. Anything that is not a hoodie is a t-shirt.
func ClassifyCategory(itemName string) Category {
	if strings.Contains(strings.ToLower(itemName), "hoodie") {
		return CategoryHoodies
	}
	return CategoryTShirts
}

// SaleRecord is the derived, flattened, profit-annotated view of one
// line item within one order. Date is day-granular, formatted
// YYYY-MM-DD.
type SaleRecord struct {
	ItemName          string   `json:"item_name"`
	Category          Category `json:"category"`
	SellingPrice      float64  `json:"selling_price"`
	CostUsed          float64  `json:"cost_used"`
	Profit            float64  `json:"profit"`
	Quantity          int      `json:"quantity"`
	Date              string   `json:"date"`
	Customer          string   `json:"customer"`
	OrderName         string   `json:"order_name"`
	FinancialStatus   string   `json:"financial_status"`
	FulfillmentStatus string   `json:"fulfillment_status"`
}

// CostConfig is the set of assumed manufacturing/overhead costs used to
// derive profit. Total cost per category = base cost + additional cost.
type CostConfig struct {
	HoodieBaseCost int `json:"hoodie_base_cost"`
	TShirtBaseCost int `json:"tshirt_base_cost"`
	AdditionalCost int `json:"additional_cost"`
}

// DefaultCostConfig returns the stock cost assumptions.
func DefaultCostConfig() CostConfig {
	return CostConfig{
		HoodieBaseCost: 500,
		TShirtBaseCost: 210,
		AdditionalCost: 370,
	}
}

// TotalCost returns base cost plus additional cost for a category.
func (c CostConfig) TotalCost(cat Category) float64 {
	if cat == CategoryHoodies {
		return float64(c.HoodieBaseCost + c.AdditionalCost)
	}
	return float64(c.TShirtBaseCost + c.AdditionalCost)
}

// Valid reports whether all three cost inputs are non-negative.
func (c CostConfig) Valid() bool {
	return c.HoodieBaseCost >= 0 && c.TShirtBaseCost >= 0 && c.AdditionalCost >= 0
}

// MaskCustomer masks an email contact down to its local part plus a
// literal ellipsis marker. Non-email values pass through unchanged.
func MaskCustomer(contact string) string {
	if idx := strings.Index(contact, "@"); idx >= 0 {
		return contact[:idx] + "@..."
	}
	return contact
}
