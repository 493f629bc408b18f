package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategory(t *testing.T) {
	assert.Equal(t, CategoryHoodies, ClassifyCategory("Classic Hoodie - Black"))
	assert.Equal(t, CategoryHoodies, ClassifyCategory("OVERSIZED HOODIE"))
	assert.Equal(t, CategoryHoodies, ClassifyCategory("hoodie"))
	assert.Equal(t, CategoryTShirts, ClassifyCategory("Graphic Tee"))
	assert.Equal(t, CategoryTShirts, ClassifyCategory("Sweatpants"))
	assert.Equal(t, CategoryTShirts, ClassifyCategory(""))
}

func TestCostConfigTotalCost(t *testing.T) {
	costs := DefaultCostConfig()
	assert.Equal(t, float64(870), costs.TotalCost(CategoryHoodies))
	assert.Equal(t, float64(580), costs.TotalCost(CategoryTShirts))
}

func TestCostConfigValid(t *testing.T) {
	assert.True(t, DefaultCostConfig().Valid())
	assert.True(t, CostConfig{}.Valid())
	assert.False(t, CostConfig{HoodieBaseCost: -1, TShirtBaseCost: 210, AdditionalCost: 370}.Valid())
	assert.False(t, CostConfig{HoodieBaseCost: 500, TShirtBaseCost: 210, AdditionalCost: -10}.Valid())
}

func TestMaskCustomer(t *testing.T) {
	assert.Equal(t, "jane@...", MaskCustomer("jane@example.com"))
	assert.Equal(t, "a.b+c@...", MaskCustomer("a.b+c@mail.example.org"))
	assert.Equal(t, "N/A", MaskCustomer("N/A"))
	assert.Equal(t, "", MaskCustomer(""))
}

func TestResolvedFulfillmentStatus(t *testing.T) {
	assert.Equal(t, "FULFILLED", Order{
		DisplayFulfillmentStatus: "FULFILLED",
		FulfillmentStatus:        "partial",
	}.ResolvedFulfillmentStatus())

	assert.Equal(t, "fulfilled", Order{
		FulfillmentStatus: "fulfilled",
		DisplayStatus:     "COMPLETE",
	}.ResolvedFulfillmentStatus())

	assert.Equal(t, "COMPLETE", Order{DisplayStatus: "COMPLETE"}.ResolvedFulfillmentStatus())
	assert.Equal(t, "", Order{}.ResolvedFulfillmentStatus())
}

func TestPriceParsing(t *testing.T) {
	assert.Equal(t, 1234.5, Order{TotalPrice: "1234.50"}.TotalPriceValue())
	assert.Equal(t, float64(0), Order{TotalPrice: ""}.TotalPriceValue())
	assert.Equal(t, float64(0), Order{TotalPrice: "abc"}.TotalPriceValue())

	assert.Equal(t, 999.0, LineItem{Price: "999.00"}.PriceValue())
	assert.Equal(t, float64(0), LineItem{Price: "not-a-price"}.PriceValue())
}
