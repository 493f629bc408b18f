package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swawe/analytics-go/internal/domain"
)

func TestRecalculateProfits(t *testing.T) {
	records := []domain.SaleRecord{
		{ItemName: "Zip Hoodie", Category: domain.CategoryHoodies, SellingPrice: 1200, CostUsed: 870, Profit: 330, OrderName: "#1"},
		{ItemName: "Basic Tee", Category: domain.CategoryTShirts, SellingPrice: 600, CostUsed: 580, Profit: 20, OrderName: "#2"},
	}

	// Bump only the shared additional cost by 30.
	updated := RecalculateProfits(records, domain.CostConfig{
		HoodieBaseCost: 500,
		TShirtBaseCost: 210,
		AdditionalCost: 400,
	})
	require.Len(t, updated, 2)

	assert.Equal(t, 900.0, updated[0].CostUsed)
	assert.Equal(t, 300.0, updated[0].Profit)
	assert.Equal(t, 610.0, updated[1].CostUsed)
	assert.Equal(t, -10.0, updated[1].Profit)

	// Everything except cost_used and profit stays put.
	assert.Equal(t, records[0].ItemName, updated[0].ItemName)
	assert.Equal(t, records[0].SellingPrice, updated[0].SellingPrice)
	assert.Equal(t, records[1].OrderName, updated[1].OrderName)

	// Input is untouched.
	assert.Equal(t, 870.0, records[0].CostUsed)
}

func TestRecalculateProfitsIsPure(t *testing.T) {
	records := []domain.SaleRecord{
		{Category: domain.CategoryHoodies, SellingPrice: 1500, CostUsed: 1, Profit: 1},
	}
	costs := domain.DefaultCostConfig()

	first := RecalculateProfits(records, costs)
	second := RecalculateProfits(records, costs)
	assert.Equal(t, first, second)
}
