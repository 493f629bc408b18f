package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swawe/analytics-go/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

func TestNormalizeOrdersHoodie(t *testing.T) {
	orders := []domain.Order{
		{
			Name:                     "#100",
			Email:                    "jane@example.com",
			CreatedAt:                "2024-03-01T12:00:00Z",
			FinancialStatus:          "paid",
			DisplayFulfillmentStatus: "FULFILLED",
			LineItems: []domain.LineItem{
				{ID: 1, Name: "Classic Hoodie", Price: "1200.00", Quantity: 2},
			},
		},
	}

	records := normalize(orders, domain.DefaultCostConfig(), fixedNow)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Classic Hoodie", rec.ItemName)
	assert.Equal(t, domain.CategoryHoodies, rec.Category)
	assert.Equal(t, 1200.0, rec.SellingPrice)
	assert.Equal(t, 870.0, rec.CostUsed)
	assert.Equal(t, 330.0, rec.Profit)
	assert.Equal(t, 2, rec.Quantity)
	assert.Equal(t, "2024-03-01", rec.Date)
	assert.Equal(t, "jane@...", rec.Customer)
	assert.Equal(t, "#100", rec.OrderName)
	assert.Equal(t, "paid", rec.FinancialStatus)
	assert.Equal(t, "FULFILLED", rec.FulfillmentStatus)
}

func TestNormalizeOrdersDeduplicates(t *testing.T) {
	order := domain.Order{
		Name:      "#200",
		CreatedAt: "2024-03-02T08:00:00Z",
		LineItems: []domain.LineItem{
			{ID: 10, Name: "Graphic Tee", Price: "600.00", Quantity: 1},
			{ID: 10, Name: "Graphic Tee", Price: "600.00", Quantity: 1},
			{ID: 11, Name: "Zip Hoodie", Price: "1100.00", Quantity: 1},
		},
	}

	// The same order appearing twice in the input must not double up.
	records := normalize([]domain.Order{order, order}, domain.DefaultCostConfig(), fixedNow)
	assert.Len(t, records, 2)

	again := normalize([]domain.Order{order, order}, domain.DefaultCostConfig(), fixedNow)
	assert.Equal(t, records, again)
}

func TestNormalizeOrdersFallbacks(t *testing.T) {
	orders := []domain.Order{
		{
			// No name, no email, unparseable timestamp, zero quantity.
			CreatedAt: "not-a-timestamp",
			LineItems: []domain.LineItem{
				{ID: 5, Name: "Basic Tee", Price: "bad", Quantity: 0},
			},
		},
	}

	records := normalize(orders, domain.DefaultCostConfig(), fixedNow)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "N/A", rec.OrderName)
	assert.Equal(t, "N/A", rec.Customer)
	assert.Equal(t, "2024-06-15", rec.Date)
	assert.Equal(t, 1, rec.Quantity)
	assert.Equal(t, 0.0, rec.SellingPrice)
	assert.Equal(t, -580.0, rec.Profit)
}

func TestNormalizeOrdersEmpty(t *testing.T) {
	records := NormalizeOrders(nil, domain.DefaultCostConfig())
	assert.Empty(t, records)
}
