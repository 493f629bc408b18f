package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/swawe/analytics-go/internal/domain"
)

var recordHeader = []string{
	"item_name", "category", "selling_price", "cost_used", "profit",
	"quantity", "date", "customer", "order_name",
	"financial_status", "fulfillment_status",
}

// WriteRecords streams the complete sale record dataset as CSV.
func WriteRecords(w io.Writer, records []domain.SaleRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(recordHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.ItemName,
			string(rec.Category),
			formatAmount(rec.SellingPrice),
			formatAmount(rec.CostUsed),
			formatAmount(rec.Profit),
			fmt.Sprintf("%d", rec.Quantity),
			rec.Date,
			rec.Customer,
			rec.OrderName,
			rec.FinancialStatus,
			rec.FulfillmentStatus,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteMetricsSummary streams the condensed metric/value pairs as CSV.
func WriteMetricsSummary(w io.Writer, summary domain.SalesSummary) error {
	writer := csv.NewWriter(w)

	rows := [][]string{
		{"Metric", "Value"},
		{"Total Revenue", formatAmount(summary.TotalRevenue)},
		{"Total Profit", formatAmount(summary.TotalProfit)},
		{"Total Orders", fmt.Sprintf("%d", summary.UniqueOrders)},
		{"Avg Order Value", formatAmount(summary.AvgOrderValue)},
		{"Profit Margin", fmt.Sprintf("%.1f%%", summary.ProfitMargin)},
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
