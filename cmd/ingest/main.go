package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/swawe/analytics-go/internal/config"
	"github.com/swawe/analytics-go/internal/domain"
	"github.com/swawe/analytics-go/internal/export"
	"github.com/swawe/analytics-go/internal/pipeline"
	"github.com/swawe/analytics-go/internal/shopify"
	"github.com/swawe/analytics-go/pkg/logger"
	"github.com/urfave/cli/v2"
)

// ingest is the offline companion to the server: fetch everything once,
// run the pipeline, and write the CSV exports to disk.
func main() {
	app := &cli.App{
		Name:  "ingest",
		Usage: "fetch Shopify orders and export sale records as CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "./data/output",
				Usage:   "directory for exported CSV files",
			},
			&cli.BoolFlag{
				Name:  "summary-only",
				Usage: "export only the metrics summary",
			},
		},
		Action: runIngest,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("ingest failed")
	}
}

func runIngest(c *cli.Context) error {
	cfg := config.Load()

	if !cfg.Shopify.Connected() {
		return fmt.Errorf("shopify credentials missing (set SHOPIFY_STORE_URL and SHOPIFY_ACCESS_TOKEN)")
	}

	client, err := shopify.NewClient(cfg.Shopify)
	if err != nil {
		return err
	}

	outDir := c.String("out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fetch := client.FetchAllOrders(context.Background())
	if fetch.Truncated() {
		logger.Log.Warn().
			Int("fetched", len(fetch.Orders)).
			Int("expected", fetch.ExpectedCount).
			Str("error", fetch.Err).
			Msg("fetch incomplete, exporting partial dataset")
	}

	costs := domain.CostConfig{
		HoodieBaseCost: cfg.Costs.HoodieBaseCost,
		TShirtBaseCost: cfg.Costs.TShirtBaseCost,
		AdditionalCost: cfg.Costs.AdditionalCost,
	}
	records := pipeline.NormalizeOrders(fetch.Orders, costs)
	summary := pipeline.BuildSalesSummary(records)

	stamp := time.Now().Format("20060102_1504")

	if !c.Bool("summary-only") {
		dataPath := filepath.Join(outDir, fmt.Sprintf("sales_data_%s.csv", stamp))
		if err := writeCSV(dataPath, func(f *os.File) error {
			return export.WriteRecords(f, records)
		}); err != nil {
			return err
		}
		logger.Log.Info().Str("path", dataPath).Int("records", len(records)).Msg("records exported")
	}

	summaryPath := filepath.Join(outDir, fmt.Sprintf("sales_summary_%s.csv", stamp))
	if err := writeCSV(summaryPath, func(f *os.File) error {
		return export.WriteMetricsSummary(f, summary)
	}); err != nil {
		return err
	}
	logger.Log.Info().Str("path", summaryPath).Msg("summary exported")

	return nil
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return write(f)
}
