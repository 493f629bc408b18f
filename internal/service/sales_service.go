package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/swawe/analytics-go/internal/cache"
	"github.com/swawe/analytics-go/internal/domain"
	"github.com/swawe/analytics-go/internal/pipeline"
	"github.com/swawe/analytics-go/internal/shopify"
	"golang.org/x/sync/singleflight"
)

const dateLayout = "2006-01-02"

// OrderSource is the remote order API the service pulls from. A nil
// source means the service runs disconnected for its whole lifetime.
type OrderSource interface {
	FetchAllOrders(ctx context.Context) shopify.FetchResult
	FetchRecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
}

// Options tunes a SalesService.
type Options struct {
	Costs        domain.CostConfig
	PollInterval time.Duration
	ProbeLimit   int
}

// SalesService owns the in-memory sale record set and the derived
// pending-action classification. All state lives for the process
// lifetime only and is rebuilt by Refresh. Mutations are serialized
// behind one mutex; concurrent refreshes collapse into a single fetch.
type SalesService struct {
	source       OrderSource
	summaryCache cache.SalesSummaryCache
	pollInterval time.Duration
	probeLimit   int
	now          func() time.Time

	refreshGroup singleflight.Group

	mu             sync.RWMutex
	records        []domain.SaleRecord
	pending        domain.PendingActions
	costs          domain.CostConfig
	lastOrderCheck time.Time
}

// RefreshResult reports the outcome of a full ingest. Partial fetches
// are not errors; they arrive with Complete=false and FetchError set.
type RefreshResult struct {
	Connected     bool   `json:"connected"`
	OrdersFetched int    `json:"orders_fetched"`
	ExpectedCount int    `json:"expected_count"`
	Records       int    `json:"records"`
	Complete      bool   `json:"complete"`
	Truncated     bool   `json:"truncated"`
	FetchError    string `json:"fetch_error,omitempty"`
}

// PollResult reports the outcome of a new-order probe.
type PollResult struct {
	Connected    bool `json:"connected"`
	Skipped      bool `json:"skipped"`
	NewOrders    int  `json:"new_orders"`
	RecordsAdded int  `json:"records_added"`
}

func NewSalesService(source OrderSource, summaryCache cache.SalesSummaryCache, opts Options) *SalesService {
	if summaryCache == nil {
		summaryCache = cache.NewNoopSummaryCache()
	}
	if opts.Costs == (domain.CostConfig{}) || !opts.Costs.Valid() {
		opts.Costs = domain.DefaultCostConfig()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 5 * time.Minute
	}
	if opts.ProbeLimit <= 0 {
		opts.ProbeLimit = 5
	}

	return &SalesService{
		source:       source,
		summaryCache: summaryCache,
		pollInterval: opts.PollInterval,
		probeLimit:   opts.ProbeLimit,
		now:          time.Now,
		costs:        opts.Costs,
	}
}

// Connected reports whether a remote order source is configured.
func (s *SalesService) Connected() bool {
	return s.source != nil
}

// Refresh rebuilds the record set and the pending-action classification
// from a full remote fetch. Concurrent callers share one fetch.
func (s *SalesService) Refresh(ctx context.Context) (*RefreshResult, error) {
	if !s.Connected() {
		return &RefreshResult{}, nil
	}

	v, err, _ := s.refreshGroup.Do("refresh", func() (interface{}, error) {
		return s.doRefresh(ctx), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RefreshResult), nil
}

func (s *SalesService) doRefresh(ctx context.Context) *RefreshResult {
	fetch := s.source.FetchAllOrders(ctx)

	s.mu.Lock()
	s.records = pipeline.NormalizeOrders(fetch.Orders, s.costs)
	s.pending = pipeline.ClassifyPendingActions(fetch.Orders)
	recordCount := len(s.records)
	s.mu.Unlock()

	s.invalidateSummaries(ctx)

	result := &RefreshResult{
		Connected:     true,
		OrdersFetched: len(fetch.Orders),
		ExpectedCount: fetch.ExpectedCount,
		Records:       recordCount,
		Complete:      fetch.Complete,
		Truncated:     fetch.Truncated(),
		FetchError:    fetch.Err,
	}

	log.Info().
		Int("orders", result.OrdersFetched).
		Int("records", result.Records).
		Bool("complete", result.Complete).
		Msg("sales data refreshed")

	return result
}

// CheckNewOrders probes the most recent orders and merges genuinely new
// ones into the record set. The probe only fires once per poll interval
// and only when an initial dataset exists; otherwise it reports itself
// skipped. Probe failures are returned, never swallowed.
func (s *SalesService) CheckNewOrders(ctx context.Context) (*PollResult, error) {
	if !s.Connected() {
		return &PollResult{Skipped: true}, nil
	}

	s.mu.Lock()
	if len(s.records) == 0 || s.now().Sub(s.lastOrderCheck) < s.pollInterval {
		s.mu.Unlock()
		return &PollResult{Connected: true, Skipped: true}, nil
	}
	s.lastOrderCheck = s.now()
	s.mu.Unlock()

	recent, err := s.source.FetchRecentOrders(ctx, s.probeLimit)
	if err != nil {
		return nil, fmt.Errorf("probe recent orders: %w", err)
	}

	s.mu.Lock()
	merged, added := pipeline.MergeNewOrders(s.records, recent, s.costs)
	s.records = merged
	s.mu.Unlock()

	newOrders := 0
	if added > 0 {
		s.invalidateSummaries(ctx)
		seen := make(map[string]struct{})
		for _, rec := range merged[len(merged)-added:] {
			seen[rec.OrderName] = struct{}{}
		}
		newOrders = len(seen)
		log.Info().Int("orders", newOrders).Int("records", added).Msg("merged new orders")
	}

	return &PollResult{Connected: true, NewOrders: newOrders, RecordsAdded: added}, nil
}

// Records returns a copy of the record set, optionally filtered to an
// inclusive [start, end] date range (YYYY-MM-DD).
func (s *SalesService) Records(start, end string) ([]domain.SaleRecord, error) {
	startDay, endDay, filtered, err := parseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	records := make([]domain.SaleRecord, len(s.records))
	copy(records, s.records)
	s.mu.RUnlock()

	if !filtered {
		return records, nil
	}
	return pipeline.FilterRecordsByDate(records, startDay, endDay), nil
}

// Summary returns the aggregated dashboard metrics for the optional
// date range, served from cache when possible.
func (s *SalesService) Summary(ctx context.Context, start, end string) (*domain.SalesSummary, error) {
	filter := cache.SummaryFilter{Start: start, End: end}
	if cached, ok, err := s.summaryCache.GetSummary(ctx, filter); err != nil {
		log.Warn().Err(err).Msg("summary cache read failed")
	} else if ok {
		return cached, nil
	}

	records, err := s.Records(start, end)
	if err != nil {
		return nil, err
	}

	summary := pipeline.BuildSalesSummary(records)
	if err := s.summaryCache.SetSummary(ctx, filter, &summary); err != nil {
		log.Warn().Err(err).Msg("summary cache write failed")
	}

	return &summary, nil
}

// Pending returns the last computed pending-action classification.
func (s *SalesService) Pending() domain.PendingActions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Costs returns the cost configuration in effect.
func (s *SalesService) Costs() domain.CostConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.costs
}

// UpdateCosts swaps the cost configuration and recomputes cost_used and
// profit for every existing record without re-fetching. Returns the
// number of records touched.
func (s *SalesService) UpdateCosts(ctx context.Context, costs domain.CostConfig) (int, error) {
	if !costs.Valid() {
		return 0, fmt.Errorf("cost values must be non-negative")
	}

	s.mu.Lock()
	s.costs = costs
	s.records = pipeline.RecalculateProfits(s.records, costs)
	touched := len(s.records)
	s.mu.Unlock()

	s.invalidateSummaries(ctx)

	log.Info().
		Int("hoodie_base", costs.HoodieBaseCost).
		Int("tshirt_base", costs.TShirtBaseCost).
		Int("additional", costs.AdditionalCost).
		Int("records", touched).
		Msg("profits recalculated")

	return touched, nil
}

func (s *SalesService) invalidateSummaries(ctx context.Context) {
	if err := s.summaryCache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("summary cache invalidation failed")
	}
}

func parseDateRange(start, end string) (time.Time, time.Time, bool, error) {
	if start == "" && end == "" {
		return time.Time{}, time.Time{}, false, nil
	}

	startDay := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endDay := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	var err error
	if start != "" {
		if startDay, err = time.Parse(dateLayout, start); err != nil {
			return time.Time{}, time.Time{}, false, fmt.Errorf("invalid start date %q: %w", start, err)
		}
	}
	if end != "" {
		if endDay, err = time.Parse(dateLayout, end); err != nil {
			return time.Time{}, time.Time{}, false, fmt.Errorf("invalid end date %q: %w", end, err)
		}
	}

	return startDay, endDay, true, nil
}
