package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/swawe/analytics-go/internal/config"
	"github.com/swawe/analytics-go/internal/domain"
)

const defaultRequestTimeout = 30 * time.Second

// Client talks to the Shopify Admin REST API for one store.
type Client struct {
	baseURL    string
	token      string
	pageLimit  int
	pageDelay  time.Duration
	httpClient *http.Client
}

// FetchResult is the outcome of a full order fetch. A fetch never fails
// hard: transport or API errors abort pagination and whatever was
// accumulated is returned with Complete=false and the error recorded.
type FetchResult struct {
	Orders        []domain.Order `json:"orders"`
	ExpectedCount int            `json:"expected_count"`
	Pages         int            `json:"pages"`
	Complete      bool           `json:"complete"`
	Err           string         `json:"error,omitempty"`
}

// Truncated reports whether the server advertised more orders than the
// fetch delivered.
func (r FetchResult) Truncated() bool {
	return !r.Complete || (r.ExpectedCount >= 0 && len(r.Orders) < r.ExpectedCount)
}

// NewClient builds a client from config. Credentials must be present;
// disconnected mode is the caller's concern.
func NewClient(cfg config.ShopifyConfig) (*Client, error) {
	if !cfg.Connected() {
		return nil, fmt.Errorf("shopify store url and access token are required")
	}

	pageLimit := cfg.PageLimit
	if pageLimit <= 0 || pageLimit > 250 {
		pageLimit = 250
	}

	baseURL := strings.TrimSuffix(cfg.StoreURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return &Client{
		baseURL:    fmt.Sprintf("%s/admin/api/%s", baseURL, cfg.APIVersion),
		token:      cfg.AccessToken,
		pageLimit:  pageLimit,
		pageDelay:  cfg.PageDelay,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

// CountOrders returns the store's total order count across all statuses.
func (c *Client) CountOrders(ctx context.Context) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	url := fmt.Sprintf("%s/orders/count.json?status=any", c.baseURL)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

// FetchAllOrders pulls every order for the store, following the
// rel="next" pagination links until exhausted. The expected count is
// fetched up front for progress reporting only; loop termination comes
// from the absence of a next link or an empty page.
func (c *Client) FetchAllOrders(ctx context.Context) FetchResult {
	result := FetchResult{ExpectedCount: -1}

	count, err := c.CountOrders(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("order count unavailable, continuing without progress total")
	} else {
		result.ExpectedCount = count
		log.Info().Int("total", count).Msg("starting full order fetch")
	}

	url := fmt.Sprintf("%s/orders.json?limit=%d&status=any", c.baseURL, c.pageLimit)
	for url != "" {
		select {
		case <-ctx.Done():
			result.Err = ctx.Err().Error()
			return result
		default:
		}

		orders, next, err := c.fetchPage(ctx, url)
		if err != nil {
			// Fail-soft: keep what we have, surface the failure.
			result.Err = err.Error()
			log.Error().Err(err).Int("fetched", len(result.Orders)).Msg("order fetch aborted")
			return result
		}
		if len(orders) == 0 {
			break
		}

		result.Orders = append(result.Orders, orders...)
		result.Pages++
		log.Info().
			Int("page", result.Pages).
			Int("fetched", len(result.Orders)).
			Msg("fetched order page")

		url = next
		if url != "" && c.pageDelay > 0 {
			select {
			case <-ctx.Done():
				result.Err = ctx.Err().Error()
				return result
			case <-time.After(c.pageDelay):
			}
		}
	}

	result.Complete = true
	return result
}

// FetchRecentOrders pulls the most recent orders up to limit. Used by
// the new-order poll probe.
func (c *Client) FetchRecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	var payload struct {
		Orders []domain.Order `json:"orders"`
	}
	url := fmt.Sprintf("%s/orders.json?limit=%d&status=any", c.baseURL, limit)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.Orders, nil
}

func (c *Client) fetchPage(ctx context.Context, url string) ([]domain.Order, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("orders request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, "", fmt.Errorf("orders request returned status %d", resp.StatusCode)
	}

	var payload struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("decode orders page: %w", err)
	}

	return payload.Orders, nextPageURL(resp.Header.Get("Link")), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// nextPageURL extracts the rel="next" URL from a Link response header,
// or "" when pagination is exhausted.
func nextPageURL(linkHeader string) string {
	if !strings.Contains(linkHeader, `rel="next"`) {
		return ""
	}
	for _, link := range strings.Split(linkHeader, ",") {
		if !strings.Contains(link, `rel="next"`) {
			continue
		}
		parts := strings.Split(link, ";")
		return strings.Trim(strings.TrimSpace(parts[0]), "<> ")
	}
	return ""
}
