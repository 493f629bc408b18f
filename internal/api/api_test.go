package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swawe/analytics-go/internal/domain"
	"github.com/swawe/analytics-go/internal/service"
	"github.com/swawe/analytics-go/internal/shopify"
)

type stubOrderSource struct {
	orders []domain.Order
}

func (s *stubOrderSource) FetchAllOrders(ctx context.Context) shopify.FetchResult {
	return shopify.FetchResult{
		Orders:        s.orders,
		ExpectedCount: len(s.orders),
		Pages:         1,
		Complete:      true,
	}
}

func (s *stubOrderSource) FetchRecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	return s.orders, nil
}

func newTestRouter(source service.OrderSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewSalesService(source, nil, service.Options{})
	return NewRouter(svc, nil)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubOrderSource{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["connected"])
}

func TestRefreshAndReadEndpoints(t *testing.T) {
	router := newTestRouter(&stubOrderSource{orders: []domain.Order{
		{
			Name:            "#100",
			CreatedAt:       "2024-03-01T12:00:00Z",
			TotalPrice:      "1200.00",
			FinancialStatus: "pending",
			LineItems: []domain.LineItem{
				{ID: 1, Name: "Zip Hoodie", Price: "1200.00", Quantity: 1},
			},
		},
	}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sales/refresh", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/records", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var records struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Equal(t, 1, records.Count)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/summary", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var summary domain.SalesSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1200.0, summary.TotalRevenue)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/pending", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var pending domain.PendingActions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Equal(t, 1, pending.ToFulfill.Count)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales_data_")
	assert.True(t, strings.HasPrefix(w.Body.String(), "item_name,"))
}

func TestRefreshDisconnectedReturns503(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sales/refresh", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUpdateCostsEndpoint(t *testing.T) {
	router := newTestRouter(&stubOrderSource{})

	body := strings.NewReader(`{"hoodie_base_cost": 550, "tshirt_base_cost": 220, "additional_cost": 380}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sales/costs", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/costs", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var costs domain.CostConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &costs))
	assert.Equal(t, 550, costs.HoodieBaseCost)
	assert.Equal(t, 380, costs.AdditionalCost)
}

func TestRecordsRejectsBadDates(t *testing.T) {
	router := newTestRouter(&stubOrderSource{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/records?start=03-01-2024", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
