package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/swawe/analytics-go/internal/domain"
	"github.com/swawe/analytics-go/internal/export"
	"github.com/swawe/analytics-go/internal/pipeline"
	"github.com/swawe/analytics-go/internal/service"
)

type SalesHandler struct {
	salesService *service.SalesService
}

func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// Refresh triggers a full fetch-and-rebuild of the sales dataset.
func (h *SalesHandler) Refresh(c *gin.Context) {
	result, err := h.salesService.Refresh(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("refresh failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh sales data"})
		return
	}

	if !result.Connected {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":  "shopify is not connected",
			"result": result,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckNewOrders runs the gated recent-order probe and merge.
func (h *SalesHandler) CheckNewOrders(c *gin.Context) {
	result, err := h.salesService.CheckNewOrders(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("new order check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check for new orders"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecords returns the sale records, optionally date-filtered.
func (h *SalesHandler) GetRecords(c *gin.Context) {
	records, err := h.salesService.Records(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}

// GetSummary returns the aggregated dashboard metrics.
func (h *SalesHandler) GetSummary(c *gin.Context) {
	summary, err := h.salesService.Summary(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetPending returns the pending-action classification.
func (h *SalesHandler) GetPending(c *gin.Context) {
	c.JSON(http.StatusOK, h.salesService.Pending())
}

// GetCosts returns the cost configuration in effect.
func (h *SalesHandler) GetCosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.salesService.Costs())
}

// UpdateCosts replaces the cost configuration and recalculates every
// record's profit.
func (h *SalesHandler) UpdateCosts(c *gin.Context) {
	var costs domain.CostConfig
	if err := c.ShouldBindJSON(&costs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cost configuration"})
		return
	}

	touched, err := h.salesService.UpdateCosts(c.Request.Context(), costs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"costs":              costs,
		"records_recomputed": touched,
	})
}

// ExportRecords streams the complete dataset as CSV.
func (h *SalesHandler) ExportRecords(c *gin.Context) {
	records, err := h.salesService.Records(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("sales_data_%s.csv", time.Now().Format("20060102_1504"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "text/csv")

	if err := export.WriteRecords(c.Writer, records); err != nil {
		log.Error().Err(err).Msg("record export failed")
	}
}

// ExportSummary streams the condensed metric/value pairs as CSV.
func (h *SalesHandler) ExportSummary(c *gin.Context) {
	records, err := h.salesService.Records(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary := pipeline.BuildSalesSummary(records)

	filename := fmt.Sprintf("sales_summary_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "text/csv")

	if err := export.WriteMetricsSummary(c.Writer, summary); err != nil {
		log.Error().Err(err).Msg("summary export failed")
	}
}
