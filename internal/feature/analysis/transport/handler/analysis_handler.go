// Package handler provides the HTTP handlers for the analysis feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fno_analyzer/internal/feature/analysis/domain/entity"
	"fno_analyzer/internal/feature/analysis/transport/http/dto"
	"fno_analyzer/internal/feature/analysis/usecase"
	"fno_analyzer/internal/platform/metrics"
)

// AnalysisUsecase is the usecase interface consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler).
type AnalysisUsecase interface {
	Run(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error)
}

// AnalysisHandler handles the analysis HTTP requests.
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler creates a new AnalysisHandler with the given usecase.
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// AnalyzeStocksHandler runs the batch analysis for a date pair.
//
// Endpoint:
// GET /api/analyze_stocks?previous_date=2025-05-22&current_date=2025-05-23
//
// Responds 400 on missing or malformed dates and 500 when the catalog or
// the result store is unavailable; per-instrument failures never fail the
// request and surface in errors_list instead.
func (h *AnalysisHandler) AnalyzeStocksHandler(c *gin.Context) {
	prevStr := c.Query("previous_date")
	currStr := c.Query("current_date")
	if prevStr == "" || currStr == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing 'previous_date' or 'current_date' query parameters"})
		return
	}

	prevDate, err := time.Parse(usecase.DateLayout, prevStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, use YYYY-MM-DD"})
		return
	}
	currDate, err := time.Parse(usecase.DateLayout, currStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, use YYYY-MM-DD"})
		return
	}

	h.analyze(c, prevDate, currDate)
}

func (h *AnalysisHandler) analyze(c *gin.Context, prevDate, currDate time.Time) {
	start := time.Now()
	run, err := h.uc.Run(c.Request.Context(), prevDate, currDate)
	metrics.AnalysisRunDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AnalysisRunsTotal.WithLabelValues("error").Inc()
		slog.Error("analysis run failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	metrics.AnalysisRunsTotal.WithLabelValues("ok").Inc()

	out := dto.AnalysisResponse{
		FilteredStocks:       make([]dto.FilteredStockResponse, 0, len(run.FilteredStocks)),
		ProcessedStocksCount: len(run.Results),
		ErrorsList:           run.Errors,
	}
	for _, f := range run.FilteredStocks {
		out.FilteredStocks = append(out.FilteredStocks, dto.FilteredStockResponse{
			Symbol:        f.Symbol,
			PercentChange: f.PercentChange,
		})
	}
	if out.ErrorsList == nil {
		out.ErrorsList = []string{}
	}

	c.JSON(http.StatusOK, out)
}
