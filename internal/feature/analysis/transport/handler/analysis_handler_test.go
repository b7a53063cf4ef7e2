package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fno_analyzer/internal/feature/analysis/domain/entity"
	"fno_analyzer/internal/feature/analysis/transport/handler"
	catalogdomain "fno_analyzer/internal/feature/catalog/domain"
)

// mockAnalysisUsecase is a mock implementation of the AnalysisUsecase interface.
type mockAnalysisUsecase struct {
	RunFunc func(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error)
}

func (m *mockAnalysisUsecase) Run(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error) {
	return m.RunFunc(ctx, previousDate, currentDate)
}

func setupRouter(uc handler.AnalysisUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAnalysisHandler(uc)
	r.GET("/api/analyze_stocks", h.AnalyzeStocksHandler)
	return r
}

func TestAnalysisHandler_AnalyzeStocksHandler_Success(t *testing.T) {
	uc := &mockAnalysisUsecase{
		RunFunc: func(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error) {
			assert.Equal(t, "2025-05-22", previousDate.Format("2006-01-02"))
			assert.Equal(t, "2025-05-23", currentDate.Format("2006-01-02"))
			return &entity.AnalysisRun{
				CurrentDate:  "2025-05-23",
				PreviousDate: "2025-05-22",
				Results:      make([]entity.StockAnalysisResult, 95),
				FilteredStocks: []entity.FilteredStock{
					{Symbol: "RELIANCE", PercentChange: 2.50},
					{Symbol: "TCS", PercentChange: -3.33},
				},
				Errors: []string{"LARSEN: instrument key not found in catalog"},
			}, nil
		},
	}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze_stocks?previous_date=2025-05-22&current_date=2025-05-23", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"filtered_stocks": [
			{"symbol": "RELIANCE", "percent_change": 2.5},
			{"symbol": "TCS", "percent_change": -3.33}
		],
		"processed_stocks_count": 95,
		"errors_list": ["LARSEN: instrument key not found in catalog"]
	}`, w.Body.String())
}

func TestAnalysisHandler_AnalyzeStocksHandler_EmptyRun(t *testing.T) {
	uc := &mockAnalysisUsecase{
		RunFunc: func(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error) {
			return &entity.AnalysisRun{}, nil
		},
	}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze_stocks?previous_date=2025-05-22&current_date=2025-05-23", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// Empty collections must serialize as [], not null.
	assert.JSONEq(t, `{"filtered_stocks": [], "processed_stocks_count": 0, "errors_list": []}`, w.Body.String())
}

func TestAnalysisHandler_AnalyzeStocksHandler_BadRequest(t *testing.T) {
	uc := &mockAnalysisUsecase{
		RunFunc: func(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error) {
			t.Fatal("usecase must not run on invalid input")
			return nil, nil
		},
	}
	router := setupRouter(uc)

	tests := []struct {
		name string
		url  string
	}{
		{"missing both dates", "/api/analyze_stocks"},
		{"missing current date", "/api/analyze_stocks?previous_date=2025-05-22"},
		{"missing previous date", "/api/analyze_stocks?current_date=2025-05-23"},
		{"malformed previous date", "/api/analyze_stocks?previous_date=22-05-2025&current_date=2025-05-23"},
		{"malformed current date", "/api/analyze_stocks?previous_date=2025-05-22&current_date=tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAnalysisHandler_AnalyzeStocksHandler_RunFailure(t *testing.T) {
	uc := &mockAnalysisUsecase{
		RunFunc: func(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error) {
			return nil, catalogdomain.ErrCatalogUnavailable
		},
	}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze_stocks?previous_date=2025-05-22&current_date=2025-05-23", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "instrument catalog unavailable"}`, w.Body.String())
}

func TestAnalysisHandler_AnalyzeStocksHandler_StorageFailure(t *testing.T) {
	uc := &mockAnalysisUsecase{
		RunFunc: func(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error) {
			return nil, errors.New("persist analysis results: disk full")
		},
	}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze_stocks?previous_date=2025-05-22&current_date=2025-05-23", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
