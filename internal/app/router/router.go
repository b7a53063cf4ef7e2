// Package router wires the HTTP routes of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	analysishandler "fno_analyzer/internal/feature/analysis/transport/handler"
	platformhandler "fno_analyzer/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(analysis *analysishandler.AnalysisHandler) *gin.Engine {
	r := gin.Default()

	// The dashboard frontend is served from a different origin
	r.Use(cors.Default())

	r.GET("/healthz", platformhandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/analyze_stocks", analysis.AnalyzeStocksHandler)
	}

	return r
}
