package http

import (
	"net/http"

	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/ingestors"
	"hotpath-analytics/internal/rankers"
	"hotpath-analytics/internal/shared/loggers"
	"hotpath-analytics/internal/shared/metrics"
	"hotpath-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	ingestionService ingestors.IngestionService,
	reportStore stores.ReportStore,
	renderer *rankers.ReportRenderer,
	assigner *eventtime.Assigner,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestLinesHandler := NewIngestLinesHandler(ingestionService)
	reportListHandler := NewReportListHandler(reportStore)
	latestReportHandler := NewLatestReportHandler(reportStore, renderer)
	reportHandler := NewReportHandler(reportStore, renderer)
	progressHandler := NewProgressHandler(assigner)

	// Routes
	router.Post("/loglines", errorHandlingAdapter(ingestLinesHandler))
	router.Get("/reports", errorHandlingAdapter(reportListHandler))
	router.Get("/reports/latest", errorHandlingAdapter(latestReportHandler))
	router.Get("/reports/{windowEnd}", errorHandlingAdapter(reportHandler))
	router.Get("/progress", errorHandlingAdapter(progressHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
