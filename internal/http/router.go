package http

import (
	"net/http"

	"metrics-report/internal/aggregators"
	"metrics-report/internal/shared/loggers"
	"metrics-report/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
//
// The report API is read-only: every route is a GET over a Summary, one of
// its projections, or a single-day aggregate. /metrics/weekday and
// /metrics/monthly are kept as aliases for frontends built against the older
// route names. The Prometheus scrape endpoint lives under /internal/metrics
// because /metrics is report data here.
func NewRouter(reportService aggregators.ReportService, defaultProject string, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	h := newReportHandler(reportService, defaultProject)

	router.Route("/metrics", func(r chi.Router) {
		r.Get("/", errorHandlingAdapter(h.summary))
		r.Get("/top-user", errorHandlingAdapter(h.topUser))
		r.Get("/total-updates", errorHandlingAdapter(h.totalUpdates))
		r.Get("/per-day", errorHandlingAdapter(h.updatesPerDay))
		r.Get("/per-month", errorHandlingAdapter(h.updatesPerMonth))
		r.Get("/per-weekday", errorHandlingAdapter(h.updatesPerWeekday))

		// legacy route names
		r.Get("/monthly", errorHandlingAdapter(h.updatesPerMonth))
		r.Get("/weekday", errorHandlingAdapter(h.updatesPerWeekday))

		r.Get("/{projectID}/by-date", errorHandlingAdapter(h.dayReportByDate))
		r.Get("/{projectID}/today", errorHandlingAdapter(h.dayReportToday))
	})

	router.Route("/projects", func(r chi.Router) {
		r.Get("/", errorHandlingAdapter(h.projects))
		r.Get("/{projectID}/tables", errorHandlingAdapter(h.projectTables))

		r.Route("/{projectID}/metrics", func(pr chi.Router) {
			pr.Get("/", errorHandlingAdapter(h.summary))
			pr.Get("/top-user", errorHandlingAdapter(h.topUser))
			pr.Get("/total-updates", errorHandlingAdapter(h.totalUpdates))
			pr.Get("/per-day", errorHandlingAdapter(h.updatesPerDay))
			pr.Get("/per-month", errorHandlingAdapter(h.updatesPerMonth))
			pr.Get("/per-weekday", errorHandlingAdapter(h.updatesPerWeekday))
		})
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/internal/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
