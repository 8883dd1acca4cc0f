package aggregators

import (
	"metrics-report/internal/shared/metrics"
)

const (
	reportKindSummary = "summary"
	reportKindDay     = "day"
)

var (
	// metricReportBuiltTotal counts full aggregation passes, labeled by the
	// kind of report and the stable error code ("" on success).
	metricReportBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "report_built_total",
		},
		[]string{"report_kind", metrics.FieldErrorCode},
	)
)
