package aggregators

import (
	"context"
	"errors"
	"time"

	"metrics-report/internal/models"
	"metrics-report/internal/shared/loggers"
	"metrics-report/internal/shared/metrics"
	"metrics-report/internal/shared/svcerrors"
	"metrics-report/internal/stores"
)

// ReportDateLayout is the wire format of the by-date query parameter.
const ReportDateLayout = "02/01/2006"

// ParseReportDate parses a DD/MM/YYYY date query parameter.
func ParseReportDate(raw string) (time.Time, error) {
	day, err := time.Parse(ReportDateLayout, raw)
	if err != nil {
		return time.Time{}, errInvalidReportDate(raw)
	}
	return day, nil
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Projects lists the configured projects.
	Projects() []models.Project

	// ProjectTables lists the distinct logical table names recorded for a
	// project.
	ProjectTables(ctx context.Context, projectID string) ([]string, error)

	// Summary fetches the project's full row set and folds it into one
	// Summary. Every call re-reads the source; rows are immutable facts,
	// so recomputing has a cost but no correctness implication.
	Summary(ctx context.Context, projectID string) (*models.Summary, error)

	// DayReport aggregates the rows of one calendar day. A day with zero
	// matching rows is a not-found error, distinct from rows summing to
	// zero.
	DayReport(ctx context.Context, projectID string, day time.Time) (*models.DayReport, error)
}

type reportService struct {
	catalog          stores.ProjectCatalog
	rowStore         stores.MetricRowStore
	summaryBuilder   SummaryBuilder
	dayReportBuilder DayReportBuilder
}

func NewReportService(
	catalog stores.ProjectCatalog,
	rowStore stores.MetricRowStore,
	summaryBuilder SummaryBuilder,
	dayReportBuilder DayReportBuilder,
) ReportService {
	return &reportService{
		catalog:          catalog,
		rowStore:         rowStore,
		summaryBuilder:   summaryBuilder,
		dayReportBuilder: dayReportBuilder,
	}
}

func (s *reportService) Projects() []models.Project {
	return s.catalog.Projects()
}

func (s *reportService) ProjectTables(ctx context.Context, projectID string) ([]string, error) {
	table, err := s.catalog.TableFor(projectID)
	if err != nil {
		return nil, errProjectNotFound(projectID, err)
	}

	names, err := s.rowStore.ListTableNames(ctx, table)
	if err != nil {
		return nil, s.storeError(err)
	}

	return names, nil
}

func (s *reportService) Summary(ctx context.Context, projectID string) (*models.Summary, error) {
	logger := loggers.Ctx(ctx)

	table, err := s.catalog.TableFor(projectID)
	if err != nil {
		return nil, errProjectNotFound(projectID, err)
	}

	rows, err := s.rowStore.ListRows(ctx, table)
	if err != nil {
		svcErr := s.storeError(err)
		metricReportBuiltTotal.WithLabelValues(reportKindSummary, svcErr.Code).Inc()
		return nil, svcErr
	}

	logger.Debug().
		Str(loggers.FieldProject, projectID).
		Int(loggers.FieldRowCount, len(rows)).
		Msg("building summary report")

	summary, err := s.summaryBuilder.Build(rows)
	if err != nil {
		svcErr := errInternalMissingTimestamp(err)
		metricReportBuiltTotal.WithLabelValues(reportKindSummary, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricReportBuiltTotal.WithLabelValues(reportKindSummary, metrics.ValueNoError).Inc()
	return summary, nil
}

func (s *reportService) DayReport(ctx context.Context, projectID string, day time.Time) (*models.DayReport, error) {
	logger := loggers.Ctx(ctx)

	table, err := s.catalog.TableFor(projectID)
	if err != nil {
		return nil, errProjectNotFound(projectID, err)
	}

	rows, err := s.rowStore.ListRowsByDate(ctx, table, day)
	if err != nil {
		svcErr := s.storeError(err)
		metricReportBuiltTotal.WithLabelValues(reportKindDay, svcErr.Code).Inc()
		return nil, svcErr
	}

	if len(rows) == 0 {
		return nil, errNoMetricsForDate(day.Format(models.DayKeyLayout))
	}

	logger.Debug().
		Str(loggers.FieldProject, projectID).
		Int(loggers.FieldRowCount, len(rows)).
		Msg("building day report")

	report, err := s.dayReportBuilder.Build(day, rows)
	if err != nil {
		svcErr := errInternalMissingTimestamp(err)
		metricReportBuiltTotal.WithLabelValues(reportKindDay, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricReportBuiltTotal.WithLabelValues(reportKindDay, metrics.ValueNoError).Inc()
	return report, nil
}

// storeError distinguishes malformed stored timestamps from other row source
// failures; both are internal, but they carry different stable codes.
func (s *reportService) storeError(err error) *svcerrors.ServiceError {
	if errors.Is(err, stores.ErrTimestampParse) {
		return errInternalTimestampParse(err)
	}
	return errInternalRowStoreFailed(err)
}
