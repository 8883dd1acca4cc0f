package aggregators

import (
	"fmt"

	"metrics-report/internal/shared/svcerrors"
)

const (
	codeInvalidReportDate = "RPT_1000"
	codeProjectNotFound   = "RPT_1001"
	codeNoMetricsForDate  = "RPT_1002"

	codeInternalMissingTimestamp = "AGG_9000"
	codeInternalTimestampParse   = "AGG_9001"
	codeInternalRowStoreFailed   = "STO_9000"
)

// errInvalidReportDate returns an error when a report date query parameter cannot be parsed.
func errInvalidReportDate(raw string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportDate,
		fmt.Sprintf("invalid date %q: expected DD/MM/YYYY", raw), nil)
}

// errProjectNotFound returns an error when a project id is not in the catalog.
func errProjectNotFound(projectID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeProjectNotFound,
		fmt.Sprintf("unknown project %q", projectID), cause)
}

// errNoMetricsForDate returns an error when a day has no matching rows at all,
// which is distinct from rows summing to zero.
func errNoMetricsForDate(date string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoMetricsForDate,
		fmt.Sprintf("no metrics recorded on %s", date), nil)
}

// errInternalMissingTimestamp returns an error when a stored row has neither timestamp column.
func errInternalMissingTimestamp(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMissingTimestamp, fmt.Errorf("missingTimestamp: %w", cause))
}

// errInternalTimestampParse returns an error when a stored timestamp fails to parse.
func errInternalTimestampParse(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTimestampParse, fmt.Errorf("timestampParseFailed: %w", cause))
}

// errInternalRowStoreFailed returns an error when a metric row store operation fails.
func errInternalRowStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRowStoreFailed, fmt.Errorf("metricRowStoreFailed: %w", cause))
}
