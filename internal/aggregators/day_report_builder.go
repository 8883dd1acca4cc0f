package aggregators

import (
	"fmt"
	"time"

	"metrics-report/internal/models"
)

type DayReportBuilder interface {
	// Build folds rows from a single calendar day into one DayReport. Same
	// summation semantics as the Summary pass but without bucketing: the
	// caller already narrowed the rows to one day. Whether an empty row set
	// means "not found" is the caller's call, not the builder's.
	Build(day time.Time, rows []*models.MetricRow) (*models.DayReport, error)
}

type dayReportBuilder struct{}

func NewDayReportBuilder() DayReportBuilder {
	return &dayReportBuilder{}
}

func (b *dayReportBuilder) Build(day time.Time, rows []*models.MetricRow) (*models.DayReport, error) {
	report := models.NewEmptyDayReport(day.Format(models.DayKeyLayout))

	userCounts := make(map[string]int64)
	var userOrder []string

	for i, row := range rows {
		if _, ok := row.EffectiveTimestamp(); !ok {
			return nil, fmt.Errorf("row %d (table %q): %w", i, row.TableName, ErrMissingTimestamp)
		}

		report.TotalUpdates += row.UpdateCount

		if row.TopUser != "" {
			if _, seen := userCounts[row.TopUser]; !seen {
				userOrder = append(userOrder, row.TopUser)
			}
			userCounts[row.TopUser] += row.TopUserCount
		}

		accumulateTable(report.TableMetrics, row)
	}

	if len(userOrder) > 0 {
		report.TopUser, report.TopUserCount = selectTopUser(userCounts, userOrder)
	}

	if len(rows) > 0 {
		report.TotalUsers = rows[len(rows)-1].TotalUsers
	}

	return report, nil
}
