package aggregators

import (
	"testing"
	"time"

	"metrics-report/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayReportBuilder_Build_SumsSingleDay(t *testing.T) {
	t.Parallel()

	builder := NewDayReportBuilder()
	reportDay := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []*models.MetricRow{
		{Timestamp: ts(t, "2024-01-01 08:00:00"), UpdateCount: 5, TableName: "A", TopUser: "u1", TopUserCount: 3, TotalUsers: 100, LastUpdated: day(t, "2024-01-01")},
		{Timestamp: ts(t, "2024-01-01 14:00:00"), UpdateCount: 2, TableName: "B", TopUser: "u2", TopUserCount: 6, TotalUsers: 102},
	}

	report, err := builder.Build(reportDay, rows)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", report.Date)
	assert.Equal(t, int64(7), report.TotalUpdates)
	assert.Equal(t, "u2", report.TopUser)
	assert.Equal(t, int64(6), report.TopUserCount)
	assert.Equal(t, int64(102), report.TotalUsers)

	require.Contains(t, report.TableMetrics, "A")
	require.Contains(t, report.TableMetrics, "B")
	assert.Equal(t, int64(5), report.TableMetrics["A"].Count)
	require.NotNil(t, report.TableMetrics["A"].LastUpdated)
	assert.Equal(t, int64(2), report.TableMetrics["B"].Count)
	assert.Nil(t, report.TableMetrics["B"].LastUpdated)
}

func TestDayReportBuilder_Build_RowsSummingToZeroIsNotEmpty(t *testing.T) {
	t.Parallel()

	builder := NewDayReportBuilder()
	reportDay := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// A day with rows that sum to zero still yields a report; "no rows at
	// all" is the caller's not-found case.
	rows := []*models.MetricRow{
		{Timestamp: ts(t, "2024-01-01 08:00:00"), UpdateCount: 0, TableName: "A", TotalUsers: 50},
	}

	report, err := builder.Build(reportDay, rows)
	require.NoError(t, err)

	assert.Equal(t, int64(0), report.TotalUpdates)
	assert.Equal(t, int64(50), report.TotalUsers)
	assert.Contains(t, report.TableMetrics, "A")
}

func TestDayReportBuilder_Build_TieBreaksFirstSeen(t *testing.T) {
	t.Parallel()

	builder := NewDayReportBuilder()
	reportDay := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []*models.MetricRow{
		{Timestamp: ts(t, "2024-01-01 08:00:00"), TableName: "A", TopUser: "first", TopUserCount: 4},
		{Timestamp: ts(t, "2024-01-01 09:00:00"), TableName: "A", TopUser: "second", TopUserCount: 4},
	}

	report, err := builder.Build(reportDay, rows)
	require.NoError(t, err)

	assert.Equal(t, "first", report.TopUser)
}

func TestDayReportBuilder_Build_MissingTimestampFails(t *testing.T) {
	t.Parallel()

	builder := NewDayReportBuilder()
	reportDay := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	report, err := builder.Build(reportDay, []*models.MetricRow{{UpdateCount: 1, TableName: "A"}})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrMissingTimestamp)
}
