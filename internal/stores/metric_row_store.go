package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"metrics-report/internal/models"
	"metrics-report/internal/shared/sqldb"
)

// ErrTimestampParse marks a timestamp column whose string value failed to
// parse while shaping a MetricRow. The whole fetch fails; no partial row set
// is returned.
var ErrTimestampParse = errors.New("failed to parse metric row timestamp")

// Accepted timestamp layouts, tried in order. Legacy tables store plain
// DATETIME text, newer collectors write RFC3339.
var rowTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

//go:generate mockgen -source=metric_row_store.go -destination=./mocks/metric_row_store_mock.go -package=mocks
type MetricRowStore interface {
	// ListRows returns every row of the given metrics table, in the order
	// the database yields them. That order is the positional contract for
	// the summary's total_users field, so it is passed through untouched.
	ListRows(ctx context.Context, table string) ([]*models.MetricRow, error)

	// ListRowsByDate returns the rows whose effective timestamp falls on
	// the given calendar day.
	ListRowsByDate(ctx context.Context, table string, day time.Time) ([]*models.MetricRow, error)

	// ListTableNames returns the distinct logical table names recorded in
	// the metrics table, sorted.
	ListTableNames(ctx context.Context, table string) ([]string, error)
}

type metricRowStore struct {
	db sqldb.DB
}

func NewMetricRowStore(db sqldb.DB) MetricRowStore {
	return &metricRowStore{db: db}
}

const rowColumns = "`timestamp`, detected_timestamp, update_count, table_name, top_user, top_user_count, total_users, last_updated"

// Table identifiers are never request-provided: they come from the validated
// project catalog, which is why interpolation is safe here.
func (s *metricRowStore) ListRows(ctx context.Context, table string) ([]*models.MetricRow, error) {
	query := fmt.Sprintf("SELECT %s FROM `%s`", rowColumns, table)
	return s.queryRows(ctx, query)
}

func (s *metricRowStore) ListRowsByDate(ctx context.Context, table string, day time.Time) ([]*models.MetricRow, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM `%s` WHERE DATE(COALESCE(`timestamp`, detected_timestamp)) = ?",
		rowColumns, table)
	return s.queryRows(ctx, query, day.Format(models.DayKeyLayout))
}

func (s *metricRowStore) ListTableNames(ctx context.Context, table string) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT table_name FROM `%s` ORDER BY table_name", table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query table names from %q: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate table names: %w", err)
	}

	return names, nil
}

func (s *metricRowStore) queryRows(ctx context.Context, query string, args ...any) ([]*models.MetricRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query metric rows: %w", err)
	}
	defer rows.Close()

	var result []*models.MetricRow
	for rows.Next() {
		row, err := scanMetricRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate metric rows: %w", err)
	}

	return result, nil
}

func scanMetricRow(rows sqldb.RowScanner) (*models.MetricRow, error) {
	var (
		timestamp         sql.NullString
		detectedTimestamp sql.NullString
		updateCount       sql.NullInt64
		tableName         sql.NullString
		topUser           sql.NullString
		topUserCount      sql.NullInt64
		totalUsers        sql.NullInt64
		lastUpdated       sql.NullString
	)

	err := rows.Scan(&timestamp, &detectedTimestamp, &updateCount, &tableName,
		&topUser, &topUserCount, &totalUsers, &lastUpdated)
	if err != nil {
		return nil, fmt.Errorf("failed to scan metric row: %w", err)
	}

	row := &models.MetricRow{
		UpdateCount:  updateCount.Int64,
		TableName:    tableName.String,
		TopUser:      topUser.String,
		TopUserCount: topUserCount.Int64,
		TotalUsers:   totalUsers.Int64,
	}

	if row.Timestamp, err = parseRowTime(timestamp); err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}
	if row.DetectedTimestamp, err = parseRowTime(detectedTimestamp); err != nil {
		return nil, fmt.Errorf("detected_timestamp: %w", err)
	}
	if row.LastUpdated, err = parseRowTime(lastUpdated); err != nil {
		return nil, fmt.Errorf("last_updated: %w", err)
	}

	return row, nil
}

// parseRowTime parses a nullable timestamp column. NULL and empty values map
// to nil; a non-empty value that matches no known layout is a hard error.
func parseRowTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}

	for _, layout := range rowTimeLayouts {
		if t, err := time.Parse(layout, v.String); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrTimestampParse, v.String)
}
