package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"metrics-report/internal/shared/sqldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRowScanner implements sqldb.RowScanner for tests. nil cell values scan
// as NULL.
type fakeRowScanner struct {
	rows    [][]any
	i       int
	iterErr error
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return fmt.Errorf("dest length %d, row length %d", len(dest), len(row))
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *sql.NullString:
			if row[i] == nil {
				*d = sql.NullString{}
				continue
			}
			v, ok := row[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = sql.NullString{String: v, Valid: true}
		case *sql.NullInt64:
			if row[i] == nil {
				*d = sql.NullInt64{}
				continue
			}
			v, ok := row[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = sql.NullInt64{Int64: v, Valid: true}
		case *string:
			v, ok := row[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		default:
			return fmt.Errorf("unsupported dest type %T", dest[i])
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error   { return f.iterErr }
func (f *fakeRowScanner) Close() error { return nil }

// fakeDB implements sqldb.DB.
type fakeDB struct {
	scanner   sqldb.RowScanner
	queryErr  error
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (sqldb.RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.scanner, nil
}

func TestMetricRowStore_ListRows_ScansAllColumns(t *testing.T) {
	t.Parallel()

	db := &fakeDB{scanner: &fakeRowScanner{rows: [][]any{
		{"2024-01-01 10:00:00", nil, int64(5), "orders", "u1", int64(3), int64(100), "2024-01-01 10:05:00"},
		{nil, "2024-01-02T08:00:00Z", int64(2), "users", nil, nil, int64(102), nil},
	}}}
	store := NewMetricRowStore(db)

	rows, err := store.ListRows(context.Background(), "update_metrics")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Contains(t, db.lastQuery, "FROM `update_metrics`")

	first := rows[0]
	require.NotNil(t, first.Timestamp)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), *first.Timestamp)
	assert.Nil(t, first.DetectedTimestamp)
	assert.Equal(t, int64(5), first.UpdateCount)
	assert.Equal(t, "orders", first.TableName)
	assert.Equal(t, "u1", first.TopUser)
	assert.Equal(t, int64(3), first.TopUserCount)
	assert.Equal(t, int64(100), first.TotalUsers)
	require.NotNil(t, first.LastUpdated)

	second := rows[1]
	assert.Nil(t, second.Timestamp)
	require.NotNil(t, second.DetectedTimestamp)
	assert.Equal(t, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), *second.DetectedTimestamp)
	assert.Equal(t, "", second.TopUser)
	assert.Nil(t, second.LastUpdated)
}

func TestMetricRowStore_ListRows_TimestampParseError(t *testing.T) {
	t.Parallel()

	db := &fakeDB{scanner: &fakeRowScanner{rows: [][]any{
		{"not-a-time", nil, int64(5), "orders", nil, nil, int64(100), nil},
	}}}
	store := NewMetricRowStore(db)

	rows, err := store.ListRows(context.Background(), "update_metrics")
	assert.Nil(t, rows, "no partial row set on parse failure")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimestampParse)
	assert.Contains(t, err.Error(), "not-a-time")
}

func TestMetricRowStore_ListRows_QueryError(t *testing.T) {
	t.Parallel()

	db := &fakeDB{queryErr: errors.New("connection refused")}
	store := NewMetricRowStore(db)

	rows, err := store.ListRows(context.Background(), "update_metrics")
	assert.Nil(t, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query metric rows")
}

func TestMetricRowStore_ListRowsByDate_FiltersByDay(t *testing.T) {
	t.Parallel()

	db := &fakeDB{scanner: &fakeRowScanner{}}
	store := NewMetricRowStore(db)

	day := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	rows, err := store.ListRowsByDate(context.Background(), "update_metrics", day)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.Contains(t, db.lastQuery, "DATE(COALESCE(`timestamp`, detected_timestamp)) = ?")
	require.Len(t, db.lastArgs, 1)
	assert.Equal(t, "2024-03-15", db.lastArgs[0])
}

func TestMetricRowStore_ListTableNames(t *testing.T) {
	t.Parallel()

	db := &fakeDB{scanner: &fakeRowScanner{rows: [][]any{{"orders"}, {"users"}}}}
	store := NewMetricRowStore(db)

	names, err := store.ListTableNames(context.Background(), "update_metrics")
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "users"}, names)
	assert.Contains(t, db.lastQuery, "SELECT DISTINCT table_name")
}

func TestParseRowTime_Layouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2024-01-02 15:04:05", time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"2024-01-02T15:04:05Z", time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"2024-01-02T15:04:05", time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := parseRowTime(sql.NullString{String: tt.raw, Valid: true})
		require.NoError(t, err, "raw=%q", tt.raw)
		require.NotNil(t, got)
		assert.True(t, tt.want.Equal(*got), "raw=%q", tt.raw)
	}

	// NULL and empty map to nil without error
	got, err := parseRowTime(sql.NullString{})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseRowTime(sql.NullString{String: "", Valid: true})
	require.NoError(t, err)
	assert.Nil(t, got)
}
