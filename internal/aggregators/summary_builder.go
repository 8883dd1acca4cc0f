package aggregators

import (
	"errors"
	"fmt"

	"metrics-report/internal/models"
)

// ErrMissingTimestamp marks a row with neither timestamp column populated.
// Aggregation fails as a whole; no partial Summary is ever returned.
var ErrMissingTimestamp = errors.New("metric row has no timestamp")

type SummaryBuilder interface {
	// Build folds rows, in input order, into one Summary. Pure: no side
	// effects, no ordering precondition on rows beyond the positional
	// total_users contract.
	Build(rows []*models.MetricRow) (*models.Summary, error)
}

type summaryBuilder struct{}

func NewSummaryBuilder() SummaryBuilder {
	return &summaryBuilder{}
}

// Build runs a single linear pass accumulating every dimension at once.
//
// Top-user selection: per-user counts accumulate in a map, but the winner is
// chosen by scanning users in first-seen order with a strict greater-than
// comparison, so ties go to the user credited earliest in the input.
// First-seen-wins is the rule here and is asserted in tests.
//
// total_users is positional: the value of the last row as received from the
// source, regardless of timestamps. Every other "last" semantic (per-table
// last_updated) is computed by explicit comparison.
func (b *summaryBuilder) Build(rows []*models.MetricRow) (*models.Summary, error) {
	summary := models.NewEmptySummary()

	userCounts := make(map[string]int64)
	var userOrder []string

	for i, row := range rows {
		ts, ok := row.EffectiveTimestamp()
		if !ok {
			return nil, fmt.Errorf("row %d (table %q): %w", i, row.TableName, ErrMissingTimestamp)
		}

		summary.TotalUpdates += row.UpdateCount
		summary.UpdatesPerDay[ts.Format(models.DayKeyLayout)] += row.UpdateCount
		summary.UpdatesPerMonth[ts.Format(models.MonthKeyLayout)] += row.UpdateCount
		summary.UpdatesPerWeekday[ts.Weekday().String()] += row.UpdateCount

		if row.TopUser != "" {
			if _, seen := userCounts[row.TopUser]; !seen {
				userOrder = append(userOrder, row.TopUser)
			}
			userCounts[row.TopUser] += row.TopUserCount
		}

		accumulateTable(summary.TableMetrics, row)
	}

	if len(userOrder) > 0 {
		summary.TopUser, summary.TopUserCount = selectTopUser(userCounts, userOrder)
	}

	if len(rows) > 0 {
		summary.TotalUsers = rows[len(rows)-1].TotalUsers
	}

	return summary, nil
}

// accumulateTable adds the row's update count to its table bucket and keeps
// the maximum non-nil last_updated. A row without last_updated never resets
// an existing value.
func accumulateTable(tables map[string]models.TableMetrics, row *models.MetricRow) {
	bucket := tables[row.TableName]
	bucket.Count += row.UpdateCount
	if row.LastUpdated != nil && (bucket.LastUpdated == nil || row.LastUpdated.After(*bucket.LastUpdated)) {
		bucket.LastUpdated = row.LastUpdated
	}
	tables[row.TableName] = bucket
}

// selectTopUser picks the user with the highest accumulated count, first-seen
// wins on ties. userOrder must be non-empty.
func selectTopUser(counts map[string]int64, userOrder []string) (string, int64) {
	best := userOrder[0]
	for _, user := range userOrder[1:] {
		if counts[user] > counts[best] {
			best = user
		}
	}
	return best, counts[best]
}
