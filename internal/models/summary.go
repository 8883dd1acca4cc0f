package models

import "time"

// Key layouts for the time-bucketed rollups. Timestamps are formatted as
// carried, without timezone conversion.
const (
	DayKeyLayout   = "2006-01-02"
	MonthKeyLayout = "2006-01"
)

// TableMetrics is the per-table rollup: summed update count and the freshest
// non-nil last_updated value seen for that table.
type TableMetrics struct {
	Count       int64      `json:"count"`
	LastUpdated *time.Time `json:"last_updated"`
}

// Summary is the immutable result of one full aggregation pass over a row
// set. All mappings are keyed by calendar buckets derived from each row's
// effective timestamp.
//
// Example JSON:
//
//	{
//	  "total_updates": 7,
//	  "updates_per_day": {"2024-01-01": 5, "2024-01-02": 2},
//	  "updates_per_month": {"2024-01": 7},
//	  "updates_per_weekday": {"Monday": 5, "Tuesday": 2},
//	  "top_user": "u1",
//	  "top_user_count": 4,
//	  "total_users": 102,
//	  "table_wise_metrics": {
//	    "A": {"count": 7, "last_updated": "2024-01-02T00:00:00Z"}
//	  }
//	}
type Summary struct {
	TotalUpdates      int64                   `json:"total_updates"`
	UpdatesPerDay     map[string]int64        `json:"updates_per_day"`
	UpdatesPerMonth   map[string]int64        `json:"updates_per_month"`
	UpdatesPerWeekday map[string]int64        `json:"updates_per_weekday"`
	TopUser           string                  `json:"top_user,omitempty"`
	TopUserCount      int64                   `json:"top_user_count"`
	TotalUsers        int64                   `json:"total_users"`
	TableMetrics      map[string]TableMetrics `json:"table_wise_metrics"`
}

func NewEmptySummary() *Summary {
	return &Summary{
		UpdatesPerDay:     make(map[string]int64),
		UpdatesPerMonth:   make(map[string]int64),
		UpdatesPerWeekday: make(map[string]int64),
		TableMetrics:      make(map[string]TableMetrics),
	}
}

// DayReport is the single-bucket aggregate for one calendar day. It shares
// the Summary's summation semantics but carries no per-day/month/weekday
// bucketing since it covers exactly one bucket.
type DayReport struct {
	Date         string                  `json:"date"`
	TotalUpdates int64                   `json:"total_updates"`
	TopUser      string                  `json:"top_user,omitempty"`
	TopUserCount int64                   `json:"top_user_count"`
	TotalUsers   int64                   `json:"total_users"`
	TableMetrics map[string]TableMetrics `json:"table_wise_metrics"`
}

func NewEmptyDayReport(date string) *DayReport {
	return &DayReport{
		Date:         date,
		TableMetrics: make(map[string]TableMetrics),
	}
}
