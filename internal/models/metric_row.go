package models

import "time"

// MetricRow is one raw observation from a project's metrics table, describing
// a single batch of updates applied to a logical table.
//
// Rows carry two alternate timestamp columns: Timestamp is the primary one and
// DetectedTimestamp is a fallback populated by older collectors. Resolution
// order is Timestamp first, then DetectedTimestamp; a row with neither is
// malformed.
//
// TopUser is the user credited with the most updates in this row's window; an
// empty string means no user was credited and TopUserCount is meaningless.
// TotalUsers is a running snapshot whose authoritative value is the one
// carried by the last row as returned by the source, not the maximum.
type MetricRow struct {
	Timestamp         *time.Time
	DetectedTimestamp *time.Time
	UpdateCount       int64
	TableName         string
	TopUser           string
	TopUserCount      int64
	TotalUsers        int64
	LastUpdated       *time.Time
}

// EffectiveTimestamp resolves the row's timestamp, preferring the primary
// column over the detected one. Returns false when neither is set.
func (r *MetricRow) EffectiveTimestamp() (time.Time, bool) {
	if r.Timestamp != nil {
		return *r.Timestamp, true
	}
	if r.DetectedTimestamp != nil {
		return *r.DetectedTimestamp, true
	}
	return time.Time{}, false
}
