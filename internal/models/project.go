package models

// Project is one catalog entry: a project identifier and the MySQL table its
// metric rows live in.
type Project struct {
	ID           string
	MetricsTable string
}
