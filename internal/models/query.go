// Package models defines the data structures shared by the query, normalization and report stages.
package models

// DateLayout is the calendar-date format used by the API and in report file names.
const DateLayout = "2006-01-02"

// QueryIdentity identifies the attorney whose notifications are requested.
type QueryIdentity struct {
	BarNumber string
	BarState  string
	PageSize  int
}

// QueryWindow is an inclusive range of disclosure dates.
type QueryWindow struct {
	Start string
	End   string
}
