// Package models defines the records kept in the history database
package models

import "time"

// Session is one run of the countdown: from a start until the timer was
// stopped, reset or finished.
type Session struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	// Configured is the countdown duration in seconds at the time of the run
	Configured int `json:"configured"`
	// Elapsed is the number of seconds counted down during the run
	Elapsed   int  `json:"elapsed"`
	Completed bool `json:"completed"`
}
