package model

import (
	"fmt"
	"time"
)

// Contest is one entry of the aggregation feed. Field names follow the wire
// format served by /api/v1/contests; contests are never persisted.
type Contest struct {
	Platform        string    `json:"platform"`
	ContestName     string    `json:"contestName"`
	ContestLink     string    `json:"contestLink"`
	StartTime       time.Time `json:"startTime"`
	ContestDuration string    `json:"contestDuration"`
}

// ContestsResponse is the body of the aggregation endpoint.
type ContestsResponse struct {
	Contests []Contest `json:"contests"`
}

// FormatDuration renders a contest length for the ContestDuration field,
// e.g. "2h 30m" or "24h".
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
