package model

import "time"

// RecentWindow is how far back a message counts as recent.
const RecentWindow = 30 * 24 * time.Hour

// Analytics is the count summary served by GET /api/analytics.
type Analytics struct {
	TotalMessages  int64     `json:"total_messages"`
	NewMessages    int64     `json:"new_messages"`
	RecentMessages int64     `json:"recent_messages"`
	Timestamp      time.Time `json:"timestamp"`
}
