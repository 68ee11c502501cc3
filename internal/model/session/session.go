package session

import "time"

// Session captures the most recent topic a user asked about.
type Session struct {
	UserID   int64     `json:"userId"`
	Topic    string    `json:"topic"`
	LastUsed time.Time `json:"lastUsed"`
}
