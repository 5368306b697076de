package models

import "time"

// AuditLogEntry represents a single HTTP mutation event
type AuditLogEntry struct {
	ID         int64
	Timestamp  time.Time
	Method     string
	Path       string
	Body       string
	StatusCode int
	UserAgent  string
	IPAddress  string
}
