package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	LogEntry LogEntryRepository
	Audit    AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		LogEntry: NewLogEntryRepository(db),
		Audit:    NewAuditRepository(db),
	}
}
