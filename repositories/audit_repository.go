package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/blogem/logentry-manager/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, method, path, body, status_code, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		query,
		entry.Timestamp,
		entry.Method,
		entry.Path,
		entry.Body,
		entry.StatusCode,
		entry.UserAgent,
		entry.IPAddress,
	)
	if err != nil {
		return storageError("insert audit log", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageError("get inserted audit ID", err)
	}
	entry.ID = id

	return nil
}
