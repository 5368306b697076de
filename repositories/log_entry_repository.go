package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/logentry-manager/models"
)

// LogEntryRepository interface defines log entry database operations
type LogEntryRepository interface {
	GetAll(ctx context.Context) ([]models.LogEntry, error)
	GetByID(ctx context.Context, id int) (*models.LogEntry, error)
	Create(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error)
	Update(ctx context.Context, id int, patch *models.LogEntryPatch) (*models.LogEntry, error)
	Delete(ctx context.Context, id int) error
	MostRecentName(ctx context.Context) (string, error)
	Count(ctx context.Context) (int, error)
}

// logEntryRepository implements LogEntryRepository interface
type logEntryRepository struct {
	db *sql.DB
}

// NewLogEntryRepository creates a new log entry repository
func NewLogEntryRepository(db *sql.DB) LogEntryRepository {
	return &logEntryRepository{db: db}
}

const selectLogEntry = `
	SELECT id, name, description, date, location, created_at
	FROM log_entries
`

// rowQuerier is satisfied by both *sql.DB and *sql.Tx
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLogEntry(row rowScanner) (*models.LogEntry, error) {
	var entry models.LogEntry
	err := row.Scan(
		&entry.ID,
		&entry.Name,
		&entry.Description,
		&entry.Date,
		&entry.Location,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func storageError(op string, err error) error {
	return &models.StorageError{Op: op, Err: err}
}

func notFound(id int) error {
	return fmt.Errorf("log entry with ID %d: %w", id, models.ErrNotFound)
}

// GetAll retrieves all log entries, newest first
func (r *logEntryRepository) GetAll(ctx context.Context) ([]models.LogEntry, error) {
	query := selectLogEntry + `ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("query log entries", err)
	}
	defer rows.Close()

	entries := []models.LogEntry{}
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, storageError("scan log entry", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, storageError("iterate log entries", err)
	}

	return entries, nil
}

// GetByID retrieves a log entry by ID
func (r *logEntryRepository) GetByID(ctx context.Context, id int) (*models.LogEntry, error) {
	return getLogEntry(ctx, r.db, id)
}

func getLogEntry(ctx context.Context, q rowQuerier, id int) (*models.LogEntry, error) {
	entry, err := scanLogEntry(q.QueryRowContext(ctx, selectLogEntry+`WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, storageError("get log entry", err)
	}
	return entry, nil
}

// Create inserts a new log entry and returns the stored row
func (r *logEntryRepository) Create(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error) {
	if form.Name == "" || form.Description == "" || form.Date == "" || form.Location == "" {
		return nil, models.ValidationErrors{{Message: "All fields are required"}}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageError("begin create", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO log_entries (name, description, date, location)
		VALUES (?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		form.Name,
		form.Description,
		form.Date,
		form.Location,
	)
	if err != nil {
		return nil, storageError("insert log entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storageError("get inserted ID", err)
	}

	entry, err := getLogEntry(ctx, tx, int(id))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, storageError("commit create", err)
	}

	return entry, nil
}

// Update applies the present fields of patch to an existing entry.
// A missing entry is reported before an empty patch.
func (r *logEntryRepository) Update(ctx context.Context, id int, patch *models.LogEntryPatch) (*models.LogEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageError("begin update", err)
	}
	defer tx.Rollback()

	if _, err := getLogEntry(ctx, tx, id); err != nil {
		return nil, err
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, models.ValidationErrors{{Message: "No fields to update"}}
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		assignments = append(assignments, f.Column+" = ?")
		args = append(args, f.Value)
	}
	args = append(args, id)

	query := `UPDATE log_entries SET ` + strings.Join(assignments, ", ") + ` WHERE id = ?`
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, storageError("update log entry", err)
	}

	entry, err := getLogEntry(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, storageError("commit update", err)
	}

	return entry, nil
}

// Delete permanently removes a log entry by ID
func (r *logEntryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM log_entries WHERE id = ?`, id)
	if err != nil {
		return storageError("delete log entry", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("get rows affected", err)
	}

	if rowsAffected == 0 {
		return notFound(id)
	}

	return nil
}

// MostRecentName returns the name of the latest created entry, or "" when there is none
func (r *logEntryRepository) MostRecentName(ctx context.Context) (string, error) {
	query := `SELECT name FROM log_entries ORDER BY created_at DESC, id DESC LIMIT 1`

	var name string
	err := r.db.QueryRowContext(ctx, query).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", storageError("query most recent name", err)
	}

	return name, nil
}

// Count returns the total number of log entries
func (r *logEntryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM log_entries`).Scan(&count); err != nil {
		return 0, storageError("count log entries", err)
	}
	return count, nil
}
