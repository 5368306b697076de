package services

import (
	"context"
	"fmt"

	"github.com/blogem/logentry-manager/models"
	"github.com/blogem/logentry-manager/repositories"
)

// LogEntryService interface defines log entry business logic
type LogEntryService interface {
	ListEntries(ctx context.Context) ([]models.LogEntry, error)
	GetEntry(ctx context.Context, id int) (*models.LogEntry, error)
	CreateEntry(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error)
	UpdateEntry(ctx context.Context, id int, patch *models.LogEntryPatch) (*models.LogEntry, error)
	DeleteEntry(ctx context.Context, id int) error
	MostRecentName(ctx context.Context) (string, error)
	CountEntries(ctx context.Context) (int, error)
}

// logEntryService implements LogEntryService interface
type logEntryService struct {
	repo repositories.LogEntryRepository
}

// NewLogEntryService creates a new log entry service
func NewLogEntryService(repo repositories.LogEntryRepository) LogEntryService {
	return &logEntryService{repo: repo}
}

// ListEntries retrieves all log entries, newest first
func (s *logEntryService) ListEntries(ctx context.Context) ([]models.LogEntry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	return entries, nil
}

// GetEntry retrieves a log entry by ID
func (s *logEntryService) GetEntry(ctx context.Context, id int) (*models.LogEntry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid log entry ID %d: %w", id, models.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

// CreateEntry validates the form and stores a new log entry
func (s *logEntryService) CreateEntry(ctx context.Context, form *models.LogEntryForm) (*models.LogEntry, error) {
	if errs := validateStruct(form); errs.HasErrors() {
		return nil, errs
	}

	entry, err := s.repo.Create(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to create log entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry applies a partial update to an existing log entry.
// An unknown ID is reported as not found regardless of the payload.
func (s *logEntryService) UpdateEntry(ctx context.Context, id int, patch *models.LogEntryPatch) (*models.LogEntry, error) {
	if _, err := s.GetEntry(ctx, id); err != nil {
		return nil, err
	}

	if errs := patch.Validate(); errs.HasErrors() {
		return nil, errs
	}

	entry, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update log entry: %w", err)
	}

	return entry, nil
}

// DeleteEntry permanently deletes a log entry
func (s *logEntryService) DeleteEntry(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("invalid log entry ID %d: %w", id, models.ErrNotFound)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete log entry: %w", err)
	}

	return nil
}

// MostRecentName returns the name of the latest entry for pre-filling a new entry form
func (s *logEntryService) MostRecentName(ctx context.Context) (string, error) {
	name, err := s.repo.MostRecentName(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get most recent name: %w", err)
	}
	return name, nil
}

// CountEntries returns the total number of log entries
func (s *logEntryService) CountEntries(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
