package models

import (
	"strings"
	"time"
)

// LogEntry represents a dated record kept by the user
type LogEntry struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Date        string    `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// LogEntryForm represents the payload for creating a log entry.
// Values are stored as submitted; a whitespace-only value counts as missing.
type LogEntryForm struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Date        string `json:"date" validate:"required,notblank"`
	Location    string `json:"location" validate:"required,notblank"`
}

// LogEntryPatch represents a partial update. A nil field is left unchanged.
type LogEntryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// FieldUpdate is a single column assignment derived from a patch
type FieldUpdate struct {
	Column string
	Value  string
}

// Fields returns the present fields as column assignments, in column order
func (p *LogEntryPatch) Fields() []FieldUpdate {
	candidates := []struct {
		column string
		value  *string
	}{
		{"name", p.Name},
		{"description", p.Description},
		{"date", p.Date},
		{"location", p.Location},
	}

	var updates []FieldUpdate
	for _, c := range candidates {
		if c.value != nil {
			updates = append(updates, FieldUpdate{Column: c.column, Value: *c.value})
		}
	}
	return updates
}

// IsEmpty reports whether the patch carries no recognized field
func (p *LogEntryPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Validate checks that the patch changes something and that no present field is blank
func (p *LogEntryPatch) Validate() ValidationErrors {
	fields := p.Fields()
	if len(fields) == 0 {
		return ValidationErrors{{Message: "No fields to update"}}
	}

	var errs ValidationErrors
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			errs = append(errs, ValidationError{
				Field:   f.Column,
				Message: "The " + f.Column + " field must not be empty.",
			})
		}
	}
	return errs
}
