package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/logentry-manager/models"
	"github.com/blogem/logentry-manager/services"
)

const (
	msgNotFound     = "Log entry not found"
	msgInvalidBody  = "Invalid request body"
	msgDeleted      = "Log entry deleted successfully"
	msgFailedList   = "Failed to fetch log entries"
	msgFailedGet    = "Failed to fetch log entry"
	msgFailedRecent = "Failed to fetch recent user name"
	msgFailedCreate = "Failed to create log entry"
	msgFailedUpdate = "Failed to update log entry"
	msgFailedDelete = "Failed to delete log entry"
)

// LogEntryController handles the log entry REST endpoints
type LogEntryController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewLogEntryController creates a new log entry controller
func NewLogEntryController(services *services.Services, logger *zap.Logger) *LogEntryController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogEntryController{
		services: services,
		logger:   logger,
	}
}

// Routes mounts the log entry endpoints on r
func (c *LogEntryController) Routes(r chi.Router) {
	r.Get("/", c.List)
	r.Post("/", c.Create)
	r.Get("/user/recent", c.Recent)
	r.Get("/{id}", c.Get)
	r.Put("/{id}", c.Update)
	r.Delete("/{id}", c.Delete)
}

// List handles GET /logentries
func (c *LogEntryController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.LogEntry.ListEntries(r.Context())
	if err != nil {
		c.handleError(w, r, err, msgFailedList)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// Recent handles GET /logentries/user/recent
func (c *LogEntryController) Recent(w http.ResponseWriter, r *http.Request) {
	name, err := c.services.LogEntry.MostRecentName(r.Context())
	if err != nil {
		c.handleError(w, r, err, msgFailedRecent)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"name": name})
}

// Get handles GET /logentries/{id}
func (c *LogEntryController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		respondError(w, http.StatusNotFound, msgNotFound)
		return
	}

	entry, err := c.services.LogEntry.GetEntry(r.Context(), id)
	if err != nil {
		c.handleError(w, r, err, msgFailedGet)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// Create handles POST /logentries
func (c *LogEntryController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.LogEntryForm
	if err := decodeBody(w, r, &form); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	entry, err := c.services.LogEntry.CreateEntry(r.Context(), &form)
	if err != nil {
		c.handleError(w, r, err, msgFailedCreate)
		return
	}

	c.requestLogger(r).Info("Log entry created", zap.Int("id", entry.ID))
	respondJSON(w, http.StatusCreated, entry)
}

// Update handles PUT /logentries/{id}
func (c *LogEntryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		respondError(w, http.StatusNotFound, msgNotFound)
		return
	}

	var patch models.LogEntryPatch
	if err := decodeBody(w, r, &patch); err != nil {
		// An unknown ID is reported as such even when the body is unreadable
		if _, getErr := c.services.LogEntry.GetEntry(r.Context(), id); getErr != nil {
			c.handleError(w, r, getErr, msgFailedUpdate)
			return
		}
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	entry, err := c.services.LogEntry.UpdateEntry(r.Context(), id, &patch)
	if err != nil {
		c.handleError(w, r, err, msgFailedUpdate)
		return
	}

	c.requestLogger(r).Info("Log entry updated", zap.Int("id", id), zap.Int("fields", len(patch.Fields())))
	respondJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /logentries/{id}
func (c *LogEntryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(r)
	if !ok {
		respondError(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := c.services.LogEntry.DeleteEntry(r.Context(), id); err != nil {
		c.handleError(w, r, err, msgFailedDelete)
		return
	}

	c.requestLogger(r).Info("Log entry deleted", zap.Int("id", id))
	respondJSON(w, http.StatusOK, map[string]string{"message": msgDeleted})
}

// handleError maps service errors to status codes. Storage details are
// logged and never written to the client.
func (c *LogEntryController) handleError(w http.ResponseWriter, r *http.Request, err error, failureMessage string) {
	var validationErrs models.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   strings.Join(validationErrs.GetMessages(), " "),
			"details": validationErrs,
		})
	case errors.Is(err, models.ErrNotFound):
		respondError(w, http.StatusNotFound, msgNotFound)
	default:
		c.requestLogger(r).Error(failureMessage,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		respondError(w, http.StatusInternalServerError, failureMessage)
	}
}

func (c *LogEntryController) requestLogger(r *http.Request) *zap.Logger {
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		return c.logger.With(zap.String("request_id", reqID))
	}
	return c.logger
}

var errTrailingData = errors.New("request body must contain a single JSON value")

// entryID parses the {id} URL parameter
func entryID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeBody decodes a single JSON value into dst. An empty body leaves dst at its zero value.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
