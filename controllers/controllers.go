package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/logentry-manager/services"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// respondJSON writes payload as JSON with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondError writes {"error": message}
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	LogEntry *LogEntryController
	System   *SystemController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *zap.Logger) *Controllers {
	return &Controllers{
		LogEntry: NewLogEntryController(services, logger),
		System:   NewSystemController(services),
	}
}
