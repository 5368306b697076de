package controllers

import (
	"net/http"

	"github.com/blogem/logentry-manager/services"
)

// SystemController serves the root and health endpoints
type SystemController struct {
	services *services.Services
}

// NewSystemController creates a new system controller
func NewSystemController(services *services.Services) *SystemController {
	return &SystemController{services: services}
}

// Index handles GET /
func (c *SystemController) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Log Entry Manager API!"})
}

// Health handles GET /health. It reports unhealthy when the store cannot be queried.
func (c *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	count, err := c.services.LogEntry.CountEntries(r.Context())
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unhealthy",
			"service": "logentry-manager",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "logentry-manager",
		"entries": count,
	})
}
