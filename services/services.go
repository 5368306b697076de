package services

import (
	"github.com/blogem/logentry-manager/repositories"
)

// Services holds all service instances
type Services struct {
	LogEntry LogEntryService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		LogEntry: NewLogEntryService(repos.LogEntry),
	}
}
