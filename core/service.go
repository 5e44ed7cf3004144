package core

import (
	"context"
	"fmt"
	"log"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry starts services in registration order and stops them in reverse
type Registry struct {
	services []Interface
	started  int
}

// NewRegistry creates a new core registry
func NewRegistry() *Registry {
	return &Registry{
		services: make([]Interface, 0),
	}
}

// Register adds a service to the registry
func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// StartAll starts all registered services. If one fails, the services
// already started are stopped again before the error is returned.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, service := range sr.services {
		if err := service.Start(ctx); err != nil {
			log.Printf("Core: Failed to start service %d (%T): %v", i, service, err)
			sr.stopStarted()
			return fmt.Errorf("start %T: %w", service, err)
		}
		sr.started = i + 1
	}
	return nil
}

// StopAll stops every started service in reverse order
func (sr *Registry) StopAll() {
	sr.stopStarted()
}

func (sr *Registry) stopStarted() {
	for i := sr.started - 1; i >= 0; i-- {
		sr.services[i].Stop()
	}
	sr.started = 0
}
