package service

import (
	"context"
	"fmt"

	"github.com/nspatel/eventtags/internal/domain"
	"github.com/nspatel/eventtags/internal/repo"
)

// EventTypeService implements read operations over event categories.
type EventTypeService struct {
	eventTypes repo.EventTypeRepo
}

// NewEventTypeService constructs an EventTypeService backed by the provided EventTypeRepo.
func NewEventTypeService(eventTypes repo.EventTypeRepo) *EventTypeService {
	return &EventTypeService{eventTypes: eventTypes}
}

// List returns all event types seen so far, ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EventTypeService) List(ctx context.Context) ([]domain.EventType, error) {
	types, err := s.eventTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EventTypeService.List: %w", err)
	}
	if types == nil {
		return []domain.EventType{}, nil
	}
	return types, nil
}
