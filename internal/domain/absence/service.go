package absence

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidDateRange = errors.New("absence end date precedes start date")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Absence, error) {
	return s.store.List(ctx, filter)
}

// Create rejects inverted intervals at the boundary so they never reach
// the aggregation layer.
func (s *Service) Create(ctx context.Context, payload Absence) (string, error) {
	if strings.TrimSpace(payload.UserID) == "" {
		return "", errors.New("user is required")
	}
	if strings.TrimSpace(payload.Type) == "" {
		return "", errors.New("absence type is required")
	}
	if payload.EndDate.Before(payload.StartDate) {
		return "", ErrInvalidDateRange
	}
	return s.store.Create(ctx, payload)
}

func (s *Service) Delete(ctx context.Context, absenceID string) error {
	return s.store.Delete(ctx, absenceID)
}

func (s *Service) Holidays(ctx context.Context) ([]time.Time, error) {
	return s.store.ListHolidays(ctx)
}

func (s *Service) CreateHoliday(ctx context.Context, day time.Time, name string) (string, error) {
	if day.IsZero() {
		return "", errors.New("holiday date is required")
	}
	return s.store.CreateHoliday(ctx, day, name)
}

func (s *Service) DeleteHoliday(ctx context.Context, holidayID string) error {
	return s.store.DeleteHoliday(ctx, holidayID)
}
