package timesheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNegativeHours = errors.New("hours must not be negative")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]Entry, error) {
	return s.store.List(ctx, filter, limit, offset)
}

func (s *Service) ByID(ctx context.Context, entryID string) (Entry, error) {
	return s.store.ByID(ctx, entryID)
}

func (s *Service) Create(ctx context.Context, payload EntryPayload) (string, error) {
	entry, err := s.fromPayload(payload)
	if err != nil {
		return "", err
	}
	return s.store.Create(ctx, entry)
}

func (s *Service) Update(ctx context.Context, entryID string, payload EntryPayload) error {
	entry, err := s.fromPayload(payload)
	if err != nil {
		return err
	}
	entry.ID = entryID
	return s.store.Update(ctx, entry)
}

func (s *Service) Delete(ctx context.Context, entryID string) error {
	return s.store.Delete(ctx, entryID)
}

func (s *Service) fromPayload(payload EntryPayload) (Entry, error) {
	if strings.TrimSpace(payload.UserID) == "" {
		return Entry{}, errors.New("user is required")
	}
	if strings.TrimSpace(payload.ProjectID) == "" {
		return Entry{}, errors.New("project is required")
	}
	if payload.Hours < 0 {
		return Entry{}, ErrNegativeHours
	}

	day, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid entry date: %w", err)
	}

	billable, err := ParseFlag(payload.Billable)
	if err != nil {
		return Entry{}, fmt.Errorf("billable: %w", err)
	}
	overtime, err := ParseFlag(payload.Overtime)
	if err != nil {
		return Entry{}, fmt.Errorf("overtime: %w", err)
	}

	return Entry{
		UserID:     payload.UserID,
		ProjectID:  payload.ProjectID,
		Date:       day,
		Hours:      payload.Hours,
		Billable:   billable,
		Overtime:   overtime,
		CategoryID: payload.CategoryID,
		ActivityID: payload.ActivityID,
		Notes:      payload.Notes,
	}, nil
}
