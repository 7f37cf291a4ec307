package project

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidDateRange = errors.New("project end date precedes start date")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, status string) ([]Project, error) {
	return s.store.List(ctx, status)
}

func (s *Service) ByID(ctx context.Context, projectID string) (Project, error) {
	return s.store.ByID(ctx, projectID)
}

func (s *Service) Create(ctx context.Context, payload Project) (string, error) {
	if err := validate(payload); err != nil {
		return "", err
	}
	if payload.Status == "" {
		payload.Status = StatusActive
	}
	return s.store.Create(ctx, payload)
}

func (s *Service) Update(ctx context.Context, payload Project) error {
	if err := validate(payload); err != nil {
		return err
	}
	return s.store.Update(ctx, payload)
}

func (s *Service) ListClients(ctx context.Context) ([]Client, error) {
	return s.store.ListClients(ctx)
}

func (s *Service) CreateClient(ctx context.Context, payload Client) (string, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return "", errors.New("client name is required")
	}
	return s.store.CreateClient(ctx, payload)
}

func validate(payload Project) error {
	if strings.TrimSpace(payload.Name) == "" {
		return errors.New("project name is required")
	}
	if payload.EndDate.Before(payload.StartDate) {
		return ErrInvalidDateRange
	}
	if payload.TotalHours < 0 || payload.TotalCost < 0 {
		return errors.New("budget totals must not be negative")
	}
	return nil
}
