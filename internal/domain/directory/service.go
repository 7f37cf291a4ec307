package directory

import (
	"context"
	"errors"
	"strings"

	"horas/internal/auth"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListUsers(ctx context.Context, activeOnly bool) ([]User, error) {
	return s.store.ListUsers(ctx, activeOnly)
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, passwordHash, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		return User{}, errors.New("invalid credentials")
	}
	if !user.Active {
		return User{}, errors.New("account disabled")
	}
	if err := auth.CheckPassword(passwordHash, password); err != nil {
		return User{}, errors.New("invalid credentials")
	}
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, payload User, password string) (string, error) {
	if strings.TrimSpace(payload.Email) == "" {
		return "", errors.New("email is required")
	}
	if !validRole(payload.Role) {
		return "", errors.New("unknown role")
	}
	if len(password) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	return s.store.CreateUser(ctx, payload, hash)
}

func (s *Service) UpdateUser(ctx context.Context, payload User) error {
	if !validRole(payload.Role) {
		return errors.New("unknown role")
	}
	return s.store.UpdateUser(ctx, payload)
}

func (s *Service) ListTeams(ctx context.Context) ([]Team, error) {
	return s.store.ListTeams(ctx)
}

func (s *Service) CreateTeam(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("team name is required")
	}
	return s.store.CreateTeam(ctx, strings.TrimSpace(name))
}

func (s *Service) ListRates(ctx context.Context) ([]Rate, error) {
	return s.store.ListRates(ctx)
}

func (s *Service) CreateRate(ctx context.Context, payload Rate) (string, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return "", errors.New("rate name is required")
	}
	if payload.RateCost < 0 {
		return "", errors.New("rate cost must not be negative")
	}
	return s.store.CreateRate(ctx, payload)
}

func validRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}
