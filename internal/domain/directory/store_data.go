package directory

import (
	"context"
	"fmt"

	"horas/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ListUsers(ctx context.Context, activeOnly bool) ([]User, error) {
	query := `
    SELECT id, email, first_name, last_name, role, active, COALESCE(rate_id::text, ''), memberships, created_at
    FROM users
  `
	if activeOnly {
		query += " WHERE active"
	}
	query += " ORDER BY first_name, last_name"

	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		var rawMemberships []byte
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.Active, &u.RateID, &rawMemberships, &u.CreatedAt); err != nil {
			return nil, err
		}
		teams, err := ParseMemberships(rawMemberships)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", u.ID, err)
		}
		u.Teams = teams
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) UserByEmail(ctx context.Context, email string) (User, string, error) {
	var u User
	var passwordHash string
	var rawMemberships []byte
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, first_name, last_name, role, active, COALESCE(rate_id::text, ''), memberships, password_hash, created_at
    FROM users
    WHERE lower(email) = lower($1)
  `, email).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.Active, &u.RateID, &rawMemberships, &passwordHash, &u.CreatedAt)
	if err != nil {
		return User{}, "", err
	}
	teams, err := ParseMemberships(rawMemberships)
	if err != nil {
		return User{}, "", fmt.Errorf("user %s: %w", u.ID, err)
	}
	u.Teams = teams
	return u, passwordHash, nil
}

func (s *Store) CreateUser(ctx context.Context, payload User, passwordHash string) (string, error) {
	memberships, err := EncodeMemberships(payload.Teams)
	if err != nil {
		return "", err
	}
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO users (email, first_name, last_name, role, active, rate_id, memberships, password_hash)
    VALUES ($1,$2,$3,$4,$5,NULLIF($6,'')::uuid,$7,$8)
    RETURNING id
  `, payload.Email, payload.FirstName, payload.LastName, payload.Role, payload.Active, payload.RateID, memberships, passwordHash).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateUser(ctx context.Context, payload User) error {
	memberships, err := EncodeMemberships(payload.Teams)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    UPDATE users
    SET first_name = $2, last_name = $3, role = $4, active = $5,
        rate_id = NULLIF($6,'')::uuid, memberships = $7
    WHERE id = $1
  `, payload.ID, payload.FirstName, payload.LastName, payload.Role, payload.Active, payload.RateID, memberships)
	return err
}

func (s *Store) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, active, created_at FROM teams ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Active, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *Store) CreateTeam(ctx context.Context, name string) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO teams (name, active) VALUES ($1, true) RETURNING id
  `, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListRates(ctx context.Context) ([]Rate, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, rate_cost FROM rates ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []Rate
	for rows.Next() {
		var r Rate
		if err := rows.Scan(&r.ID, &r.Name, &r.RateCost); err != nil {
			return nil, err
		}
		rates = append(rates, r)
	}
	return rates, rows.Err()
}

func (s *Store) CreateRate(ctx context.Context, payload Rate) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO rates (name, rate_cost) VALUES ($1,$2) RETURNING id
  `, payload.Name, payload.RateCost).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// RatesByUser resolves each user's assigned hourly cost. Users without an
// assigned rate are simply absent from the map; the metrics engine reports
// them per entry.
func (s *Store) RatesByUser(ctx context.Context) (map[string]float64, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT u.id, r.rate_cost
    FROM users u
    JOIN rates r ON u.rate_id = r.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rates := make(map[string]float64)
	for rows.Next() {
		var userID string
		var cost float64
		if err := rows.Scan(&userID, &cost); err != nil {
			return nil, err
		}
		rates[userID] = cost
	}
	return rates, rows.Err()
}
