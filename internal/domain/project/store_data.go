package project

import (
	"context"

	"horas/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const projectColumns = `
  id, COALESCE(client_id::text, ''), name, start_date, end_date,
  total_hours, total_cost, status, migrated_hours, migrated_cost, created_at
`

func (s *Store) List(ctx context.Context, status string) ([]Project, error) {
	query := "SELECT " + projectColumns + " FROM projects"
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY start_date DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &p.StartDate, &p.EndDate, &p.TotalHours, &p.TotalCost, &p.Status, &p.MigratedHours, &p.MigratedCost, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Store) ByID(ctx context.Context, projectID string) (Project, error) {
	var p Project
	err := s.DB.QueryRow(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = $1", projectID).
		Scan(&p.ID, &p.ClientID, &p.Name, &p.StartDate, &p.EndDate, &p.TotalHours, &p.TotalCost, &p.Status, &p.MigratedHours, &p.MigratedCost, &p.CreatedAt)
	return p, err
}

func (s *Store) Create(ctx context.Context, payload Project) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO projects (client_id, name, start_date, end_date, total_hours, total_cost, status, migrated_hours, migrated_cost)
    VALUES (NULLIF($1,'')::uuid,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, payload.ClientID, payload.Name, payload.StartDate, payload.EndDate, payload.TotalHours, payload.TotalCost, payload.Status, payload.MigratedHours, payload.MigratedCost).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, payload Project) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE projects
    SET client_id = NULLIF($2,'')::uuid, name = $3, start_date = $4, end_date = $5,
        total_hours = $6, total_cost = $7, status = $8, migrated_hours = $9, migrated_cost = $10
    WHERE id = $1
  `, payload.ID, payload.ClientID, payload.Name, payload.StartDate, payload.EndDate, payload.TotalHours, payload.TotalCost, payload.Status, payload.MigratedHours, payload.MigratedCost)
	return err
}

func (s *Store) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, COALESCE(email, ''), created_at FROM clients ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *Store) CreateClient(ctx context.Context, payload Client) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO clients (name, email) VALUES ($1, NULLIF($2,'')) RETURNING id
  `, payload.Name, payload.Email).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
