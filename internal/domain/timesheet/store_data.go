package timesheet

import (
	"context"
	"strconv"

	"horas/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context, filter Filter, limit, offset int) ([]Entry, error) {
	query := `
    SELECT id, user_id, project_id, entry_date, hours, billable, overtime,
           COALESCE(category_id, ''), COALESCE(activity_id, ''), COALESCE(notes, ''), created_at
    FROM time_entries
    WHERE 1=1
  `
	args := []any{}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += " AND user_id = $" + strconv.Itoa(len(args))
	}
	if filter.ProjectID != "" {
		args = append(args, filter.ProjectID)
		query += " AND project_id = $" + strconv.Itoa(len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += " AND entry_date >= $" + strconv.Itoa(len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += " AND entry_date <= $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY entry_date DESC, created_at DESC"
	query += " LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.Date, &e.Hours, &e.Billable, &e.Overtime, &e.CategoryID, &e.ActivityID, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) ByID(ctx context.Context, entryID string) (Entry, error) {
	var e Entry
	err := s.DB.QueryRow(ctx, `
    SELECT id, user_id, project_id, entry_date, hours, billable, overtime,
           COALESCE(category_id, ''), COALESCE(activity_id, ''), COALESCE(notes, ''), created_at
    FROM time_entries
    WHERE id = $1
  `, entryID).Scan(&e.ID, &e.UserID, &e.ProjectID, &e.Date, &e.Hours, &e.Billable, &e.Overtime, &e.CategoryID, &e.ActivityID, &e.Notes, &e.CreatedAt)
	return e, err
}

func (s *Store) Create(ctx context.Context, entry Entry) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO time_entries (user_id, project_id, entry_date, hours, billable, overtime, category_id, activity_id, notes)
    VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''),NULLIF($8,''),NULLIF($9,''))
    RETURNING id
  `, entry.UserID, entry.ProjectID, entry.Date, entry.Hours, entry.Billable, entry.Overtime, entry.CategoryID, entry.ActivityID, entry.Notes).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, entry Entry) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE time_entries
    SET entry_date = $2, hours = $3, billable = $4, overtime = $5,
        category_id = NULLIF($6,''), activity_id = NULLIF($7,''), notes = NULLIF($8,'')
    WHERE id = $1
  `, entry.ID, entry.Date, entry.Hours, entry.Billable, entry.Overtime, entry.CategoryID, entry.ActivityID, entry.Notes)
	return err
}

func (s *Store) Delete(ctx context.Context, entryID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM time_entries WHERE id = $1", entryID)
	return err
}
