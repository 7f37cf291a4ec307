package absence

import (
	"context"
	"strconv"
	"time"

	"horas/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Absence, error) {
	query := `
    SELECT id, user_id, absence_type, start_date, end_date, COALESCE(description, ''), created_at
    FROM absences
    WHERE 1=1
  `
	args := []any{}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += " AND user_id = $1"
	}
	if !filter.From.IsZero() && !filter.To.IsZero() {
		// Any absence overlapping the window.
		query += " AND start_date <= $" + strconv.Itoa(len(args)+1) + " AND end_date >= $" + strconv.Itoa(len(args)+2)
		args = append(args, filter.To, filter.From)
	}
	query += " ORDER BY start_date DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []Absence
	for rows.Next() {
		var a Absence
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.StartDate, &a.EndDate, &a.Description, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Kind = Classify(a.Type)
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

func (s *Store) Create(ctx context.Context, payload Absence) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO absences (user_id, absence_type, start_date, end_date, description)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, payload.UserID, payload.Type, payload.StartDate, payload.EndDate, payload.Description).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Delete(ctx context.Context, absenceID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM absences WHERE id = $1", absenceID)
	return err
}

func (s *Store) ListHolidays(ctx context.Context) ([]time.Time, error) {
	rows, err := s.DB.Query(ctx, "SELECT holiday_date FROM holidays ORDER BY holiday_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		holidays = append(holidays, day)
	}
	return holidays, rows.Err()
}

func (s *Store) CreateHoliday(ctx context.Context, day time.Time, name string) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO holidays (holiday_date, name)
    VALUES ($1,$2)
    RETURNING id
  `, day, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) DeleteHoliday(ctx context.Context, holidayID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM holidays WHERE id = $1", holidayID)
	return err
}
