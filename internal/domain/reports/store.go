package reports

import (
	"context"
	"time"

	"horas/internal/domain/directory"
	"horas/internal/domain/metrics"
	"horas/internal/platform/querier"
)

// Store loads the read-only snapshots the metrics engine computes over.
// Every report request reloads from source; nothing is cached.
type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ProjectEntries(ctx context.Context, projectID string) ([]metrics.TimeEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, user_id, project_id, entry_date, hours, billable, overtime
    FROM time_entries
    WHERE project_id = $1
  `, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (s *Store) PeriodEntries(ctx context.Context, start, end time.Time) ([]metrics.TimeEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, user_id, project_id, entry_date, hours, billable, overtime
    FROM time_entries
    WHERE entry_date BETWEEN $1 AND $2
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (s *Store) PeriodAbsences(ctx context.Context, start, end time.Time) ([]metrics.Absence, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, user_id, start_date, end_date
    FROM absences
    WHERE start_date <= $2 AND end_date >= $1
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []metrics.Absence
	for rows.Next() {
		var a metrics.Absence
		if err := rows.Scan(&a.ID, &a.UserID, &a.Start, &a.End); err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

// ActiveMembers maps active users into engine members. Rows whose stored
// membership column cannot be decoded keep an empty team list and surface
// as diagnostics rather than failing the whole report.
func (s *Store) ActiveMembers(ctx context.Context) ([]metrics.Member, []metrics.Diagnostic, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, first_name, last_name, memberships
    FROM users
    WHERE active
  `)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var members []metrics.Member
	var diags []metrics.Diagnostic
	for rows.Next() {
		var id, firstName, lastName string
		var rawMemberships []byte
		if err := rows.Scan(&id, &firstName, &lastName, &rawMemberships); err != nil {
			return nil, nil, err
		}

		member := metrics.Member{UserID: id, Name: joinName(firstName, lastName)}
		teams, err := directory.ParseMemberships(rawMemberships)
		if err != nil {
			diags = append(diags, metrics.Diagnostic{
				Kind:   metrics.DiagBadMembership,
				Row:    id,
				Detail: err.Error(),
			})
		} else {
			member.Teams = teams
		}
		members = append(members, member)
	}
	return members, diags, rows.Err()
}

func (s *Store) RatesByUser(ctx context.Context) (map[string]float64, error) {
	return directory.NewStore(s.DB).RatesByUser(ctx)
}

func (s *Store) Holidays(ctx context.Context) ([]time.Time, error) {
	rows, err := s.DB.Query(ctx, "SELECT holiday_date FROM holidays")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *Store) Project(ctx context.Context, projectID string) (metrics.Project, error) {
	var p metrics.Project
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, start_date, end_date, total_hours, total_cost, migrated_hours, migrated_cost
    FROM projects
    WHERE id = $1
  `, projectID).Scan(&p.ID, &p.Name, &p.Start, &p.End, &p.TotalHours, &p.TotalCost, &p.MigratedHours, &p.MigratedCost)
	return p, err
}

func (s *Store) Projects(ctx context.Context, status string) ([]metrics.Project, error) {
	query := `
    SELECT id, name, start_date, end_date, total_hours, total_cost, migrated_hours, migrated_cost
    FROM projects
  `
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY name"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []metrics.Project
	for rows.Next() {
		var p metrics.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Start, &p.End, &p.TotalHours, &p.TotalCost, &p.MigratedHours, &p.MigratedCost); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

type entryRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows entryRows) ([]metrics.TimeEntry, error) {
	var entries []metrics.TimeEntry
	for rows.Next() {
		var e metrics.TimeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.Date, &e.Hours, &e.Billable, &e.Overtime); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func joinName(firstName, lastName string) string {
	if firstName == "" {
		return lastName
	}
	if lastName == "" {
		return firstName
	}
	return firstName + " " + lastName
}
