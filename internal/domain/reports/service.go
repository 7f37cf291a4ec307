package reports

import (
	"context"
	"fmt"
	"time"

	"horas/internal/domain/metrics"
)

// Mailer sends plain-text mail; the platform email package provides the
// SMTP implementation and a noop fallback.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Service struct {
	store  *Store
	mailer Mailer
	from   string
}

func NewService(store *Store, mailer Mailer, from string) *Service {
	return &Service{store: store, mailer: mailer, from: from}
}

// ProjectPerformance recomputes one project's cost/schedule row from a
// fresh snapshot. asOf zero means now.
func (s *Service) ProjectPerformance(ctx context.Context, projectID string, asOf time.Time) (metrics.ProjectPerformance, []metrics.Diagnostic, error) {
	project, err := s.store.Project(ctx, projectID)
	if err != nil {
		return metrics.ProjectPerformance{}, nil, fmt.Errorf("load project: %w", err)
	}
	entries, err := s.store.ProjectEntries(ctx, projectID)
	if err != nil {
		return metrics.ProjectPerformance{}, nil, fmt.Errorf("load entries: %w", err)
	}
	rates, err := s.store.RatesByUser(ctx)
	if err != nil {
		return metrics.ProjectPerformance{}, nil, fmt.Errorf("load rates: %w", err)
	}

	result, diags := metrics.ProjectMetrics(project, entries, rates, asOf)
	return result, diags, nil
}

// PortfolioPerformance computes the performance table across projects,
// optionally filtered by status.
func (s *Service) PortfolioPerformance(ctx context.Context, status string, asOf time.Time) ([]metrics.ProjectPerformance, []metrics.Diagnostic, error) {
	projects, err := s.store.Projects(ctx, status)
	if err != nil {
		return nil, nil, fmt.Errorf("load projects: %w", err)
	}
	rates, err := s.store.RatesByUser(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load rates: %w", err)
	}

	var results []metrics.ProjectPerformance
	var diags []metrics.Diagnostic
	for _, project := range projects {
		entries, err := s.store.ProjectEntries(ctx, project.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("load entries for %s: %w", project.ID, err)
		}
		result, projectDiags := metrics.ProjectMetrics(project, entries, rates, asOf)
		results = append(results, result)
		diags = append(diags, projectDiags...)
	}
	return results, diags, nil
}

// Occupancy computes the team or per-user productivity table for a period.
func (s *Service) Occupancy(ctx context.Context, period metrics.Period, groupBy metrics.GroupBy) ([]metrics.OccupancyRow, []metrics.Diagnostic, error) {
	members, memberDiags, err := s.store.ActiveMembers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load members: %w", err)
	}
	entries, err := s.store.PeriodEntries(ctx, period.Start, period.End)
	if err != nil {
		return nil, nil, fmt.Errorf("load entries: %w", err)
	}
	absences, err := s.store.PeriodAbsences(ctx, period.Start, period.End)
	if err != nil {
		return nil, nil, fmt.Errorf("load absences: %w", err)
	}
	cal, err := s.calendar(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, diags := metrics.Occupancy(cal, period, members, entries, absences, groupBy)
	return rows, append(memberDiags, diags...), nil
}

// EmailProjectReport renders the project performance summary and mails it.
func (s *Service) EmailProjectReport(ctx context.Context, projectID, to string, asOf time.Time) error {
	result, diags, err := s.ProjectPerformance(ctx, projectID, asOf)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Project report: %s", result.Name)
	body := fmt.Sprintf(
		"Project %s\n\nRealized hours: %.1f (%.1f%% of budget)\nRealized cost: %.2f (%.1f%% of budget)\nCPI: %.2f\nEstimate at completion: %.2f\nVariance at completion: %.2f\nRisk level: %s\n",
		result.Name,
		result.RealizedHours, result.HoursPercent,
		result.RealizedCost, result.CostPercent,
		result.CPI, result.EAC, result.VAC,
		result.Risk,
	)
	if len(diags) > 0 {
		body += fmt.Sprintf("\n%d data-quality issue(s) were skipped during computation.\n", len(diags))
	}

	return s.mailer.Send(ctx, s.from, to, subject, body)
}

func (s *Service) calendar(ctx context.Context) (*metrics.Calendar, error) {
	holidays, err := s.store.Holidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	return metrics.NewCalendar(holidays), nil
}
