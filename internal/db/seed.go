package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"horas/internal/auth"
	"horas/internal/platform/config"
)

// fixedHolidays are the fixed-date Portuguese national holidays. Movable
// feasts are maintained through the holidays API.
var fixedHolidays = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 1, "Ano Novo"},
	{time.April, 25, "Dia da Liberdade"},
	{time.May, 1, "Dia do Trabalhador"},
	{time.June, 10, "Dia de Portugal"},
	{time.August, 15, "Assunção de Nossa Senhora"},
	{time.October, 5, "Implantação da República"},
	{time.November, 1, "Dia de Todos os Santos"},
	{time.December, 1, "Restauração da Independência"},
	{time.December, 8, "Imaculada Conceição"},
	{time.December, 25, "Natal"},
}

// Seed provisions the admin account, a default rate and the holiday
// calendar for the current and next year. It is idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	var admins int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE role = 'admin'").Scan(&admins); err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins == 0 {
		password := cfg.SeedAdminPassword
		if password == "" {
			password = "change-me-now"
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO users (email, first_name, last_name, role, active, memberships, password_hash)
      VALUES ($1, 'Admin', '', 'admin', true, '[]', $2)
      ON CONFLICT (email) DO NOTHING
    `, cfg.SeedAdminEmail, hash); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO rates (name, rate_cost)
    SELECT 'Standard', 35.0
    WHERE NOT EXISTS (SELECT 1 FROM rates)
  `); err != nil {
		return fmt.Errorf("seed rates: %w", err)
	}

	year := time.Now().Year()
	for _, y := range []int{year, year + 1} {
		for _, h := range fixedHolidays {
			day := time.Date(y, h.month, h.day, 0, 0, 0, 0, time.UTC)
			if _, err := pool.Exec(ctx, `
        INSERT INTO holidays (holiday_date, name)
        VALUES ($1, $2)
        ON CONFLICT (holiday_date) DO NOTHING
      `, day, h.name); err != nil {
				return fmt.Errorf("seed holidays: %w", err)
			}
		}
	}

	return nil
}
