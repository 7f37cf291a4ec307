package timesheethandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"horas/internal/auth"
	"horas/internal/domain/directory"
	"horas/internal/domain/timesheet"
	"horas/internal/transport/http/middleware"
)

const testSecret = "entries-handler-secret"

// fakeDB serves one canned entry for lookups and counts write statements.
type fakeDB struct {
	entry     timesheet.Entry
	execCalls int
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return emptyRows{}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return entryRow{entry: f.entry}
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execCalls++
	return pgconn.CommandTag{}, nil
}

type entryRow struct{ entry timesheet.Entry }

func (r entryRow) Scan(dest ...any) error {
	values := []any{
		r.entry.ID, r.entry.UserID, r.entry.ProjectID, r.entry.Date, r.entry.Hours,
		r.entry.Billable, r.entry.Overtime, r.entry.CategoryID, r.entry.ActivityID,
		r.entry.Notes, r.entry.CreatedAt,
	}
	for i, d := range dest {
		if i >= len(values) {
			break
		}
		switch ptr := d.(type) {
		case *string:
			*ptr = values[i].(string)
		case *time.Time:
			*ptr = values[i].(time.Time)
		case *float64:
			*ptr = values[i].(float64)
		case *bool:
			*ptr = values[i].(bool)
		}
	}
	return nil
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func newEntriesRouter(db *fakeDB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Auth(testSecret))
	NewHandler(timesheet.NewService(timesheet.NewStore(db))).RegisterRoutes(r)
	return r
}

func bearerFor(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: userID, Email: userID + "@example.com", Role: role}, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func ownedEntry() timesheet.Entry {
	return timesheet.Entry{
		ID:        "entry-1",
		UserID:    "owner-1",
		ProjectID: "project-1",
		Date:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Hours:     4,
		Billable:  true,
		CreatedAt: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestMemberCannotDeleteAnotherUsersEntry(t *testing.T) {
	db := &fakeDB{entry: ownedEntry()}
	router := newEntriesRouter(db)

	req := httptest.NewRequest(http.MethodDelete, "/entries/entry-1", nil)
	req.Header.Set("Authorization", bearerFor(t, "intruder-2", directory.RoleMember))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign entry, got %d", rec.Code)
	}
	if db.execCalls != 0 {
		t.Fatalf("expected no delete statement, got %d", db.execCalls)
	}
}

func TestMemberCannotUpdateAnotherUsersEntry(t *testing.T) {
	db := &fakeDB{entry: ownedEntry()}
	router := newEntriesRouter(db)

	body := strings.NewReader(`{"projectId":"project-1","date":"2025-03-11","hours":2,"billable":true,"overtime":false}`)
	req := httptest.NewRequest(http.MethodPut, "/entries/entry-1", body)
	req.Header.Set("Authorization", bearerFor(t, "intruder-2", directory.RoleMember))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign entry, got %d", rec.Code)
	}
	if db.execCalls != 0 {
		t.Fatalf("expected no update statement, got %d", db.execCalls)
	}
}

func TestMemberDeletesOwnEntry(t *testing.T) {
	db := &fakeDB{entry: ownedEntry()}
	router := newEntriesRouter(db)

	req := httptest.NewRequest(http.MethodDelete, "/entries/entry-1", nil)
	req.Header.Set("Authorization", bearerFor(t, "owner-1", directory.RoleMember))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected owner delete to pass, got %d", rec.Code)
	}
	if db.execCalls != 1 {
		t.Fatalf("expected one delete statement, got %d", db.execCalls)
	}
}

func TestManagerUpdatesForeignEntryWithoutLookup(t *testing.T) {
	db := &fakeDB{entry: ownedEntry()}
	router := newEntriesRouter(db)

	body := strings.NewReader(`{"userId":"owner-1","projectId":"project-1","date":"2025-03-11","hours":2,"billable":true,"overtime":false}`)
	req := httptest.NewRequest(http.MethodPut, "/entries/entry-1", body)
	req.Header.Set("Authorization", bearerFor(t, "manager-1", directory.RoleManager))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected manager update to pass, got %d", rec.Code)
	}
	if db.execCalls != 1 {
		t.Fatalf("expected one update statement, got %d", db.execCalls)
	}
}
