package absencehandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"horas/internal/auth"
	"horas/internal/domain/absence"
	"horas/internal/domain/directory"
	"horas/internal/transport/http/middleware"
)

const testSecret = "absences-handler-secret"

// recordingDB captures the args of the last SELECT and returns no rows.
type recordingDB struct {
	lastQueryArgs []any
}

func (f *recordingDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.lastQueryArgs = args
	return emptyRows{}, nil
}

func (f *recordingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (f *recordingDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
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

func newAbsencesRouter(db *recordingDB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Auth(testSecret))
	NewHandler(absence.NewService(absence.NewStore(db))).RegisterRoutes(r)
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

func TestMemberListIsScopedToOwnAbsences(t *testing.T) {
	db := &recordingDB{}
	router := newAbsencesRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/absences?userId=someone-else", nil)
	req.Header.Set("Authorization", bearerFor(t, "member-1", directory.RoleMember))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected member list to pass, got %d", rec.Code)
	}
	if len(db.lastQueryArgs) == 0 {
		t.Fatal("expected the list query to filter by user")
	}
	if got := db.lastQueryArgs[0]; got != "member-1" {
		t.Fatalf("expected list scoped to member-1, got %v", got)
	}
}

func TestManagerListKeepsRequestedUserFilter(t *testing.T) {
	db := &recordingDB{}
	router := newAbsencesRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/absences?userId=member-9", nil)
	req.Header.Set("Authorization", bearerFor(t, "manager-1", directory.RoleManager))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected manager list to pass, got %d", rec.Code)
	}
	if len(db.lastQueryArgs) == 0 || db.lastQueryArgs[0] != "member-9" {
		t.Fatalf("expected manager filter preserved, got %v", db.lastQueryArgs)
	}
}
