package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"horas/internal/auth"
)

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			t.Fatal("expected user in context")
		}
		if user.Role == "" {
			t.Fatal("expected role in context")
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthAttachesIdentity(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u1", Email: "ana@example.com", Role: "manager"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	handler := Auth(secret)(protectedHandler(t))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u1", Role: "member"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Auth(secret)(RequireRole("admin", "manager")(next))

	// No token.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/projects", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// Wrong role.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for member role, got %d", rec.Code)
	}
}
