package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"horas/internal/auth"
)

func TestRateLimitUsesUserKeyBeforeIPFallback(t *testing.T) {
	limited := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	userCtx := context.WithValue(context.Background(), ctxKeyUser, UserContext{UserID: "user-1"})

	first := httptest.NewRequest(http.MethodGet, "/api/v1/reports/occupancy", nil).WithContext(userCtx)
	first.RemoteAddr = "198.51.100.11:2222"
	firstRec := httptest.NewRecorder()
	limited.ServeHTTP(firstRec, first)
	if firstRec.Code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", firstRec.Code)
	}

	second := httptest.NewRequest(http.MethodGet, "/api/v1/reports/occupancy", nil).WithContext(userCtx)
	second.RemoteAddr = "198.51.100.12:3333"
	secondRec := httptest.NewRecorder()
	limited.ServeHTTP(secondRec, second)
	if secondRec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled by user key, got %d", secondRec.Code)
	}
}

// Mirrors the server chain: Auth must wrap the handler inside RateLimit so
// the limiter sees the identity and keys the bucket by user, not by address.
func TestRateLimitAfterAuthKeysByUserAcrossAddresses(t *testing.T) {
	const secret = "chain-order-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "user-7", Email: "u7@example.com", Role: "member"}, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	chain := Auth(secret)(RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	codes := make([]int, 0, 2)
	for _, addr := range []string{"198.51.100.21:1111", "198.51.100.22:2222"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", codes[0])
	}
	if codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected second request from another address to share the user bucket, got %d", codes[1])
	}
}

func TestRateLimitFallsBackToIP(t *testing.T) {
	limited := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	first := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	first.RemoteAddr = "203.0.113.10:4444"
	firstRec := httptest.NewRecorder()
	limited.ServeHTTP(firstRec, first)
	if firstRec.Code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", firstRec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	second.RemoteAddr = "203.0.113.10:5555"
	secondRec := httptest.NewRecorder()
	limited.ServeHTTP(secondRec, second)
	if secondRec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled by ip key, got %d", secondRec.Code)
	}
}

func TestRateLimitWindowReset(t *testing.T) {
	limited := RateLimit(1, 40*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i, want := range []int{http.StatusNoContent, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "192.0.2.20:1111"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: expected %d, got %d", i, want, rec.Code)
		}
	}

	time.Sleep(50 * time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "192.0.2.20:1111"
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected request after window reset to pass, got %d", rec.Code)
	}
}

func TestRateLimitReturnsRetryMetadata(t *testing.T) {
	limited := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req1 := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req1.RemoteAddr = "192.0.2.30:1234"
	limited.ServeHTTP(httptest.NewRecorder(), req1)

	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req2.RemoteAddr = "192.0.2.30:1234"
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req2)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected throttled response, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}
