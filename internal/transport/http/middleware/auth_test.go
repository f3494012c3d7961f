package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrcore/internal/domain/auth"
)

func TestAuthMiddlewareAcceptsJWT(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, "hr@example.com", time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	handler := Auth(secret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if subject := GetSubject(r.Context()); subject != "hr@example.com" {
			t.Fatalf("unexpected subject: %q", subject)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected request to pass, got %d", rec.Code)
	}
}

func TestAuthMiddlewareAcceptsServiceToken(t *testing.T) {
	hash, err := auth.HashServiceToken("svc-token-123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	handler := Auth("", hash)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if subject := GetSubject(r.Context()); subject != "service" {
			t.Fatalf("unexpected subject: %q", subject)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer svc-token-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected request to pass, got %d", rec.Code)
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	handler := Auth("secret", "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("other-secret", "hr@example.com", time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	handler := Auth("secret", "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
