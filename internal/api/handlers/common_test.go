package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestBearerToken_WithHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/user", nil)
	req.Header.Set("Authorization", "Bearer gho_abc123")

	if got := BearerToken(req); got != "gho_abc123" {
		t.Errorf("Expected 'gho_abc123', got '%s'", got)
	}
}

func TestBearerToken_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/user", nil)

	if got := BearerToken(req); got != "" {
		t.Errorf("Expected empty token, got '%s'", got)
	}
}

func TestBearerToken_WrongScheme(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/user", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	if got := BearerToken(req); got != "" {
		t.Errorf("Expected empty token for non-bearer scheme, got '%s'", got)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, 401, "No token provided")

	if w.Code != 401 {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON content type, got '%s'", w.Header().Get("Content-Type"))
	}
	if w.Body.String() != "{\"error\":\"No token provided\"}\n" {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}
