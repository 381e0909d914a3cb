package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "scheduler")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sub, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if sub != "scheduler" {
		t.Errorf("Expected subject 'scheduler', got %q", sub)
	}

	if _, err := ParseToken([]byte("other-secret"), token); err == nil {
		t.Error("Expected error for wrong secret")
	}
	if _, err := ParseToken(secret, "not-a-token"); err == nil {
		t.Error("Expected error for garbage token")
	}
}

func TestWrap(t *testing.T) {
	secret := []byte("test-secret")
	next := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	handler := New(secret).Wrap(next)

	r := httptest.NewRequest("POST", "/generate-tasks-for-all", nil)
	w := httptest.NewRecorder()
	handler(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}

	token, _ := GenerateToken(secret, "scheduler")
	r = httptest.NewRequest("POST", "/generate-tasks-for-all", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	handler(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with token, got %d", w.Code)
	}
}

func TestWrapOpenWhenNoSecret(t *testing.T) {
	handler := New(nil).Wrap(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("POST", "/generate-tasks-for-all", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected pass-through without secret, got %d", w.Code)
	}
}
