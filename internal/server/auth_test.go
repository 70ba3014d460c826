package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pong/internal/game"
)

func TestRequireToken(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		token  string
		target string
		want   int
	}{
		{"open feed", "", "/spectate", http.StatusNoContent},
		{"matching token", "s3cret", "/spectate?token=s3cret", http.StatusNoContent},
		{"missing token", "s3cret", "/spectate", http.StatusUnauthorized},
		{"wrong token", "s3cret", "/spectate?token=guess", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RequireToken(tt.token)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHealthIsNotGuarded(t *testing.T) {
	h := NewHub(game.Field{Width: 800, Height: 600})
	routes := Routes(h, "s3cret")

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/health status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spectate", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("/spectate status = %d, want 401", rec.Code)
	}
}
