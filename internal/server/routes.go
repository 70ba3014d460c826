package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pong/internal/net"
)

type HealthResponse struct {
	Status     string         `json:"status"`
	Tick       uint32         `json:"tick"`
	Score      net.ScoreState `json:"score"`
	Spectators int            `json:"spectators"`
	Uptime     string         `json:"uptime"`
}

// Routes serves the spectator feed and a health endpoint. A non-empty token
// is required on the feed but not on /health.
func Routes(h *Hub, token string) http.Handler {
	started := time.Now()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.With(RequireToken(token)).Get("/spectate", HandleSpectate(h))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		snap := h.Latest()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{
			Status:     "ok",
			Tick:       snap.Tick,
			Score:      net.ScoreState{Left: snap.Score.Left, Right: snap.Score.Right},
			Spectators: h.Spectators(),
			Uptime:     time.Since(started).Round(time.Second).String(),
		})
	})

	return r
}
