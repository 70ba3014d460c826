package server

import (
	"crypto/subtle"
	"net/http"
)

// RequireToken guards the spectator feed with a shared token passed as the
// "token" query parameter. An empty token leaves the feed open.
func RequireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Authenticate(r.URL.Query().Get("token"), token) {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func Authenticate(given, expected string) bool {
	if given == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}
