// Package server assembles the HTTP routes and manages the server lifecycle.
package server

import (
	"net/http"
	"strings"

	"github.com/samber/lo"
)

// corsMiddleware applies the configured cross-origin policy. An entry of "*"
// allows any origin; otherwise the request origin must match one of the
// configured origins exactly.
func corsMiddleware(origins []string, next http.Handler) http.Handler {
	allowAny := lo.Contains(origins, "*")
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		allowed[strings.ToLower(strings.TrimSpace(origin))] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		_, ok := allowed[strings.ToLower(origin)]
		if !allowAny && !ok {
			http.Error(w, "origin not allowed", http.StatusForbidden)
			return
		}

		if allowAny {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
