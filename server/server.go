// Package server assembles the HTTP routes and manages the server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/anisan-cli/aniserve/api"
	"github.com/anisan-cli/aniserve/key"
	"github.com/spf13/viper"
)

// Server wraps the configured http.Server.
type Server struct {
	httpServer *http.Server
}

// New wires the route handlers into a single HTTP server. Listening address
// and CORS policy come from the server.* configuration keys.
func New(handler *api.Handler) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /search", handler.Search)
	mux.HandleFunc("GET /search/suggestions", handler.Suggestions)
	mux.HandleFunc("GET /popular", handler.Popular)
	mux.HandleFunc("GET /anime/{identifier}", handler.Info)
	mux.HandleFunc("GET /anime/{identifier}/episodes", handler.Episodes)
	mux.HandleFunc("GET /anime/{identifier}/episode/{episode}/stream", handler.Stream)

	chain := http.Handler(mux)
	chain = corsMiddleware(viper.GetStringSlice(key.ServerCorsOrigins), chain)
	chain = loggingMiddleware(chain)

	addr := fmt.Sprintf("%s:%d", viper.GetString(key.ServerHost), viper.GetInt(key.ServerPort))

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           chain,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      2 * time.Minute,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler exposes the assembled handler chain, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving requests until the listener fails or the server shuts down.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
