// Package api implements the HTTP handlers exposing the provider client as a JSON API.
package api

import (
	"github.com/anisan-cli/aniserve/source"
)

// Handler bundles the route handlers around a single provider source.
// Handlers are stateless; every request maps to at most one provider call.
type Handler struct {
	src source.Source
}

// New constructs a Handler backed by the given provider source.
func New(src source.Source) *Handler {
	return &Handler{src: src}
}
