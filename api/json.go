// Package api implements the HTTP handlers exposing the provider client as a JSON API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/anisan-cli/aniserve/log"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, apiErr *Error) {
	if apiErr.Kind == KindInternal || apiErr.Kind == KindUpstream {
		log.Error(apiErr.Message)
	}
	writeJSON(w, apiErr.status(), apiErr)
}
