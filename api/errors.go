// Package api implements the HTTP handlers exposing the provider client as a JSON API.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anisan-cli/aniserve/source"
)

// Kind classifies an API failure for the caller.
type Kind string

const (
	// KindValidation marks caller-supplied input violating a documented constraint.
	KindValidation Kind = "validation_error"
	// KindNotFound marks a resource that does not exist upstream.
	KindNotFound Kind = "not_found"
	// KindUpstream marks a provider call that failed for reasons outside the caller's input.
	KindUpstream Kind = "upstream_error"
	// KindNotImplemented marks a capability the active provider does not support.
	KindNotImplemented Kind = "not_implemented"
	// KindInternal marks an unexpected, unclassified failure.
	KindInternal Kind = "internal_error"
)

// Error is the JSON error envelope returned on every failed request.
type Error struct {
	Kind    Kind   `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// status maps the error kind to its HTTP status code.
func (e *Error) status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	case KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func upstreamf(format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...)}
}

func notImplementedf(format string, args ...any) *Error {
	return &Error{Kind: KindNotImplemented, Message: fmt.Sprintf(format, args...)}
}

// fromProvider classifies a provider failure. Missing resources surface as
// not_found; everything else is an upstream failure, never retried here.
func fromProvider(err error) *Error {
	if errors.Is(err, source.ErrNotFound) {
		return notFoundf("%s", err)
	}
	return upstreamf("provider call failed: %s", err)
}
