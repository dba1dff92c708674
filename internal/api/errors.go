package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// NetworkError means the request never reached the server or no response came
// back. It is surfaced as a generic connectivity message; the underlying
// transport error is kept for logging.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return "unable to reach the server, check your connection"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError carries field-level messages from a 400 response (or from
// client-side validation), suitable for form display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// AuthError is a 401 or invalid-credentials response. The message is the
// server's own, passed through verbatim; callers supply a default when the
// server gives none.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// APIError is any other non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// errorFromResponse maps a non-2xx response body onto the error taxonomy.
// The API reports errors either as {"detail": "..."} / {"message": "..."} or,
// for 400s, as a field -> message(s) object.
func errorFromResponse(status int, body []byte) error {
	var generic struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &generic)
	msg := generic.Detail
	if msg == "" {
		msg = generic.Message
	}

	switch {
	case status == http.StatusUnauthorized:
		return &AuthError{Message: msg}
	case status == http.StatusBadRequest:
		if msg != "" {
			// Some 400s are credential failures rather than field errors.
			return &AuthError{Message: msg}
		}
		if fields := fieldErrors(body); len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
		return &APIError{StatusCode: status}
	default:
		return &APIError{StatusCode: status, Message: msg}
	}
}

// fieldErrors flattens a Django-style error object where each field maps to
// either a string or a list of strings.
func fieldErrors(body []byte) map[string]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fields := make(map[string]string, len(raw))
	for name, val := range raw {
		var single string
		if err := json.Unmarshal(val, &single); err == nil {
			fields[name] = single
			continue
		}
		var many []string
		if err := json.Unmarshal(val, &many); err == nil && len(many) > 0 {
			fields[name] = strings.Join(many, " ")
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
