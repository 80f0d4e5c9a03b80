package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
)

// APIError is the one normalized error shape every gateway function returns.
// Detail is sourced preferentially from the upstream's structured `detail`
// field, falling back to the transport message or status text. Callers never
// see a raw transport exception.
type APIError struct {
	// Status is the upstream HTTP status, or 0 when no response was reached.
	Status int
	Detail string
}

func (e *APIError) Error() string { return e.Detail }

// IsAPIError unwraps err into an *APIError when possible.
func IsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// upstreamDetail is the error body the gym API emits on failures.
type upstreamDetail struct {
	Detail string `json:"detail"`
}

// normalizeStatus converts a non-2xx response body into an APIError.
func normalizeStatus(status int, body []byte) *APIError {
	var ud upstreamDetail
	if err := json.Unmarshal(body, &ud); err == nil && ud.Detail != "" {
		return &APIError{Status: status, Detail: ud.Detail}
	}
	return &APIError{Status: status, Detail: http.StatusText(status)}
}

// normalizeTransport converts a transport-level failure (no response
// reached) into an APIError.
func normalizeTransport(err error) *APIError {
	return &APIError{Status: 0, Detail: err.Error()}
}
