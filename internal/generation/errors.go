package generation

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrNoDraft indicates no cached draft exists for a session.
var ErrNoDraft = errors.New("no recent draft for session")

// ValidationError reports one or more invalid request fields. Field keys use
// the request's JSON names.
type ValidationError struct {
	Errors validation.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid generation request: %s", e.Errors.Error())
}

// Fields returns a field-to-message map for error responses.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for field, err := range e.Errors {
		out[field] = err.Error()
	}
	return out
}

// UpstreamKind classifies a generation client failure.
type UpstreamKind string

const (
	UpstreamTimeout     UpstreamKind = "timeout"
	UpstreamAuth        UpstreamKind = "auth"
	UpstreamRateLimited UpstreamKind = "rate_limited"
	UpstreamEmpty       UpstreamKind = "empty"
	UpstreamTransport   UpstreamKind = "transport"
)

// UpstreamError wraps a generation client failure with its classification.
type UpstreamError struct {
	Kind UpstreamKind
	Err  error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream generation failed: %s", e.Kind)
	}
	return fmt.Sprintf("upstream generation failed (%s): %s", e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// MapHTTPStatus maps generation errors to HTTP status codes. Validation
// failures are 422, upstream timeouts 504, other upstream failures 502.
func MapHTTPStatus(err error) int {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity
	}

	var uerr *UpstreamError
	if errors.As(err, &uerr) {
		if uerr.Kind == UpstreamTimeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}

	if errors.Is(err, ErrNoDraft) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}
