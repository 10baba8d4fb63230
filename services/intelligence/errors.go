// File: services/intelligence/errors.go
package ai

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrMissingAPIKey means the Gemini key is not configured.
	ErrMissingAPIKey = errors.New("ai: missing Gemini API key")

	// ErrRateLimited is returned when the model provider throttles us.
	ErrRateLimited = errors.New("ai: model rate limited")

	// ErrQuotaExhausted is returned on billing or quota failures.
	ErrQuotaExhausted = errors.New("ai: model quota exhausted")
)

// mapModelError translates provider transport errors into the named
// outcomes above; anything else passes through unchanged.
func mapModelError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusPaymentRequired, http.StatusForbidden:
			return ErrQuotaExhausted
		}
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.ResourceExhausted:
			return ErrRateLimited
		case codes.PermissionDenied:
			return ErrQuotaExhausted
		}
	}
	return err
}
