package errs

import (
	"errors"
	"net/http"
)

// APIError is the gateway-facing error type. Every failure that leaves the
// gateway carries a stable machine-readable code and the HTTP status to emit.
// Anything that is not an APIError is reported as a generic server_error with
// no internal detail leaked to the caller.
type APIError struct {
	Code   string
	Msg    string
	Status int
	Cause  error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return e.Code + ": " + e.Msg + " (cause: " + e.Cause.Error() + ")"
	}
	return e.Code + ": " + e.Msg
}

func (e *APIError) Unwrap() error { return e.Cause }

// NewAPIError creates an APIError with an explicit code, message and status.
func NewAPIError(code, msg string, status int) *APIError {
	return &APIError{Code: code, Msg: msg, Status: status}
}

// NewAPIErrorWithCause creates an APIError wrapping an underlying cause.
// The cause is logged internally and never serialized to the caller.
func NewAPIErrorWithCause(code, msg string, status int, cause error) *APIError {
	return &APIError{Code: code, Msg: msg, Status: status, Cause: cause}
}

// Gateway error constructors, one per error kind. The codes and statuses form
// a closed taxonomy that callers can test against.

func NewMissingActionError() *APIError {
	return NewAPIError("missing_action", "No action provided", http.StatusBadRequest)
}

func NewUnknownActionError(action string) *APIError {
	return NewAPIError("unknown_action", "Unknown action: "+action, http.StatusBadRequest)
}

func NewMethodNotAllowedError() *APIError {
	return NewAPIError("method_not_allowed", "Use POST for this action", http.StatusMethodNotAllowed)
}

func NewLoginRequiredError() *APIError {
	return NewAPIError("login_required", "Authentication required", http.StatusUnauthorized)
}

func NewUnauthorizedError() *APIError {
	return NewAPIError("unauthorized", "Invalid API key", http.StatusUnauthorized)
}

func NewRateLimitedError() *APIError {
	return NewAPIError("rate_limited", "Too many requests", http.StatusTooManyRequests)
}

func NewPayloadTooLargeError() *APIError {
	return NewAPIError("payload_too_large", "JSON body too large", http.StatusRequestEntityTooLarge)
}

func NewBadRequestError(msg string) *APIError {
	return NewAPIError("bad_request", msg, http.StatusBadRequest)
}

func NewTooManyPackagesError() *APIError {
	return NewAPIError("too_many_packages", "Max 50 packages", http.StatusBadRequest)
}

func NewDimsExceedError() *APIError {
	return NewAPIError("dims_exceed", "Package dims exceed 200cm limit", http.StatusBadRequest)
}

func NewWeightExceedError() *APIError {
	return NewAPIError("weight_exceed", "Package weight exceeds 50kg", http.StatusBadRequest)
}

func NewBadCarrierError(code string) *APIError {
	return NewAPIError("bad_carrier", "Unknown carrier: "+code, http.StatusBadRequest)
}

func NewUnsupportedMediaError() *APIError {
	return NewAPIError("bad_request", "Request body must be a JSON object", http.StatusUnsupportedMediaType)
}

func NewCarrierRejectedError(cause error) *APIError {
	return NewAPIErrorWithCause("carrier_rejected", "Carrier rejected the request", http.StatusBadRequest, cause)
}

func NewCarrierUnreachableError(cause error) *APIError {
	return NewAPIErrorWithCause("carrier_unreachable", "Carrier endpoint unreachable", http.StatusServiceUnavailable, cause)
}

func NewServerError(cause error) *APIError {
	return NewAPIErrorWithCause("server_error", "Unexpected error", http.StatusInternalServerError, cause)
}

// AsAPIError extracts an APIError from an error chain. The second return is
// false when the error is not an APIError and must be masked as server_error.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
