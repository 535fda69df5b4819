package planka

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorKind classifies an upstream failure by its HTTP status.
type ErrorKind string

const (
	KindAuthentication ErrorKind = "authentication"
	KindPermission     ErrorKind = "permission"
	KindNotFound       ErrorKind = "not_found"
	KindConflict       ErrorKind = "conflict"
	KindValidation     ErrorKind = "validation"
	KindRateLimit      ErrorKind = "rate_limit"
	KindGeneric        ErrorKind = "generic"
)

// APIError is the single error type produced for a failed upstream call.
// Exactly one is constructed per non-2xx response; construction never fails.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	// Body is the raw upstream response, kept for diagnostics.
	Body []byte
	// ResetAt is set for rate-limit errors only.
	ResetAt time.Time
}

func (e *APIError) Error() string {
	return fmt.Sprintf("planka: %s (status %d): %s", e.Kind, e.Status, e.Message)
}

var defaultMessages = map[ErrorKind]string{
	KindAuthentication: "authentication required or token invalid",
	KindPermission:     "insufficient permissions",
	KindNotFound:       "resource not found",
	KindConflict:       "resource state conflict",
	KindValidation:     "request rejected by upstream validation",
	KindRateLimit:      "rate limit exceeded",
	KindGeneric:        "unexpected upstream error",
}

// upstreamErrorBody covers the message shapes Planka returns on failures.
type upstreamErrorBody struct {
	Message    string   `json:"message"`
	Error      string   `json:"error"`
	Problems   []string `json:"problems"`
	RetryAfter int      `json:"retryAfter"`
}

// classifyResponse maps a non-2xx upstream response onto the error taxonomy.
func classifyResponse(status int, body []byte) *APIError {
	kind := KindGeneric
	switch status {
	case http.StatusUnauthorized:
		kind = KindAuthentication
	case http.StatusForbidden:
		kind = KindPermission
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusConflict:
		kind = KindConflict
	case http.StatusUnprocessableEntity:
		kind = KindValidation
	case http.StatusTooManyRequests:
		kind = KindRateLimit
	}

	apiErr := &APIError{Kind: kind, Status: status, Body: body}

	var parsed upstreamErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			apiErr.Message = parsed.Message
		case parsed.Error != "":
			apiErr.Message = parsed.Error
		case len(parsed.Problems) > 0:
			apiErr.Message = strings.Join(parsed.Problems, "; ")
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = defaultMessages[kind]
	}

	if kind == KindRateLimit {
		if parsed.RetryAfter > 0 {
			apiErr.ResetAt = time.Now().Add(time.Duration(parsed.RetryAfter) * time.Second)
		} else {
			apiErr.ResetAt = time.Now().Add(60 * time.Second)
		}
	}

	return apiErr
}

// IsAPIError reports whether err (or anything it wraps) is a taxonomy error.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// AsAPIError extracts the taxonomy error from err, if present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func isKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == kind
}

func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }
func IsPermission(err error) bool     { return isKind(err, KindPermission) }
func IsNotFound(err error) bool       { return isKind(err, KindNotFound) }
func IsConflict(err error) bool       { return isKind(err, KindConflict) }
func IsValidation(err error) bool     { return isKind(err, KindValidation) }
func IsRateLimit(err error) bool      { return isKind(err, KindRateLimit) }

// CredentialError means a bearer token could not be obtained at all,
// as opposed to an authenticated call being rejected upstream.
type CredentialError struct {
	err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("planka: resolve credential: %v", e.err)
}

func (e *CredentialError) Unwrap() error { return e.err }

func newCredentialError(err error) error {
	return &CredentialError{err: err}
}

// IsCredentialError reports whether err stems from credential resolution.
func IsCredentialError(err error) bool {
	var credErr *CredentialError
	return errors.As(err, &credErr)
}

// SchemaError means an input or a response did not match the expected shape.
// It is raised before any network call for invalid inputs.
type SchemaError struct {
	msg string
}

func (e *SchemaError) Error() string { return "planka: " + e.msg }

func newSchemaError(format string, args ...any) error {
	return &SchemaError{msg: fmt.Sprintf(format, args...)}
}

// IsSchemaError reports whether err is an input/response shape mismatch.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}
