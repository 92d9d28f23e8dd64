package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Caller-facing messages
const (
	MsgPromptRequired   = "Prompt is required."
	MsgAPIKeyMissing    = "API Key is not configured on the server."
	MsgInternalError    = "An internal server error occurred."
	MsgUpstreamFailed   = "Failed to get a response from the AI model."
	MsgMethodNotAllowed = "Method Not Allowed"

	// undefinedMessage is interpolated when the upstream error body has no
	// error.message, keeping the wording existing clients already see
	undefinedMessage = "undefined"
)

// ErrorKind classifies a failed build request
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindConfiguration
	KindUpstream
	KindMethodNotAllowed
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindConfiguration:
		return "configuration_error"
	case KindUpstream:
		return "upstream_error"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "internal_error"
	}
}

// Common build error causes
var (
	ErrPromptRequired = errors.New("prompt is required")
	ErrAPIKeyMissing  = errors.New("api key is not configured")
	ErrMalformedInput = errors.New("malformed request body")
)

// Error is a build request failure with the status and message callers see.
// Err holds the underlying cause, which is logged but never returned to callers.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports a missing or invalid prompt
func NewValidationError(err error) *Error {
	return &Error{Kind: KindValidation, StatusCode: http.StatusBadRequest, Message: MsgPromptRequired, Err: err}
}

// NewConfigurationError reports a missing server-side credential
func NewConfigurationError(err error) *Error {
	return &Error{Kind: KindConfiguration, StatusCode: http.StatusInternalServerError, Message: MsgAPIKeyMissing, Err: err}
}

// NewUpstreamError forwards an upstream status with its error message
func NewUpstreamError(statusCode int, upstreamMessage string, err error) *Error {
	return &Error{
		Kind:       KindUpstream,
		StatusCode: statusCode,
		Message:    MsgUpstreamFailed + " " + upstreamMessage,
		Err:        err,
	}
}

// NewInternalError hides err behind the generic internal error message
func NewInternalError(err error) *Error {
	return &Error{Kind: KindInternal, StatusCode: http.StatusInternalServerError, Message: MsgInternalError, Err: err}
}

// AsError converts any error into a *Error, treating unknown errors as internal
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var buildErr *Error
	if errors.As(err, &buildErr) {
		return buildErr
	}
	return NewInternalError(err)
}
