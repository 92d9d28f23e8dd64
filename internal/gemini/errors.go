package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorDetail carries the upstream error description. Fields the API
// sent with an unexpected type are left empty.
type ErrorDetail struct {
	Code    int
	Message *string
	Status  string
}

// parseErrorDetail reads the error envelope of a non-2xx body. Any JSON
// value is accepted. Only a JSON null or invalid JSON is an error, and
// Detail is nil when the body has no "error" object.
func parseErrorDetail(body []byte) (*ErrorDetail, error) {
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errNullErrorBody
	}

	envelope, ok := payload.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	fields, ok := envelope["error"].(map[string]interface{})
	if !ok {
		return nil, nil
	}

	detail := &ErrorDetail{}
	if msg, ok := fields["message"].(string); ok {
		detail.Message = &msg
	}
	if code, ok := fields["code"].(float64); ok {
		detail.Code = int(code)
	}
	if status, ok := fields["status"].(string); ok {
		detail.Status = status
	}
	return detail, nil
}

var errNullErrorBody = errors.New("error body is null")

// APIError is returned when the API answers with a non-success status
// and a JSON body
type APIError struct {
	StatusCode int
	Body       json.RawMessage
	Detail     *ErrorDetail
}

func (e *APIError) Error() string {
	if msg, ok := e.Message(); ok {
		return fmt.Sprintf("gemini api error (status %d): %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("gemini api error (status %d)", e.StatusCode)
}

// Message returns error.message from the upstream body, if present
func (e *APIError) Message() (string, bool) {
	if e.Detail == nil || e.Detail.Message == nil {
		return "", false
	}
	return *e.Detail.Message, true
}

// ResponseError is returned when a response body cannot be decoded
type ResponseError struct {
	StatusCode int
	Err        error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("gemini response decode failed (status %d): %v", e.StatusCode, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
