package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrRejected     = errors.New("request rejected")
	ErrServer       = errors.New("server error")
	ErrUnavailable  = errors.New("service unavailable")
	ErrRequest      = errors.New("request error")

	// ErrCanceled means the caller's context ended first. No notification
	// is shown for it.
	ErrCanceled = errors.New("request canceled")
)

// Error codes used when the server does not provide one.
const (
	CodeServerError        = "SERVER_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeRequestError       = "REQUEST_ERROR"
	CodeInvalidResponse    = "INVALID_RESPONSE"
	CodeCanceled           = "REQUEST_CANCELED"
)

const defaultErrorMessage = "Server error"

// Error is the normalised failure of a remote call.
type Error struct {
	Status  int
	Code    string
	Message string
	// Notified is true when the adapter already showed a notification for
	// this failure.
	Notified bool
	// Body is the raw response body, if any.
	Body json.RawMessage

	kind  error
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d, code %s)", e.Message, e.Status, e.Code)
}

// Is matches the sentinel the error was classified as.
func (e *Error) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

func (e *Error) Unwrap() error {
	return e.cause
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorBody covers the error shapes the API is known to send:
// {"error":{"message":..,"code":..}}, {"error":"..."} and {"message":".."}.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// parseErrorBody extracts message and code from a failed response body,
// falling back to defaults when the body is empty or not JSON.
func parseErrorBody(body []byte) (message, code string) {
	message, code = defaultErrorMessage, CodeServerError

	var eb errorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return message, code
	}

	detail := decodeErrorField(eb.Error)
	switch {
	case detail.Message != "":
		message = detail.Message
	case eb.Message != "":
		message = eb.Message
	}
	if detail.Code != "" {
		code = detail.Code
	}
	return message, code
}

// decodeErrorField accepts either a string or an object "error" field.
func decodeErrorField(raw json.RawMessage) errorDetail {
	var d errorDetail
	if len(raw) == 0 {
		return d
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		d.Message = s
		return d
	}
	_ = json.Unmarshal(raw, &d)
	return d
}
