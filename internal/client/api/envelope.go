package api

import "encoding/json"

// Envelope is the {success, data, message, error} wrapper returned by every
// endpoint of the banking API.
type Envelope[T any] struct {
	Success bool            `json:"success"`
	Data    *T              `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// OK reports a successful envelope that carries data.
func (e *Envelope[T]) OK() bool {
	return e.Success && e.Data != nil
}

// ErrorMessage returns the most specific failure text in the envelope, or
// fallback when there is none.
func (e *Envelope[T]) ErrorMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	if d := decodeErrorField(e.Error); d.Message != "" {
		return d.Message
	}
	return fallback
}
