package cms

import (
	"encoding/json"
	"fmt"
)

// Envelope codes understood by the client.
const (
	CodeOK           = 200
	CodeUnauthorized = 401
	CodeServerError  = 500
	CodeWarning      = 601
)

// ResponseType selects how a response body is interpreted.
type ResponseType int

const (
	// ResponseJSON decodes the body as an envelope.
	ResponseJSON ResponseType = iota
	// ResponseBlob returns the raw body untouched.
	ResponseBlob
)

// Envelope mirrors the wrapper every CMS response uses. Success responses carry
// msg, error responses carry message.
type Envelope struct {
	Code    int             `json:"code"`
	Msg     string          `json:"msg"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Text returns the human readable part of the envelope.
func (e Envelope) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

// Result is a resolved request. Raw is only set for ResponseBlob requests.
type Result struct {
	Code int
	Msg  string
	Data json.RawMessage
	Raw  []byte
}

// Decode unmarshals the envelope data into dest.
func (r *Result) Decode(dest any) error {
	if r == nil {
		return fmt.Errorf("result is nil")
	}
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(r.Data, dest); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// APIError is returned when the envelope code is anything but 200.
type APIError struct {
	Code    int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unauthorized reports whether the server rejected the session.
func (e *APIError) Unauthorized() bool {
	return e.Code == CodeUnauthorized
}

// StatusError is a transport failure for a non-2xx HTTP status.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}
