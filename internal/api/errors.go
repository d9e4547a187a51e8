package api

import "fmt"

// APIError is a non-2xx response whose body carried a server message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ParseError marks a response body the client could not decode, on
// either the success or the error path. Distinguishable from APIError
// so callers can tell a server-side rejection from a broken payload.
type ParseError struct {
	StatusCode int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response (status %d): %v", e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// errorBody matches both backend generations: the flask app answers
// {"error": ...}, the fastapi one {"detail": ...}.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (b errorBody) message() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Detail
}
