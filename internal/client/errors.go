package client

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// maxErrorBody bounds how much of a failed response body is kept on a StatusError.
const maxErrorBody = 200

// StatusError reports a non-2xx answer from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	// Body holds at most the first 200 characters of the response body.
	Body string
	// Code is the backend's "error" field when the body is a JSON object carrying one,
	// e.g. "username_exists" or "no_student_mapping".
	Code string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

func newStatusError(method, path string, status int, body []byte) *StatusError {
	se := &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       truncate(string(body), maxErrorBody),
	}
	var envelope struct {
		Error any `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		if s, ok := envelope.Error.(string); ok {
			se.Code = s
		}
	}
	return se
}

// truncate keeps the first n characters of s without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// IsStatus reports whether err is a *StatusError with the given status code.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == status
}

// ErrorCode returns the backend error code carried by err, or "".
func ErrorCode(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
