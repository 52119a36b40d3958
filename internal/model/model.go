// Package model contains the request and response contracts of the course backend.
// Field names and JSON tags follow the backend exactly; no business logic here.
package model

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Page is the generic paginated envelope returned by the course and admin listings.
type Page[T any] struct {
	Content    []T `json:"content"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	Size       int `json:"size"`
}

// StatusResponse is the acknowledgement most write endpoints answer with,
// e.g. {"status":"ok"} or {"error":"user_not_found"}.
type StatusResponse struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OK reports whether the backend acknowledged the write.
func (s StatusResponse) OK() bool {
	return s.Status == "ok" && s.Error == ""
}

// FlexInt is an integer that also accepts numeric strings and "" (decoded as zero).
// The recommender emits type_id as an empty string for courses it has no metadata for.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*f = FlexInt(int(n))
	return nil
}
