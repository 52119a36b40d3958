package client

import (
	"net/url"
	"strconv"
	"strings"
)

// query builds a query string that keeps insertion order. The backend does not care
// about order, but callers and tests compare exact strings, and url.Values sorts keys.
type query struct {
	parts []string
}

func newQuery() *query { return &query{} }

// Str appends key=value unconditionally.
func (q *query) Str(key, value string) *query {
	q.parts = append(q.parts, key+"="+escape(value))
	return q
}

// Int appends key=value unconditionally.
func (q *query) Int(key string, value int) *query {
	q.parts = append(q.parts, key+"="+strconv.Itoa(value))
	return q
}

// Int64 appends key=value unconditionally.
func (q *query) Int64(key string, value int64) *query {
	q.parts = append(q.parts, key+"="+strconv.FormatInt(value, 10))
	return q
}

// OptStr appends key=value only when value is not blank.
func (q *query) OptStr(key, value string) *query {
	if value == "" {
		return q
	}
	return q.Str(key, value)
}

// OptInt64 appends key=value only when value is not zero.
func (q *query) OptInt64(key string, value int64) *query {
	if value == 0 {
		return q
	}
	return q.Int64(key, value)
}

// Encode renders the query without the leading '?'.
func (q *query) Encode() string {
	if q == nil {
		return ""
	}
	return strings.Join(q.parts, "&")
}

// escape percent-encodes a query value with spaces as %20 rather than '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
