package client

import (
	"context"
	"net/http"

	"coursehub/internal/model"
)

// Courses returns the first limit courses of the catalogue (default 50).
func (c *Client) Courses(ctx context.Context, limit int) ([]model.Course, error) {
	q := newQuery().Int("limit", orDefault(limit, 50))

	var out []model.Course
	if err := c.do(ctx, request{method: http.MethodGet, route: "/courses", path: "/courses", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CoursesPaged returns one page of the catalogue. mode selects what keyword matches
// against and defaults to "name"; a blank keyword is not sent.
func (c *Client) CoursesPaged(ctx context.Context, page, size int, keyword, mode string) (*model.Page[model.Course], error) {
	if mode == "" {
		mode = "name"
	}
	q := newQuery().
		Int("page", page).
		Int("size", size).
		Str("mode", mode).
		OptStr("keyword", keyword)

	var out model.Page[model.Course]
	if err := c.do(ctx, request{method: http.MethodGet, route: "/courses", path: "/courses", query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CourseTypes lists course categories. exclude is a backend-interpreted filter and
// is omitted when blank.
func (c *Client) CourseTypes(ctx context.Context, exclude string) ([]model.CourseType, error) {
	q := newQuery().OptStr("exclude", exclude)

	var out []model.CourseType
	if err := c.do(ctx, request{method: http.MethodGet, route: "/course-types", path: "/course-types", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
