package client

import (
	"context"
	"net/http"

	"coursehub/internal/model"
)

// Questions draws up to limit random quiz questions for a course (default 5).
func (c *Client) Questions(ctx context.Context, courseID, limit int) ([]model.Question, error) {
	q := newQuery().
		Int("courseId", courseID).
		Int("limit", orDefault(limit, 5)).
		Str("random", "true")

	var out []model.Question
	if err := c.do(ctx, request{method: http.MethodGet, route: "/questions", path: "/questions", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// QuestionsByCategory draws up to limit questions from a category (default 10),
// scoped to the user's major.
func (c *Client) QuestionsByCategory(ctx context.Context, category string, userID int64, limit int) ([]model.Question, error) {
	q := newQuery().
		Str("category", category).
		Int64("userId", userID).
		Int("limit", orDefault(limit, 10))

	var out []model.Question
	if err := c.do(ctx, request{method: http.MethodGet, route: "/questions/by-category", path: "/questions/by-category", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
