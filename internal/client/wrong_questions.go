package client

import (
	"context"
	"net/http"
	"strconv"

	"coursehub/internal/model"
)

// WrongQuestions lists a user's wrong-question notebook. keyword and courseID narrow
// the listing and are omitted when blank or zero.
func (c *Client) WrongQuestions(ctx context.Context, userID int64, keyword string, courseID int64) ([]model.WrongQuestion, error) {
	q := newQuery().
		Int64("userId", userID).
		OptStr("keyword", keyword).
		OptInt64("courseId", courseID)

	var out []model.WrongQuestion
	if err := c.do(ctx, request{method: http.MethodGet, route: "/wrong-questions", path: "/wrong-questions", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WrongQuestionsPaged returns one page of the notebook (defaults page 1, size 5).
// The category "all" (the default) sends no category filter.
func (c *Client) WrongQuestionsPaged(ctx context.Context, userID int64, category, keyword string, page, size int) (*model.WrongQuestionPage, error) {
	if category == "all" {
		category = ""
	}
	q := newQuery().
		Int64("userId", userID).
		Int("page", orDefault(page, 1)).
		Int("size", orDefault(size, 5)).
		OptStr("category", category).
		OptStr("keyword", keyword)

	var out model.WrongQuestionPage
	if err := c.do(ctx, request{method: http.MethodGet, route: "/wrong-questions", path: "/wrong-questions", query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWrongQuestion records a wrong answer; recording the same question again
// increments its error count.
func (c *Client) CreateWrongQuestion(ctx context.Context, req model.WrongQuestionRequest) (*model.WrongQuestionRecorded, error) {
	var out model.WrongQuestionRecorded
	if err := c.do(ctx, request{method: http.MethodPost, route: "/wrong-questions", path: "/wrong-questions", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWrongQuestion removes a notebook entry owned by userID.
func (c *Client) DeleteWrongQuestion(ctx context.Context, id, userID int64) (*model.StatusResponse, error) {
	r := request{
		method: http.MethodDelete,
		route:  "/wrong-questions/{id}",
		path:   "/wrong-questions/" + strconv.FormatInt(id, 10),
		query:  newQuery().Int64("userId", userID),
	}

	var out model.StatusResponse
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WrongQuestionsByCategory returns up to limit notebook entries of a category (default 10).
func (c *Client) WrongQuestionsByCategory(ctx context.Context, category string, userID int64, limit int) ([]model.WrongQuestion, error) {
	q := newQuery().
		Str("category", category).
		Int64("userId", userID).
		Int("limit", orDefault(limit, 10))

	var out []model.WrongQuestion
	if err := c.do(ctx, request{method: http.MethodGet, route: "/wrong-questions/by-category", path: "/wrong-questions/by-category", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WrongQuestionCount returns how often a user got a question wrong, identified by
// questionID or, for questions outside the bank, by questionText.
func (c *Client) WrongQuestionCount(ctx context.Context, userID, questionID int64, questionText string) (*model.WrongQuestionCount, error) {
	q := newQuery().
		Int64("userId", userID).
		OptInt64("questionId", questionID).
		OptStr("questionText", questionText)

	var out model.WrongQuestionCount
	if err := c.do(ctx, request{method: http.MethodGet, route: "/wrong-questions/count", path: "/wrong-questions/count", query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
