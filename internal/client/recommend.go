package client

import (
	"context"
	"net/http"

	"coursehub/internal/model"
)

// Recommendations returns up to topN recommended courses for a user (default 10).
// A backend that cannot map the user to a student answers 400 with error code
// "no_student_mapping", surfaced through ErrorCode.
func (c *Client) Recommendations(ctx context.Context, userID int64, topN int) (*model.RecommendationList, error) {
	q := newQuery().Int64("userId", userID).Int("topN", orDefault(topN, 10))

	var out model.RecommendationList
	if err := c.do(ctx, request{method: http.MethodGet, route: "/recommendations", path: "/recommendations", query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordCourseClick records that a user opened a course.
func (c *Client) RecordCourseClick(ctx context.Context, userID int64, courseIndex int) (*model.StatusResponse, error) {
	body := model.Interaction{UserID: userID, CourseIndex: courseIndex}

	var out model.StatusResponse
	if err := c.do(ctx, request{method: http.MethodPost, route: "/interactions", path: "/interactions", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Evaluation runs the offline recommender evaluation (defaults topK 10, maxUsers 1000).
// It can take a long time on a cold backend.
func (c *Client) Evaluation(ctx context.Context, topK, maxUsers int) (model.Evaluation, error) {
	q := newQuery().Int("topK", orDefault(topK, 10)).Int("maxUsers", orDefault(maxUsers, 1000))

	var out model.Evaluation
	if err := c.do(ctx, request{method: http.MethodGet, route: "/evaluation", path: "/evaluation", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
