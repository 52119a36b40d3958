package client

import (
	"context"
	"net/http"
	"strconv"

	"coursehub/internal/model"
)

// Plans lists a user's study plans. status filters when not blank; sort is "asc" or
// "desc" (default).
func (c *Client) Plans(ctx context.Context, userID int64, status, sort string) ([]model.StudyPlan, error) {
	if sort == "" {
		sort = "desc"
	}
	q := newQuery().
		Int64("userId", userID).
		Str("sort", sort).
		OptStr("status", status)

	var out []model.StudyPlan
	if err := c.do(ctx, request{method: http.MethodGet, route: "/plans", path: "/plans", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePlan stores a new plan owned by plan.UserID.
func (c *Client) CreatePlan(ctx context.Context, plan model.PlanRequest) (*model.StatusResponse, error) {
	var out model.StatusResponse
	if err := c.do(ctx, request{method: http.MethodPost, route: "/plans", path: "/plans", body: plan}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePlan replaces a plan owned by userID.
func (c *Client) UpdatePlan(ctx context.Context, id, userID int64, plan model.PlanRequest) (*model.StatusResponse, error) {
	r := request{
		method: http.MethodPut,
		route:  "/plans/{id}",
		path:   "/plans/" + strconv.FormatInt(id, 10),
		query:  newQuery().Int64("userId", userID),
		body:   plan,
	}

	var out model.StatusResponse
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePlan removes a plan owned by userID.
func (c *Client) DeletePlan(ctx context.Context, id, userID int64) (*model.StatusResponse, error) {
	r := request{
		method: http.MethodDelete,
		route:  "/plans/{id}",
		path:   "/plans/" + strconv.FormatInt(id, 10),
		query:  newQuery().Int64("userId", userID),
	}

	var out model.StatusResponse
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
