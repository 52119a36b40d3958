package client

import (
	"context"
	"net/http"
	"strconv"

	"coursehub/internal/model"
)

// AdminLogin authenticates an administrator. Bad credentials answer 401
// "invalid_credentials".
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*model.Admin, error) {
	body := model.Credentials{Username: username, Password: password}

	var out model.Admin
	if err := c.do(ctx, request{method: http.MethodPost, route: "/admin/login", path: "/admin/login", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// adminList fetches one page of an admin resource (defaults page 1, size 20).
func adminList[T any](ctx context.Context, c *Client, resource string, page, size int, keyword string) (*model.Page[T], error) {
	q := newQuery().
		Int("page", orDefault(page, 1)).
		Int("size", orDefault(size, 20)).
		OptStr("keyword", keyword)
	path := "/admin/" + resource

	var out model.Page[T]
	if err := c.do(ctx, request{method: http.MethodGet, route: path, path: path, query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// adminWrite sends a PUT/POST/DELETE to an admin resource and decodes the acknowledgement.
func (c *Client) adminWrite(ctx context.Context, method, route, path string, body any) (*model.StatusResponse, error) {
	var out model.StatusResponse
	if err := c.do(ctx, request{method: method, route: route, path: path, body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func adminPath(resource string, id int64) string {
	return "/admin/" + resource + "/" + strconv.FormatInt(id, 10)
}

// AdminListUsers pages through user accounts.
func (c *Client) AdminListUsers(ctx context.Context, page, size int, keyword string) (*model.Page[model.AdminUser], error) {
	return adminList[model.AdminUser](ctx, c, "users", page, size, keyword)
}

// AdminUpdateUser edits a user's name and major.
func (c *Client) AdminUpdateUser(ctx context.Context, id int64, data model.AdminUserUpdate) (*model.StatusResponse, error) {
	return c.adminWrite(ctx, http.MethodPut, "/admin/users/{id}", adminPath("users", id), data)
}

// AdminDeleteUser removes a user account.
func (c *Client) AdminDeleteUser(ctx context.Context, id int64) (*model.StatusResponse, error) {
	return c.adminWrite(ctx, http.MethodDelete, "/admin/users/{id}", adminPath("users", id), nil)
}

// AdminListQuestions pages through the question bank.
func (c *Client) AdminListQuestions(ctx context.Context, page, size int, keyword string) (*model.Page[model.AdminQuestion], error) {
	return adminList[model.AdminQuestion](ctx, c, "questions", page, size, keyword)
}

// AdminAddQuestion adds a question to the bank.
func (c *Client) AdminAddQuestion(ctx context.Context, data model.QuestionInput) (*model.StatusResponse, error) {
	return c.adminWrite(ctx, http.MethodPost, "/admin/questions", "/admin/questions", data)
}

// AdminUpdateQuestion edits a question's text, options, answer and explanation.
func (c *Client) AdminUpdateQuestion(ctx context.Context, id int64, data model.QuestionInput) (*model.StatusResponse, error) {
	return c.adminWrite(ctx, http.MethodPut, "/admin/questions/{id}", adminPath("questions", id), data)
}

// AdminDeleteQuestion removes a question from the bank.
func (c *Client) AdminDeleteQuestion(ctx context.Context, id int64) (*model.StatusResponse, error) {
	return c.adminWrite(ctx, http.MethodDelete, "/admin/questions/{id}", adminPath("questions", id), nil)
}

// AdminListWrongQuestions pages through every user's wrong-question entries.
func (c *Client) AdminListWrongQuestions(ctx context.Context, page, size int, keyword string) (*model.Page[model.AdminWrongQuestion], error) {
	return adminList[model.AdminWrongQuestion](ctx, c, "wrong-questions", page, size, keyword)
}

// AdminDeleteWrongQuestion removes a wrong-question entry.
func (c *Client) AdminDeleteWrongQuestion(ctx context.Context, id int64) (*model.StatusResponse, error) {
	return c.adminWrite(ctx, http.MethodDelete, "/admin/wrong-questions/{id}", adminPath("wrong-questions", id), nil)
}

// AdminListPlans pages through every user's study plans.
func (c *Client) AdminListPlans(ctx context.Context, page, size int, keyword string) (*model.Page[model.AdminPlan], error) {
	return adminList[model.AdminPlan](ctx, c, "plans", page, size, keyword)
}

// AdminUpdatePlan edits a study plan.
func (c *Client) AdminUpdatePlan(ctx context.Context, id int64, data model.PlanRequest) (*model.StatusResponse, error) {
	return c.adminWrite(ctx, http.MethodPut, "/admin/plans/{id}", adminPath("plans", id), data)
}

// AdminDeletePlan removes a study plan.
func (c *Client) AdminDeletePlan(ctx context.Context, id int64) (*model.StatusResponse, error) {
	return c.adminWrite(ctx, http.MethodDelete, "/admin/plans/{id}", adminPath("plans", id), nil)
}

// AdminListCourses pages through the course catalogue with links.
func (c *Client) AdminListCourses(ctx context.Context, page, size int, keyword string) (*model.Page[model.AdminCourse], error) {
	return adminList[model.AdminCourse](ctx, c, "courses", page, size, keyword)
}

// AdminUpdateCourseURL sets the external link of a course.
func (c *Client) AdminUpdateCourseURL(ctx context.Context, courseIndex int, url string) (*model.StatusResponse, error) {
	path := "/admin/courses/" + strconv.Itoa(courseIndex) + "/url"
	return c.adminWrite(ctx, http.MethodPut, "/admin/courses/{courseIndex}/url", path, model.CourseURLUpdate{URL: url})
}
