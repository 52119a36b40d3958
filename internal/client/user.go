package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"coursehub/internal/model"
)

// Register creates an account. A taken username answers 400 "username_exists".
func (c *Client) Register(ctx context.Context, username, password string) (*model.User, error) {
	body := model.Credentials{Username: username, Password: password}

	var out model.User
	if err := c.do(ctx, request{method: http.MethodPost, route: "/auth/register", path: "/auth/register", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates a user. Unlike every other endpoint it does not turn a non-2xx
// status into an error: the body is always decoded and the HTTP status is reported
// on the result, so callers check LoginResult.OK. Only transport failures and
// non-JSON bodies are returned as errors.
func (c *Client) Login(ctx context.Context, username, password string) (*model.LoginResult, error) {
	r := request{
		method: http.MethodPost,
		route:  "/auth/login",
		path:   "/auth/login",
		body:   model.Credentials{Username: username, Password: password},
	}

	status, body, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}

	var out model.LoginResult
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode %s %s (status %d): %w", r.method, r.path, status, err)
	}
	out.Status = status
	return &out, nil
}

// UpdateMajor sets the user's major category and returns the updated profile.
func (c *Client) UpdateMajor(ctx context.Context, userID int64, majorTypeID int) (*model.User, error) {
	body := model.MajorUpdate{UserID: userID, MajorTypeID: majorTypeID}

	var out model.User
	if err := c.do(ctx, request{method: http.MethodPut, route: "/user/major", path: "/user/major", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the username and optionally the major category.
func (c *Client) UpdateProfile(ctx context.Context, userID int64, username string, majorTypeID *int) (*model.User, error) {
	body := model.ProfileUpdate{UserID: userID, Username: username, MajorTypeID: majorTypeID}

	var out model.User
	if err := c.do(ctx, request{method: http.MethodPut, route: "/user/profile", path: "/user/profile", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword replaces the password. A wrong old password answers 400 "invalid_password".
func (c *Client) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) (*model.StatusResponse, error) {
	body := model.PasswordChange{UserID: userID, OldPassword: oldPassword, NewPassword: newPassword}

	var out model.StatusResponse
	if err := c.do(ctx, request{method: http.MethodPut, route: "/user/password", path: "/user/password", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAvatar uploads an image as multipart/form-data with exactly two parts:
// the userId field and the file.
func (c *Client) UploadAvatar(ctx context.Context, userID int64, filename string, file io.Reader) (*model.User, error) {
	if file == nil {
		return nil, fmt.Errorf("upload avatar: file is nil")
	}
	form := &multipartForm{
		fields:    []formField{{name: "userId", value: strconv.FormatInt(userID, 10)}},
		fileField: "file",
		fileName:  filename,
		file:      file,
	}

	var out model.User
	if err := c.do(ctx, request{method: http.MethodPost, route: "/user/avatar", path: "/user/avatar", form: form}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
