package model

// User is the public profile returned by register, login and the profile endpoints.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	AvatarPath  string `json:"avatarPath,omitempty"`
	MajorTypeID *int   `json:"majorTypeId"`
}

// Credentials is the body of the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the login response: the user fields on success, an error code on
// failure, and always the HTTP status the backend answered with.
type LoginResult struct {
	User
	Error string `json:"error,omitempty"`

	// Status is the HTTP status code; it is not part of the JSON body.
	Status int `json:"-"`
}

// OK reports whether the login was accepted.
func (r *LoginResult) OK() bool {
	return r.Status >= 200 && r.Status < 300 && r.Error == ""
}

// MajorUpdate is the body of PUT /user/major.
type MajorUpdate struct {
	UserID      int64 `json:"userId"`
	MajorTypeID int   `json:"majorTypeId"`
}

// ProfileUpdate is the body of PUT /user/profile.
type ProfileUpdate struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	MajorTypeID *int   `json:"majorTypeId"`
}

// PasswordChange is the body of PUT /user/password.
type PasswordChange struct {
	UserID      int64  `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
