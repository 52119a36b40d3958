package model

// Admin is the account returned by the admin login.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AdminUser is a row of the admin user listing.
type AdminUser struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	MajorTypeID *int   `json:"majorTypeId"`
	TypeName    string `json:"typeName"`
	CreatedAt   string `json:"createdAt"`
}

// AdminUserUpdate is the body of PUT /admin/users/{id}.
type AdminUserUpdate struct {
	Username    string `json:"username,omitempty"`
	MajorTypeID *int   `json:"majorTypeId"`
}

// AdminQuestion is a row of the admin question bank.
type AdminQuestion struct {
	ID          int64  `json:"id"`
	CourseID    int    `json:"courseId"`
	CourseName  string `json:"courseName"`
	Question    string `json:"question"`
	Options     string `json:"options"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// QuestionInput creates or edits a question bank entry.
// CourseID and CourseName are only read on creation.
type QuestionInput struct {
	CourseID    int    `json:"courseId,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
	Question    string `json:"question"`
	Options     string `json:"options"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// AdminWrongQuestion is a row of the admin wrong-question listing.
type AdminWrongQuestion struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	Username      string `json:"username"`
	QuestionID    *int64 `json:"questionId"`
	QuestionText  string `json:"questionText"`
	CourseName    string `json:"courseName"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	ErrorCount    int    `json:"errorCount"`
	CreatedAt     string `json:"createdAt"`
}

// AdminPlan is a row of the admin study-plan listing.
type AdminPlan struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// AdminCourse is a row of the admin course-link listing.
type AdminCourse struct {
	CourseIndex int    `json:"courseIndex"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	TypeID      int    `json:"typeId"`
	TypeName    string `json:"typeName"`
	URL         string `json:"url"`
}

// CourseURLUpdate is the body of PUT /admin/courses/{courseIndex}/url.
type CourseURLUpdate struct {
	URL string `json:"url"`
}
