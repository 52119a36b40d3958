package model

// Question is a quiz question. Options is the backend's serialized option list.
type Question struct {
	ID          int64  `json:"id"`
	Question    string `json:"question"`
	Options     string `json:"options"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	CourseName  string `json:"course_name"`
}
