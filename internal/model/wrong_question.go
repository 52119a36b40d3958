package model

// WrongQuestion is an entry in a user's wrong-question notebook.
type WrongQuestion struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	QuestionID    *int64 `json:"question_id"`
	QuestionText  string `json:"question_text"`
	CourseName    string `json:"course_name"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	ErrorCount    int    `json:"error_count"`
}

// WrongQuestionPage is the paged listing of GET /wrong-questions.
type WrongQuestionPage struct {
	Items      []WrongQuestion `json:"items"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
	Page       int             `json:"page"`
}

// WrongQuestionRequest records a wrong answer.
type WrongQuestionRequest struct {
	UserID        int64  `json:"userId"`
	QuestionID    *int64 `json:"questionId,omitempty"`
	QuestionText  string `json:"questionText"`
	CourseName    string `json:"courseName"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

// WrongQuestionRecorded acknowledges a recorded wrong answer with the updated count.
type WrongQuestionRecorded struct {
	Status     string `json:"status"`
	ErrorCount int    `json:"error_count"`
}

// WrongQuestionCount is the body of GET /wrong-questions/count.
type WrongQuestionCount struct {
	ErrorCount int `json:"error_count"`
}
