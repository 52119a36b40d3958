package model

// StudyPlan is a user's study plan. TargetDate is an ISO date (YYYY-MM-DD).
type StudyPlan struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Status      string `json:"status"`
}

// PlanRequest is the body used to create or update a study plan.
type PlanRequest struct {
	UserID      int64  `json:"userId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Status      string `json:"status"`
}
