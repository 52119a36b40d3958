package model

// Course is a catalogue entry.
type Course struct {
	CourseIndex int    `json:"course_index"`
	Name        string `json:"name"`
	TypeID      int    `json:"type_id"`
	TypeName    string `json:"type_name"`
	URL         string `json:"url,omitempty"`
}

// CourseType is a course category.
type CourseType struct {
	TypeID   int    `json:"type_id"`
	TypeName string `json:"type_name"`
}

// Recommendation is a single recommended course with its predicted score.
type Recommendation struct {
	CourseIndex    int     `json:"course_index"`
	Name           string  `json:"name"`
	TypeID         FlexInt `json:"type_id"`
	TypeName       string  `json:"type_name"`
	PredictedScore float64 `json:"predicted_score"`
	Reason         string  `json:"reason,omitempty"`
}

// RecommendationList is the body of GET /recommendations.
type RecommendationList struct {
	Recommendations []Recommendation `json:"recommendations"`
	Error           string           `json:"error,omitempty"`
}

// Interaction is the body of POST /interactions (a course click).
type Interaction struct {
	UserID      int64 `json:"userId"`
	CourseIndex int   `json:"courseIndex"`
}

// Evaluation holds offline recommender metrics keyed by name,
// e.g. "Precision@10", "Recall@10", "NDCG@10" and "evaluated_users".
type Evaluation map[string]float64

// Metric returns the named metric, or 0 when the backend did not report it.
func (e Evaluation) Metric(name string) float64 {
	return e[name]
}

// EvaluatedUsers returns the number of users the metrics were computed over.
func (e Evaluation) EvaluatedUsers() int {
	return int(e["evaluated_users"])
}
