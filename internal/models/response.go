package models

import "time"

// UserResponse is an append-only fact record: one answer the user gave to
// one question. Correctness is derived at write time by comparing against
// the question's correct option; the record is never updated afterwards.
type UserResponse struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	QuestionID       string    `bson:"question_id" json:"question_id"`
	SelectedOption   string    `bson:"selected_option" json:"selected_option"`
	IsCorrect        bool      `bson:"is_correct" json:"is_correct"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
}

// ResponseFilters narrows response reads for one user.
type ResponseFilters struct {
	Since time.Time `json:"since,omitempty"`
	Limit int       `json:"limit,omitempty"`
}

// UserStats is the aggregate over a user's response history.
type UserStats struct {
	TotalQuestions   int     `json:"total_questions"`
	CorrectAnswers   int     `json:"correct_answers"`
	AverageScore     float64 `json:"average_score"`
	TotalTimeSeconds int     `json:"total_time_seconds"`
}
