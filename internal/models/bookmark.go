package models

import "time"

// Bookmark marks a question for later review. Toggling removes the row
// outright rather than soft-deleting it.
type Bookmark struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	QuestionID string    `bson:"question_id" json:"question_id"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
