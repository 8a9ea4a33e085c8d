package models

import "time"

// Study session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// StudySession brackets one sitting of study activity. It is opened when
// the user starts studying and closed with the final counters; an unknown
// session id on close is ignored.
type StudySession struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	UserID             string    `bson:"user_id" json:"user_id"`
	StartTime          time.Time `bson:"start_time" json:"start_time"`
	EndTime            time.Time `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Score              float64   `bson:"score" json:"score"`
	QuestionsAttempted int       `bson:"questions_attempted" json:"questions_attempted"`
	Status             string    `bson:"status" json:"status"`
}
