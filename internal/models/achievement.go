package models

import "time"

// Achievement types unlocked by the quiz orchestration.
const (
	AchievementFirstQuiz    = "first_quiz"
	AchievementPerfectScore = "perfect_score"
)

// Achievement is an append-only log entry; reads return newest first.
type Achievement struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Type        string    `bson:"type" json:"type"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	UnlockedAt  time.Time `bson:"unlocked_at" json:"unlocked_at"`
}
