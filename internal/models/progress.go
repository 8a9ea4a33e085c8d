package models

import "time"

// UserProgress is the running per-category aggregate, upserted by category
// key: one row per (user, category).
type UserProgress struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	UserID             string    `bson:"user_id" json:"user_id"`
	Category           string    `bson:"category" json:"category"`
	QuestionsAttempted int       `bson:"questions_attempted" json:"questions_attempted"`
	QuestionsCorrect   int       `bson:"questions_correct" json:"questions_correct"`
	BestScore          float64   `bson:"best_score" json:"best_score"`
	LastPracticed      time.Time `bson:"last_practiced" json:"last_practiced"`
}

// Default daily targets used when a goal row is created implicitly.
const (
	DefaultGoalQuestions   = 20
	DefaultGoalTimeMinutes = 30
)

// DailyGoal is the per-day target vs. completed counters, upserted by date
// key (YYYY-MM-DD in the caller's local time): one row per (user, date).
type DailyGoal struct {
	ID                 string `bson:"_id,omitempty" json:"id"`
	UserID             string `bson:"user_id" json:"user_id"`
	Date               string `bson:"date" json:"date"`
	TargetQuestions    int    `bson:"target_questions" json:"target_questions"`
	TargetTimeMinutes  int    `bson:"target_time_minutes" json:"target_time_minutes"`
	CompletedQuestions int    `bson:"completed_questions" json:"completed_questions"`
	CompletedMinutes   int    `bson:"completed_minutes" json:"completed_minutes"`
}

// GoalDate formats t the way DailyGoal rows are keyed.
func GoalDate(t time.Time) string {
	return t.Format("2006-01-02")
}
