package models

// QuizSettings is the user-chosen configuration for one quiz attempt. It is
// fixed when the attempt starts and never changes for its duration.
type QuizSettings struct {
	Category         string `bson:"category" json:"category"`
	Difficulty       string `bson:"difficulty" json:"difficulty"`
	QuestionCount    int    `bson:"question_count" json:"question_count"`
	TimeLimitMinutes int    `bson:"time_limit_minutes,omitempty" json:"time_limit_minutes,omitempty"`
}

// Filters translates the settings into the provider's read filters.
func (s QuizSettings) Filters() QuestionFilters {
	return QuestionFilters{
		Category:   s.Category,
		Difficulty: s.Difficulty,
		Limit:      s.QuestionCount,
	}
}

// HasTimeLimit reports whether this attempt runs against a countdown.
func (s QuizSettings) HasTimeLimit() bool {
	return s.TimeLimitMinutes > 0
}
