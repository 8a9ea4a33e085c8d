package quiz

import (
	"time"

	"study-service/internal/models"
)

// State is one live quiz attempt. A nil *State means no attempt is in
// progress. Values are treated as immutable: Apply returns a new State and
// never writes through the one it was given.
type State struct {
	Questions     []models.Question   `json:"questions"`
	Settings      models.QuizSettings `json:"settings"`
	CurrentIndex  int                 `json:"current_index"`
	Answers       map[string]string   `json:"answers"`
	StartTime     time.Time           `json:"start_time"`
	TimeRemaining *int64              `json:"time_remaining_ms,omitempty"`
	IsComplete    bool                `json:"is_complete"`
}

// CurrentQuestion returns the question at the current index.
func (s *State) CurrentQuestion() *models.Question {
	if s == nil || len(s.Questions) == 0 {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// AnswerFor returns the recorded option for a question, if any.
func (s *State) AnswerFor(questionID string) (string, bool) {
	if s == nil {
		return "", false
	}
	a, ok := s.Answers[questionID]
	return a, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *State) AnsweredCount() int {
	if s == nil {
		return 0
	}
	return len(s.Answers)
}

// CorrectCount derives the number of correct answers by comparing each
// recorded answer against its question. Correctness is never stored on the
// state itself.
func (s *State) CorrectCount() int {
	if s == nil {
		return 0
	}
	correct := 0
	for i := range s.Questions {
		if a, ok := s.Answers[s.Questions[i].ID]; ok && s.Questions[i].IsCorrect(a) {
			correct++
		}
	}
	return correct
}

// Score returns the percentage of questions answered correctly, 0 for an
// empty attempt.
func (s *State) Score() float64 {
	if s == nil || len(s.Questions) == 0 {
		return 0
	}
	return float64(s.CorrectCount()) / float64(len(s.Questions)) * 100
}

// clone returns a shallow copy with its own answers map. The question slice
// is shared: question content is immutable at runtime.
func (s *State) clone() *State {
	next := *s
	next.Answers = make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		next.Answers[k] = v
	}
	if s.TimeRemaining != nil {
		tr := *s.TimeRemaining
		next.TimeRemaining = &tr
	}
	return &next
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length-1 {
		return length - 1
	}
	return i
}
