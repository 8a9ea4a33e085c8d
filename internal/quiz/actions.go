package quiz

import (
	"time"

	"study-service/internal/models"
)

// Action is one discrete transition request against the quiz state machine.
// The machine itself holds no clock and performs no I/O: actions that need a
// timestamp carry it with them, so every transition replays deterministically.
type Action interface {
	isAction()
}

// Start replaces any attempt in progress with a fresh one. Callers must
// reject empty question sets before dispatching; Start on an empty slice is
// ignored rather than producing an unusable attempt.
type Start struct {
	Questions []models.Question
	Settings  models.QuizSettings
	StartedAt time.Time
}

// Answer records or overwrites the selected option for one question.
type Answer struct {
	QuestionID string
	Option     string
}

// Next advances to the following question, clamped at the last one.
type Next struct{}

// Previous steps back one question, clamped at the first.
type Previous struct{}

// SetTimeRemaining overwrites the countdown budget. The caller computes the
// value from wall-clock elapsed time; the machine never ticks on its own.
type SetTimeRemaining struct {
	Milliseconds int64
}

// Complete marks the attempt finished. Idempotent.
type Complete struct{}

// Reset discards the attempt entirely.
type Reset struct{}

func (Start) isAction()            {}
func (Answer) isAction()           {}
func (Next) isAction()             {}
func (Previous) isAction()         {}
func (SetTimeRemaining) isAction() {}
func (Complete) isAction()         {}
func (Reset) isAction()            {}

// Apply returns the state that follows from one action. It is total: every
// action is defined for every reachable state, and any action other than
// Start applied to an absent state returns the absent state unchanged.
func Apply(state *State, action Action) *State {
	switch a := action.(type) {
	case Start:
		if len(a.Questions) == 0 {
			return state
		}
		next := &State{
			Questions:    a.Questions,
			Settings:     a.Settings,
			CurrentIndex: 0,
			Answers:      make(map[string]string),
			StartTime:    a.StartedAt,
			IsComplete:   false,
		}
		if a.Settings.HasTimeLimit() {
			tr := int64(a.Settings.TimeLimitMinutes) * 60_000
			next.TimeRemaining = &tr
		}
		return next

	case Answer:
		if state == nil || state.IsComplete {
			return state
		}
		if !questionInSet(state.Questions, a.QuestionID) {
			return state
		}
		next := state.clone()
		next.Answers[a.QuestionID] = a.Option
		return next

	case Next:
		if state == nil {
			return state
		}
		next := state.clone()
		next.CurrentIndex = clampIndex(state.CurrentIndex+1, len(state.Questions))
		return next

	case Previous:
		if state == nil {
			return state
		}
		next := state.clone()
		next.CurrentIndex = clampIndex(state.CurrentIndex-1, len(state.Questions))
		return next

	case SetTimeRemaining:
		if state == nil {
			return state
		}
		next := state.clone()
		ms := a.Milliseconds
		if ms < 0 {
			ms = 0
		}
		next.TimeRemaining = &ms
		return next

	case Complete:
		if state == nil || state.IsComplete {
			return state
		}
		next := state.clone()
		next.IsComplete = true
		return next

	case Reset:
		return nil
	}
	return state
}

// questionInSet keeps the answers map from ever holding a key outside the
// attempt's question set.
func questionInSet(questions []models.Question, id string) bool {
	for i := range questions {
		if questions[i].ID == id {
			return true
		}
	}
	return false
}
