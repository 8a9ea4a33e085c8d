package quiz

import (
	"encoding/json"
	"fmt"
	"time"

	"study-service/internal/models"
)

// Snapshot is the save-and-exit form of an in-progress attempt. It is a
// best-effort convenience, not authoritative storage: a blob that fails to
// decode or validate is simply dropped by callers.
type Snapshot struct {
	Questions    []models.Question   `json:"questions"`
	Settings     models.QuizSettings `json:"settings"`
	CurrentIndex int                 `json:"current_index"`
	Answers      map[string]string   `json:"answers"`
	StartTime    time.Time           `json:"start_time"`
	SavedAt      time.Time           `json:"saved_at"`
}

// TakeSnapshot captures an in-progress attempt. Completed or absent
// attempts have nothing worth resuming and return nil.
func TakeSnapshot(state *State, now time.Time) *Snapshot {
	if state == nil || state.IsComplete {
		return nil
	}
	answers := make(map[string]string, len(state.Answers))
	for k, v := range state.Answers {
		answers[k] = v
	}
	return &Snapshot{
		Questions:    state.Questions,
		Settings:     state.Settings,
		CurrentIndex: state.CurrentIndex,
		Answers:      answers,
		StartTime:    state.StartTime,
		SavedAt:      now,
	}
}

// Encode serializes the snapshot for the provider's saved-quiz slot.
func (sn *Snapshot) Encode() ([]byte, error) {
	return json.Marshal(sn)
}

// DecodeSnapshot parses and validates a saved blob. Any structural problem
// is an error; callers treat every error as "no saved quiz".
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var sn Snapshot
	if err := json.Unmarshal(data, &sn); err != nil {
		return nil, fmt.Errorf("decode saved quiz: %w", err)
	}
	if len(sn.Questions) == 0 {
		return nil, fmt.Errorf("saved quiz has no questions")
	}
	if sn.CurrentIndex < 0 || sn.CurrentIndex >= len(sn.Questions) {
		return nil, fmt.Errorf("saved quiz index %d out of range", sn.CurrentIndex)
	}
	for qid := range sn.Answers {
		if !questionInSet(sn.Questions, qid) {
			return nil, fmt.Errorf("saved quiz answer for unknown question %q", qid)
		}
	}
	return &sn, nil
}

// Restore rebuilds a live State from the snapshot. The countdown budget, if
// any, is recomputed by the session manager's ticker on the next tick.
func (sn *Snapshot) Restore() *State {
	state := &State{
		Questions:    sn.Questions,
		Settings:     sn.Settings,
		CurrentIndex: clampIndex(sn.CurrentIndex, len(sn.Questions)),
		Answers:      make(map[string]string, len(sn.Answers)),
		StartTime:    sn.StartTime,
	}
	for k, v := range sn.Answers {
		state.Answers[k] = v
	}
	if sn.Settings.HasTimeLimit() {
		tr := int64(sn.Settings.TimeLimitMinutes) * 60_000
		state.TimeRemaining = &tr
	}
	return state
}
