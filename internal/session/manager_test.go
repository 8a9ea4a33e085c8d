package session

import (
	"sync"
	"testing"
	"time"

	"study-service/internal/models"
	"study-service/internal/quiz"
)

func managerQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:            string(rune('a' + i)),
			CorrectAnswer: "B",
		}
	}
	return questions
}

func TestStartRejectsEmptyQuestionSet(t *testing.T) {
	m := NewManager()
	if _, err := m.Start(nil, models.QuizSettings{}); err != ErrNoQuestions {
		t.Errorf("Expected ErrNoQuestions, got %v", err)
	}
	if m.Current() != nil {
		t.Error("Failed start must leave no live attempt")
	}
}

func TestTransitionsFlowThroughManager(t *testing.T) {
	m := NewManager()
	if _, err := m.Start(managerQuestions(3), models.QuizSettings{QuestionCount: 3}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	m.Answer("a", "B")
	state := m.Next()
	if state.CurrentIndex != 1 {
		t.Errorf("Expected index 1, got %d", state.CurrentIndex)
	}
	state = m.Previous()
	if state.CurrentIndex != 0 {
		t.Errorf("Expected index 0, got %d", state.CurrentIndex)
	}

	state = m.Complete()
	if !state.IsComplete {
		t.Error("Complete did not finish the attempt")
	}

	m.Reset()
	if m.Current() != nil {
		t.Error("Reset must clear the live attempt")
	}
}

func TestCountdownCompletesExpiredAttempt(t *testing.T) {
	m := NewManager()
	m.tickInterval = time.Millisecond

	start := time.Now()
	clock := start
	var clockMu sync.Mutex
	m.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return clock
	}

	expired := make(chan *quiz.State, 1)
	m.SetExpireHandler(func(s *quiz.State) { expired <- s })

	if _, err := m.Start(managerQuestions(3), models.QuizSettings{QuestionCount: 3, TimeLimitMinutes: 1}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Jump the clock past the one-minute budget and let the ticker notice.
	clockMu.Lock()
	clock = start.Add(61 * time.Second)
	clockMu.Unlock()

	select {
	case final := <-expired:
		if !final.IsComplete {
			t.Error("Expiry handler should receive a completed attempt")
		}
		if final.TimeRemaining == nil || *final.TimeRemaining != 0 {
			t.Errorf("Expected zero remaining, got %v", final.TimeRemaining)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Countdown never expired the attempt")
	}

	if state := m.Current(); state == nil || !state.IsComplete {
		t.Error("Live slot should hold the completed attempt")
	}
}

func TestTickerPushesRemainingTime(t *testing.T) {
	m := NewManager()
	m.tickInterval = time.Millisecond

	start := time.Now()
	clock := start
	var clockMu sync.Mutex
	m.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return clock
	}

	if _, err := m.Start(managerQuestions(3), models.QuizSettings{QuestionCount: 3, TimeLimitMinutes: 2}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	clockMu.Lock()
	clock = start.Add(30 * time.Second)
	clockMu.Unlock()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state := m.Current()
		if state.TimeRemaining != nil && *state.TimeRemaining == 90_000 {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("Ticker never pushed the recomputed budget, state: %+v", m.Current())
}

func TestCompleteAndResetCancelTicker(t *testing.T) {
	m := NewManager()
	m.tickInterval = time.Millisecond

	if _, err := m.Start(managerQuestions(3), models.QuizSettings{QuestionCount: 3, TimeLimitMinutes: 5}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	m.Complete()

	m.mu.Lock()
	stopped := m.stop == nil
	m.mu.Unlock()
	if !stopped {
		t.Error("Complete must cancel the countdown ticker")
	}

	if _, err := m.Start(managerQuestions(3), models.QuizSettings{QuestionCount: 3, TimeLimitMinutes: 5}); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	m.Reset()

	m.mu.Lock()
	stopped = m.stop == nil
	m.mu.Unlock()
	if !stopped {
		t.Error("Reset must cancel the countdown ticker")
	}
}

func TestSnapshotAndResume(t *testing.T) {
	m := NewManager()
	if _, err := m.Start(managerQuestions(3), models.QuizSettings{QuestionCount: 3}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	m.Answer("a", "B")
	m.Next()

	snap := m.Snapshot()
	if snap == nil {
		t.Fatal("Expected a snapshot of the live attempt")
	}
	m.Reset()

	state := m.Resume(snap)
	if state.CurrentIndex != 1 {
		t.Errorf("Expected resumed index 1, got %d", state.CurrentIndex)
	}
	if got := state.Answers["a"]; got != "B" {
		t.Errorf("Expected resumed answer B, got %q", got)
	}
}
