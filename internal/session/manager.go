// Package session hosts the one live quiz attempt. The state machine in
// internal/quiz is pure; this manager gives it a home: a single slot behind
// a mutex, plus the countdown ticker that the machine itself refuses to own.
package session

import (
	"errors"
	"sync"
	"time"

	"study-service/internal/models"
	"study-service/internal/quiz"
)

// ErrNoQuestions rejects starting an attempt with an empty question set.
var ErrNoQuestions = errors.New("cannot start a quiz with no questions")

// Manager serializes every transition of the single live attempt. While a
// timed attempt runs, a ticker goroutine recomputes the remaining budget
// from wall clock once a second and completes the attempt at zero. The
// ticker is always cancelled on Complete and Reset so no callback outlives
// its attempt.
type Manager struct {
	mu   sync.Mutex
	live *quiz.State
	stop chan struct{}

	now          func() time.Time
	tickInterval time.Duration

	// onExpire runs outside the lock after the countdown completes the
	// attempt, carrying the final state.
	onExpire func(*quiz.State)
}

func NewManager() *Manager {
	return &Manager{
		now:          time.Now,
		tickInterval: time.Second,
	}
}

// SetExpireHandler installs the countdown-expiry callback. Set once during
// wiring, before any attempt starts.
func (m *Manager) SetExpireHandler(fn func(*quiz.State)) {
	m.onExpire = fn
}

// Current returns the live state, nil when no attempt is in progress.
func (m *Manager) Current() *quiz.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live
}

// Start replaces any attempt in progress with a fresh one and arms the
// countdown when the settings carry a time limit.
func (m *Manager) Start(questions []models.Question, settings models.QuizSettings) (*quiz.State, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTickerLocked()
	m.live = quiz.Apply(nil, quiz.Start{
		Questions: questions,
		Settings:  settings,
		StartedAt: m.now(),
	})
	if settings.HasTimeLimit() {
		m.startTickerLocked()
	}
	return m.live, nil
}

// Resume reinstalls a saved attempt. The restored countdown budget is
// nominal; the first tick recomputes it from wall clock against the
// original start time.
func (m *Manager) Resume(snapshot *quiz.Snapshot) *quiz.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTickerLocked()
	m.live = snapshot.Restore()
	if m.live.Settings.HasTimeLimit() {
		m.startTickerLocked()
	}
	return m.live
}

// Answer records an option for a question on the live attempt.
func (m *Manager) Answer(questionID, option string) *quiz.State {
	return m.apply(quiz.Answer{QuestionID: questionID, Option: option})
}

func (m *Manager) Next() *quiz.State {
	return m.apply(quiz.Next{})
}

func (m *Manager) Previous() *quiz.State {
	return m.apply(quiz.Previous{})
}

// Complete finishes the attempt and cancels the countdown.
func (m *Manager) Complete() *quiz.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.live = quiz.Apply(m.live, quiz.Complete{})
	m.stopTickerLocked()
	return m.live
}

// Reset discards the attempt and cancels the countdown.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.live = quiz.Apply(m.live, quiz.Reset{})
	m.stopTickerLocked()
}

// Snapshot captures the live attempt for save-and-exit, nil when there is
// nothing in progress worth saving.
func (m *Manager) Snapshot() *quiz.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return quiz.TakeSnapshot(m.live, m.now())
}

func (m *Manager) apply(action quiz.Action) *quiz.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.live = quiz.Apply(m.live, action)
	return m.live
}

func (m *Manager) startTickerLocked() {
	stop := make(chan struct{})
	m.stop = stop
	go m.runTicker(stop)
}

func (m *Manager) stopTickerLocked() {
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}
}

func (m *Manager) runTicker(stop chan struct{}) {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			expired, final := m.tick()
			if expired {
				if m.onExpire != nil {
					m.onExpire(final)
				}
				return
			}
		}
	}
}

// tick pushes the recomputed remaining time into the machine and completes
// the attempt when the budget is gone. Returns the final state on expiry.
func (m *Manager) tick() (bool, *quiz.State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live == nil || m.live.IsComplete || !m.live.Settings.HasTimeLimit() {
		return false, nil
	}

	limitMS := int64(m.live.Settings.TimeLimitMinutes) * 60_000
	elapsedMS := m.now().Sub(m.live.StartTime).Milliseconds()
	remaining := limitMS - elapsedMS

	m.live = quiz.Apply(m.live, quiz.SetTimeRemaining{Milliseconds: remaining})
	if remaining > 0 {
		return false, nil
	}

	m.live = quiz.Apply(m.live, quiz.Complete{})
	m.stopTickerLocked()
	return true, m.live
}
