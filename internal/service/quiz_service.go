package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"study-service/internal/event"
	"study-service/internal/models"
	"study-service/internal/provider"
	"study-service/internal/quiz"
	"study-service/internal/session"
)

// ErrNoQuestionsAvailable means the filters matched nothing even after the
// provider finished loading, as opposed to the transient empty set seen
// before readiness.
var ErrNoQuestionsAvailable = errors.New("no questions available for the requested filters")

// ErrNoActiveQuiz rejects operations that need an attempt in progress.
var ErrNoActiveQuiz = errors.New("no quiz in progress")

// AnswerFeedback is what the user learns right after answering. Correctness
// and explanation are only filled in when reveal mode (practice) is on;
// exam mode defers everything to the completion summary.
type AnswerFeedback struct {
	State         *quiz.State `json:"state"`
	Revealed      bool        `json:"revealed"`
	IsCorrect     bool        `json:"is_correct,omitempty"`
	CorrectAnswer string      `json:"correct_answer,omitempty"`
	Explanation   string      `json:"explanation,omitempty"`
}

// QuizSummary is the post-completion report.
type QuizSummary struct {
	TotalQuestions    int               `json:"total_questions"`
	Answered          int               `json:"answered"`
	Correct           int               `json:"correct"`
	Score             float64           `json:"score"`
	DurationSeconds   int               `json:"duration_seconds"`
	AnswersByQuestion map[string]string `json:"answers_by_question"`
}

// attemptMeta is the bookkeeping around the live attempt that the pure
// state machine has no business holding.
type attemptMeta struct {
	userID           string
	studySessionID   string
	timeSpentSeconds int
}

// QuizService orchestrates one quiz attempt end to end: it feeds the
// session manager, logs responses as facts, and settles progress, daily
// goals, study sessions and achievements when the attempt finishes.
type QuizService struct {
	Provider provider.DataProvider
	Sessions *session.Manager
	Events   *event.Publisher

	RevealAnswers   bool
	AutosaveEnabled bool

	mu   sync.Mutex
	meta attemptMeta
}

func NewQuizService(p provider.DataProvider, m *session.Manager, ev *event.Publisher, reveal, autosave bool) *QuizService {
	s := &QuizService{
		Provider:        p,
		Sessions:        m,
		Events:          ev,
		RevealAnswers:   reveal,
		AutosaveEnabled: autosave,
	}
	m.SetExpireHandler(s.onCountdownExpired)
	return s
}

// StartQuiz assembles the question set and starts a fresh attempt. It waits
// for provider readiness first so a not-yet-loaded bank is never mistaken
// for an empty one.
func (s *QuizService) StartQuiz(ctx context.Context, userID string, settings models.QuizSettings) (*quiz.State, error) {
	if err := s.Provider.WaitReady(ctx); err != nil {
		return nil, err
	}
	questions, err := s.Provider.GetQuestions(ctx, settings.Filters())
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	state, err := s.Sessions.Start(questions, settings)
	if err != nil {
		return nil, err
	}

	studySessionID, err := s.Provider.StartStudySession(ctx, userID)
	if err != nil {
		// The attempt can proceed without its study-session bracket.
		log.Printf("start study session for %s: %v", userID, err)
	}

	s.mu.Lock()
	s.meta = attemptMeta{userID: userID, studySessionID: studySessionID}
	s.mu.Unlock()

	s.Events.Publish(event.QuizStarted, map[string]any{
		"user_id":        userID,
		"question_count": len(questions),
		"category":       settings.Category,
		"timed":          settings.HasTimeLimit(),
	})
	return state, nil
}

// Answer records the selection on the live attempt, logs the response fact
// and updates per-category progress. Feedback is revealed or withheld
// according to the quiz mode.
func (s *QuizService) Answer(ctx context.Context, userID, questionID, option string, timeSpentSeconds int) (*AnswerFeedback, error) {
	state := s.Sessions.Answer(questionID, option)
	if state == nil {
		return nil, ErrNoActiveQuiz
	}
	if state.IsComplete {
		// The machine dropped the answer; record nothing for it.
		return &AnswerFeedback{State: state}, nil
	}

	var question *models.Question
	for i := range state.Questions {
		if state.Questions[i].ID == questionID {
			question = &state.Questions[i]
			break
		}
	}
	if question == nil {
		return &AnswerFeedback{State: state}, nil
	}

	correct := question.IsCorrect(option)
	response := &models.UserResponse{
		UserID:           userID,
		QuestionID:       questionID,
		SelectedOption:   option,
		IsCorrect:        correct,
		TimeSpentSeconds: timeSpentSeconds,
	}
	if err := s.Provider.SaveUserResponse(ctx, response); err != nil {
		return nil, err
	}
	if err := s.Provider.UpdateUserProgress(ctx, userID, question.Category, correct, timeSpentSeconds); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.meta.timeSpentSeconds += timeSpentSeconds
	s.mu.Unlock()

	s.Events.Publish(event.QuizAnswered, map[string]any{
		"user_id":     userID,
		"question_id": questionID,
	})

	feedback := &AnswerFeedback{State: state}
	if s.RevealAnswers {
		feedback.Revealed = true
		feedback.IsCorrect = correct
		feedback.CorrectAnswer = question.CorrectAnswer
		feedback.Explanation = question.Explanation
	}
	return feedback, nil
}

func (s *QuizService) Next() (*quiz.State, error) {
	state := s.Sessions.Next()
	if state == nil {
		return nil, ErrNoActiveQuiz
	}
	return state, nil
}

func (s *QuizService) Previous() (*quiz.State, error) {
	state := s.Sessions.Previous()
	if state == nil {
		return nil, ErrNoActiveQuiz
	}
	return state, nil
}

func (s *QuizService) Current() *quiz.State {
	return s.Sessions.Current()
}

// Complete finishes the attempt and settles everything that hangs off a
// finished quiz.
func (s *QuizService) Complete(ctx context.Context) (*QuizSummary, error) {
	state := s.Sessions.Complete()
	if state == nil {
		return nil, ErrNoActiveQuiz
	}
	return s.finalize(ctx, state)
}

// onCountdownExpired finalizes an attempt the ticker completed. It runs on
// the ticker goroutine with no request in flight, hence the background
// context.
func (s *QuizService) onCountdownExpired(state *quiz.State) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := s.finalize(ctx, state); err != nil {
		log.Printf("finalize expired quiz: %v", err)
	}
}

func (s *QuizService) finalize(ctx context.Context, state *quiz.State) (*QuizSummary, error) {
	s.mu.Lock()
	meta := s.meta
	s.meta = attemptMeta{}
	s.mu.Unlock()

	summary := &QuizSummary{
		TotalQuestions:    len(state.Questions),
		Answered:          state.AnsweredCount(),
		Correct:           state.CorrectCount(),
		Score:             state.Score(),
		DurationSeconds:   int(time.Since(state.StartTime).Seconds()),
		AnswersByQuestion: state.Answers,
	}

	if meta.userID != "" {
		if meta.studySessionID != "" {
			if err := s.Provider.EndStudySession(ctx, meta.studySessionID, summary.Score, summary.Answered); err != nil {
				log.Printf("end study session %s: %v", meta.studySessionID, err)
			}
		}
		minutes := meta.timeSpentSeconds / 60
		if err := s.Provider.UpdateDailyGoal(ctx, meta.userID, summary.Answered, minutes); err != nil {
			log.Printf("update daily goal for %s: %v", meta.userID, err)
		}
		// A completed quiz consumes any stale saved attempt.
		if err := s.Provider.ClearQuizSnapshot(ctx, meta.userID); err != nil {
			log.Printf("clear saved quiz for %s: %v", meta.userID, err)
		}
		s.unlockEarnedAchievements(ctx, meta.userID, summary)
	}

	s.Events.Publish(event.QuizCompleted, map[string]any{
		"user_id":  meta.userID,
		"score":    summary.Score,
		"answered": summary.Answered,
	})
	return summary, nil
}

func (s *QuizService) unlockEarnedAchievements(ctx context.Context, userID string, summary *QuizSummary) {
	existing, err := s.Provider.GetUserAchievements(ctx, userID)
	if err != nil {
		log.Printf("read achievements for %s: %v", userID, err)
		return
	}
	has := func(achievementType string) bool {
		for _, a := range existing {
			if a.Type == achievementType {
				return true
			}
		}
		return false
	}

	if !has(models.AchievementFirstQuiz) {
		s.unlock(ctx, userID, models.AchievementFirstQuiz, "First Quiz",
			"Completed a first practice quiz")
	}
	if summary.Score == 100 && summary.TotalQuestions > 0 && !has(models.AchievementPerfectScore) {
		s.unlock(ctx, userID, models.AchievementPerfectScore, "Perfect Score",
			"Answered every question in a quiz correctly")
	}
}

func (s *QuizService) unlock(ctx context.Context, userID, achievementType, title, description string) {
	if err := s.Provider.UnlockAchievement(ctx, userID, achievementType, title, description); err != nil {
		log.Printf("unlock %s for %s: %v", achievementType, userID, err)
		return
	}
	s.Events.Publish(event.AchievementUnlocked, map[string]any{
		"user_id": userID,
		"type":    achievementType,
	})
}

// Reset abandons the attempt without settling anything.
func (s *QuizService) Reset() {
	s.Sessions.Reset()
	s.mu.Lock()
	s.meta = attemptMeta{}
	s.mu.Unlock()
}

// SaveAndExit snapshots the live attempt into the user's saved-quiz slot
// and clears the live state. Completed or absent attempts save nothing.
func (s *QuizService) SaveAndExit(ctx context.Context, userID string) error {
	if !s.AutosaveEnabled {
		s.Reset()
		return nil
	}
	snap := s.Sessions.Snapshot()
	if snap == nil {
		return ErrNoActiveQuiz
	}
	blob, err := snap.Encode()
	if err != nil {
		return err
	}
	if err := s.Provider.SaveQuizSnapshot(ctx, userID, blob); err != nil {
		return err
	}
	s.Reset()
	s.Events.Publish(event.QuizSaved, map[string]any{"user_id": userID})
	return nil
}

// Resume consumes the saved-quiz slot and reinstalls the attempt. A
// malformed blob is discarded and behaves exactly like an empty slot: no
// error, nothing to resume.
func (s *QuizService) Resume(ctx context.Context, userID string) (*quiz.State, bool, error) {
	blob, err := s.Provider.LoadQuizSnapshot(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if blob == nil {
		return nil, false, nil
	}
	// The slot is consumed either way: resumed once or dropped as garbage.
	if err := s.Provider.ClearQuizSnapshot(ctx, userID); err != nil {
		log.Printf("clear saved quiz for %s: %v", userID, err)
	}

	snap, err := quiz.DecodeSnapshot(blob)
	if err != nil {
		log.Printf("discarding malformed saved quiz for %s: %v", userID, err)
		return nil, false, nil
	}

	state := s.Sessions.Resume(snap)
	s.mu.Lock()
	s.meta = attemptMeta{userID: userID}
	s.mu.Unlock()

	s.Events.Publish(event.QuizResumed, map[string]any{"user_id": userID})
	return state, true, nil
}

// HasSavedQuiz reports whether a resumable attempt exists without consuming
// it, so the UI can decide to offer the affordance. Malformed blobs read as
// absent.
func (s *QuizService) HasSavedQuiz(ctx context.Context, userID string) (bool, error) {
	blob, err := s.Provider.LoadQuizSnapshot(ctx, userID)
	if err != nil {
		return false, err
	}
	if blob == nil {
		return false, nil
	}
	if _, err := quiz.DecodeSnapshot(blob); err != nil {
		return false, nil
	}
	return true, nil
}
