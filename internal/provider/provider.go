package provider

import (
	"context"

	"study-service/internal/models"
)

// DataProvider is the capability interface between the study application and
// whatever stores its content and activity records. Backends are
// interchangeable: UI-facing code depends only on this contract.
//
// Conventions shared by all backends:
//   - Lookups by id that find nothing return (nil, nil): absence is a
//     normal outcome, not an error.
//   - Every operation takes the acting user explicitly; no backend keeps an
//     implicit "current user" for reads or writes.
//   - A backend that is selected but not bound to its store fails every call
//     with *NotConfiguredError rather than silently doing nothing.
type DataProvider interface {
	// Questions.
	GetQuestions(ctx context.Context, filters models.QuestionFilters) ([]models.Question, error)
	GetQuestionByID(ctx context.Context, id string) (*models.Question, error)
	GetQuestionCount(ctx context.Context, filters models.QuestionFilters) (int, error)

	// Responses and stats. SaveUserResponse assigns the record id and
	// timestamp; callers fill in everything else.
	SaveUserResponse(ctx context.Context, response *models.UserResponse) error
	GetUserResponses(ctx context.Context, userID string, filters models.ResponseFilters) ([]models.UserResponse, error)
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)

	// Bookmarks. ToggleBookmark returns the new bookmarked state: true means
	// the question is now bookmarked.
	ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error)
	IsBookmarked(ctx context.Context, userID, questionID string) (bool, error)
	ToggleBookmark(ctx context.Context, userID, questionID, notes string) (bool, error)

	// Per-category progress. Category "" on the read means all categories.
	GetUserProgress(ctx context.Context, userID, category string) ([]models.UserProgress, error)
	UpdateUserProgress(ctx context.Context, userID, category string, correct bool, timeSpentSeconds int) error

	// Daily goals. Date "" on the read means today; the upsert always
	// targets today and creates the row with default targets when absent.
	GetDailyGoal(ctx context.Context, userID, date string) (*models.DailyGoal, error)
	UpdateDailyGoal(ctx context.Context, userID string, completedQuestions, completedMinutes int) error

	// Study sessions. EndStudySession is a no-op for unknown ids.
	StartStudySession(ctx context.Context, userID string) (string, error)
	EndStudySession(ctx context.Context, sessionID string, score float64, questionsAttempted int) error

	// Achievements, newest first on read.
	GetUserAchievements(ctx context.Context, userID string) ([]models.Achievement, error)
	UnlockAchievement(ctx context.Context, userID, achievementType, title, description string) error

	// Saved quiz slot: one best-effort snapshot per user. Load returns
	// (nil, nil) when the slot is empty.
	SaveQuizSnapshot(ctx context.Context, userID string, blob []byte) error
	LoadQuizSnapshot(ctx context.Context, userID string) ([]byte, error)
	ClearQuizSnapshot(ctx context.Context, userID string) error

	// Read-only directory data.
	GetCurrentUser(ctx context.Context) (*models.User, error)
	GetUsers(ctx context.Context, campusID string) ([]models.User, error)
	GetCampuses(ctx context.Context) ([]models.Campus, error)
	GetClasses(ctx context.Context, campusID string) ([]models.Class, error)
	GetClassEnrollments(ctx context.Context, userID string) ([]models.ClassEnrollment, error)
	GetBenchmarks(ctx context.Context, category string) ([]models.Benchmark, error)

	// WaitReady blocks until the backend's content is loaded, or the context
	// ends. Backends without an asynchronous seed return immediately.
	// Question reads issued before readiness may observe a transient empty
	// set; callers deciding "no questions exist" must wait first.
	WaitReady(ctx context.Context) error

	Close(ctx context.Context) error
}
