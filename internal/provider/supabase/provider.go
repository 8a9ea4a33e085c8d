// Package supabase reserves the Supabase backend slot. No adapter is wired
// yet: every operation fails with a NotConfiguredError naming this backend,
// so selecting it by mistake surfaces immediately instead of reading as an
// empty question bank.
package supabase

import (
	"context"

	"study-service/internal/models"
	"study-service/internal/provider"
)

const backendName = "supabase"

type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func fail(operation string) error {
	return &provider.NotConfiguredError{Backend: backendName, Operation: operation}
}

func (p *Provider) GetQuestions(ctx context.Context, filters models.QuestionFilters) ([]models.Question, error) {
	return nil, fail("GetQuestions")
}

func (p *Provider) GetQuestionByID(ctx context.Context, id string) (*models.Question, error) {
	return nil, fail("GetQuestionByID")
}

func (p *Provider) GetQuestionCount(ctx context.Context, filters models.QuestionFilters) (int, error) {
	return 0, fail("GetQuestionCount")
}

func (p *Provider) SaveUserResponse(ctx context.Context, response *models.UserResponse) error {
	return fail("SaveUserResponse")
}

func (p *Provider) GetUserResponses(ctx context.Context, userID string, filters models.ResponseFilters) ([]models.UserResponse, error) {
	return nil, fail("GetUserResponses")
}

func (p *Provider) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	return nil, fail("GetUserStats")
}

func (p *Provider) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return nil, fail("ListBookmarks")
}

func (p *Provider) IsBookmarked(ctx context.Context, userID, questionID string) (bool, error) {
	return false, fail("IsBookmarked")
}

func (p *Provider) ToggleBookmark(ctx context.Context, userID, questionID, notes string) (bool, error) {
	return false, fail("ToggleBookmark")
}

func (p *Provider) GetUserProgress(ctx context.Context, userID, category string) ([]models.UserProgress, error) {
	return nil, fail("GetUserProgress")
}

func (p *Provider) UpdateUserProgress(ctx context.Context, userID, category string, correct bool, timeSpentSeconds int) error {
	return fail("UpdateUserProgress")
}

func (p *Provider) GetDailyGoal(ctx context.Context, userID, date string) (*models.DailyGoal, error) {
	return nil, fail("GetDailyGoal")
}

func (p *Provider) UpdateDailyGoal(ctx context.Context, userID string, completedQuestions, completedMinutes int) error {
	return fail("UpdateDailyGoal")
}

func (p *Provider) StartStudySession(ctx context.Context, userID string) (string, error) {
	return "", fail("StartStudySession")
}

func (p *Provider) EndStudySession(ctx context.Context, sessionID string, score float64, questionsAttempted int) error {
	return fail("EndStudySession")
}

func (p *Provider) GetUserAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	return nil, fail("GetUserAchievements")
}

func (p *Provider) UnlockAchievement(ctx context.Context, userID, achievementType, title, description string) error {
	return fail("UnlockAchievement")
}

func (p *Provider) SaveQuizSnapshot(ctx context.Context, userID string, blob []byte) error {
	return fail("SaveQuizSnapshot")
}

func (p *Provider) LoadQuizSnapshot(ctx context.Context, userID string) ([]byte, error) {
	return nil, fail("LoadQuizSnapshot")
}

func (p *Provider) ClearQuizSnapshot(ctx context.Context, userID string) error {
	return fail("ClearQuizSnapshot")
}

func (p *Provider) GetCurrentUser(ctx context.Context) (*models.User, error) {
	return nil, fail("GetCurrentUser")
}

func (p *Provider) GetUsers(ctx context.Context, campusID string) ([]models.User, error) {
	return nil, fail("GetUsers")
}

func (p *Provider) GetCampuses(ctx context.Context) ([]models.Campus, error) {
	return nil, fail("GetCampuses")
}

func (p *Provider) GetClasses(ctx context.Context, campusID string) ([]models.Class, error) {
	return nil, fail("GetClasses")
}

func (p *Provider) GetClassEnrollments(ctx context.Context, userID string) ([]models.ClassEnrollment, error) {
	return nil, fail("GetClassEnrollments")
}

func (p *Provider) GetBenchmarks(ctx context.Context, category string) ([]models.Benchmark, error) {
	return nil, fail("GetBenchmarks")
}

func (p *Provider) WaitReady(ctx context.Context) error {
	return fail("WaitReady")
}

func (p *Provider) Close(ctx context.Context) error {
	return nil
}
