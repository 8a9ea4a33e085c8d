package service

import (
	"context"

	"study-service/internal/event"
	"study-service/internal/models"
	"study-service/internal/provider"
)

// ProgressService serves everything the progress dashboard shows: stats,
// per-category progress, daily goals, response history, achievements.
type ProgressService struct {
	Provider provider.DataProvider
	Events   *event.Publisher
}

func NewProgressService(p provider.DataProvider, ev *event.Publisher) *ProgressService {
	return &ProgressService{Provider: p, Events: ev}
}

func (s *ProgressService) GetStats(ctx context.Context, userID string) (*models.UserStats, error) {
	return s.Provider.GetUserStats(ctx, userID)
}

func (s *ProgressService) GetProgress(ctx context.Context, userID, category string) ([]models.UserProgress, error) {
	return s.Provider.GetUserProgress(ctx, userID, category)
}

func (s *ProgressService) GetResponses(ctx context.Context, userID string, filters models.ResponseFilters) ([]models.UserResponse, error) {
	return s.Provider.GetUserResponses(ctx, userID, filters)
}

func (s *ProgressService) GetDailyGoal(ctx context.Context, userID, date string) (*models.DailyGoal, error) {
	return s.Provider.GetDailyGoal(ctx, userID, date)
}

func (s *ProgressService) RecordDailyActivity(ctx context.Context, userID string, questions, minutes int) error {
	if err := s.Provider.UpdateDailyGoal(ctx, userID, questions, minutes); err != nil {
		return err
	}
	s.Events.Publish(event.GoalUpdated, map[string]any{
		"user_id":   userID,
		"questions": questions,
		"minutes":   minutes,
	})
	return nil
}

func (s *ProgressService) GetAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	return s.Provider.GetUserAchievements(ctx, userID)
}
