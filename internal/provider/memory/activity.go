package memory

import (
	"context"

	"github.com/google/uuid"

	"study-service/internal/models"
)

// SaveUserResponse appends the response, assigning its id and timestamp.
// Responses are facts: nothing ever updates or deletes them.
func (p *Provider) SaveUserResponse(ctx context.Context, response *models.UserResponse) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := *response
	stored.ID = uuid.NewString()
	stored.AnsweredAt = p.now()
	p.responses = append(p.responses, stored)
	return nil
}

func (p *Provider) GetUserResponses(ctx context.Context, userID string, filters models.ResponseFilters) ([]models.UserResponse, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	matched := make([]models.UserResponse, 0)
	for _, r := range p.responses {
		if r.UserID != userID {
			continue
		}
		if !filters.Since.IsZero() && r.AnsweredAt.Before(filters.Since) {
			continue
		}
		matched = append(matched, r)
	}
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, nil
}

// GetUserStats aggregates the user's whole response history. A user with no
// responses gets a zero aggregate, not an error.
func (p *Provider) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := &models.UserStats{}
	for _, r := range p.responses {
		if r.UserID != userID {
			continue
		}
		stats.TotalQuestions++
		if r.IsCorrect {
			stats.CorrectAnswers++
		}
		stats.TotalTimeSeconds += r.TimeSpentSeconds
	}
	if stats.TotalQuestions > 0 {
		stats.AverageScore = float64(stats.CorrectAnswers) / float64(stats.TotalQuestions) * 100
	}
	return stats, nil
}
