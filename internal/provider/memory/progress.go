package memory

import (
	"context"

	"github.com/google/uuid"

	"study-service/internal/models"
)

func (p *Provider) GetUserProgress(ctx context.Context, userID, category string) ([]models.UserProgress, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	rows := make([]models.UserProgress, 0)
	for _, row := range p.progress {
		if row.UserID != userID {
			continue
		}
		if category != "" && row.Category != category {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdateUserProgress upserts the (user, category) row: attempts always
// increment, corrects increment iff the answer was right, and the best score
// never regresses.
func (p *Provider) UpdateUserProgress(ctx context.Context, userID, category string, correct bool, timeSpentSeconds int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	attemptScore := 0.0
	if correct {
		attemptScore = 100.0
	}

	for i := range p.progress {
		row := &p.progress[i]
		if row.UserID != userID || row.Category != category {
			continue
		}
		row.QuestionsAttempted++
		if correct {
			row.QuestionsCorrect++
		}
		if attemptScore > row.BestScore {
			row.BestScore = attemptScore
		}
		row.LastPracticed = p.now()
		return nil
	}

	row := models.UserProgress{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Category:           category,
		QuestionsAttempted: 1,
		BestScore:          attemptScore,
		LastPracticed:      p.now(),
	}
	if correct {
		row.QuestionsCorrect = 1
	}
	p.progress = append(p.progress, row)
	return nil
}

// GetDailyGoal returns the row for the given date, defaulting to today.
// Absence is (nil, nil).
func (p *Provider) GetDailyGoal(ctx context.Context, userID, date string) (*models.DailyGoal, error) {
	if date == "" {
		date = models.GoalDate(p.now())
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, g := range p.goals {
		if g.UserID == userID && g.Date == date {
			goal := g
			return &goal, nil
		}
	}
	return nil, nil
}

// UpdateDailyGoal upserts today's row, creating it with the default targets
// on first activity of the day.
func (p *Provider) UpdateDailyGoal(ctx context.Context, userID string, completedQuestions, completedMinutes int) error {
	today := models.GoalDate(p.now())

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.goals {
		g := &p.goals[i]
		if g.UserID == userID && g.Date == today {
			g.CompletedQuestions += completedQuestions
			g.CompletedMinutes += completedMinutes
			return nil
		}
	}
	p.goals = append(p.goals, models.DailyGoal{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Date:               today,
		TargetQuestions:    models.DefaultGoalQuestions,
		TargetTimeMinutes:  models.DefaultGoalTimeMinutes,
		CompletedQuestions: completedQuestions,
		CompletedMinutes:   completedMinutes,
	})
	return nil
}
