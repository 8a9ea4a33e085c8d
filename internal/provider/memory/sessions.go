package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"study-service/internal/models"
)

func (p *Provider) StartStudySession(ctx context.Context, userID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session := models.StudySession{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartTime: p.now(),
		Status:    models.SessionActive,
	}
	p.sessions = append(p.sessions, session)
	return session.ID, nil
}

// EndStudySession closes the matching session; an unknown id is ignored.
func (p *Provider) EndStudySession(ctx context.Context, sessionID string, score float64, questionsAttempted int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.sessions {
		s := &p.sessions[i]
		if s.ID != sessionID {
			continue
		}
		s.EndTime = p.now()
		s.Score = score
		s.QuestionsAttempted = questionsAttempted
		s.Status = models.SessionCompleted
		return nil
	}
	return nil
}

func (p *Provider) GetUserAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	list := make([]models.Achievement, 0)
	for _, a := range p.achievements {
		if a.UserID == userID {
			list = append(list, a)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].UnlockedAt.After(list[j].UnlockedAt)
	})
	return list, nil
}

func (p *Provider) UnlockAchievement(ctx context.Context, userID, achievementType, title, description string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.achievements = append(p.achievements, models.Achievement{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        achievementType,
		Title:       title,
		Description: description,
		UnlockedAt:  p.now(),
	})
	return nil
}

func (p *Provider) SaveQuizSnapshot(ctx context.Context, userID string, blob []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	p.snapshots[userID] = stored
	return nil
}

func (p *Provider) LoadQuizSnapshot(ctx context.Context, userID string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	blob, ok := p.snapshots[userID]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (p *Provider) ClearQuizSnapshot(ctx context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.snapshots, userID)
	return nil
}
