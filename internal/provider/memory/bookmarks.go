package memory

import (
	"context"

	"github.com/google/uuid"

	"study-service/internal/models"
)

func (p *Provider) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	list := make([]models.Bookmark, 0)
	for _, b := range p.bookmarks {
		if b.UserID == userID {
			list = append(list, b)
		}
	}
	return list, nil
}

func (p *Provider) IsBookmarked(ctx context.Context, userID, questionID string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.bookmarkIndex(userID, questionID) >= 0, nil
}

// ToggleBookmark inserts or removes the (user, question) pair and returns
// the new state: true means the question is now bookmarked.
func (p *Provider) ToggleBookmark(ctx context.Context, userID, questionID, notes string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.bookmarkIndex(userID, questionID); i >= 0 {
		p.bookmarks = append(p.bookmarks[:i], p.bookmarks[i+1:]...)
		return false, nil
	}
	p.bookmarks = append(p.bookmarks, models.Bookmark{
		ID:         uuid.NewString(),
		UserID:     userID,
		QuestionID: questionID,
		Notes:      notes,
		CreatedAt:  p.now(),
	})
	return true, nil
}

// bookmarkIndex is a linear scan; callers hold the lock.
func (p *Provider) bookmarkIndex(userID, questionID string) int {
	for i, b := range p.bookmarks {
		if b.UserID == userID && b.QuestionID == questionID {
			return i
		}
	}
	return -1
}
