package service

import (
	"context"

	"study-service/internal/event"
	"study-service/internal/models"
	"study-service/internal/provider"
)

type BookmarkService struct {
	Provider provider.DataProvider
	Events   *event.Publisher
}

func NewBookmarkService(p provider.DataProvider, ev *event.Publisher) *BookmarkService {
	return &BookmarkService{Provider: p, Events: ev}
}

func (s *BookmarkService) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return s.Provider.ListBookmarks(ctx, userID)
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, questionID string) (bool, error) {
	return s.Provider.IsBookmarked(ctx, userID, questionID)
}

// Toggle flips the bookmark and returns the new state: true means the
// question is now bookmarked.
func (s *BookmarkService) Toggle(ctx context.Context, userID, questionID, notes string) (bool, error) {
	bookmarked, err := s.Provider.ToggleBookmark(ctx, userID, questionID, notes)
	if err != nil {
		return false, err
	}
	s.Events.Publish(event.BookmarkToggled, map[string]any{
		"user_id":     userID,
		"question_id": questionID,
		"bookmarked":  bookmarked,
	})
	return bookmarked, nil
}
