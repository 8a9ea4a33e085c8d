package mongo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"study-service/internal/models"
)

func (p *Provider) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	if err := p.guard("ListBookmarks"); err != nil {
		return nil, err
	}
	cur, err := p.col("bookmarks").Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookmarks []models.Bookmark
	for cur.Next(ctx) {
		var b models.Bookmark
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, cur.Err()
}

func (p *Provider) IsBookmarked(ctx context.Context, userID, questionID string) (bool, error) {
	if err := p.guard("IsBookmarked"); err != nil {
		return false, err
	}
	err := p.col("bookmarks").FindOne(ctx, bson.M{"user_id": userID, "question_id": questionID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ToggleBookmark removes the pair when present, inserts it otherwise, and
// returns the new bookmarked state.
func (p *Provider) ToggleBookmark(ctx context.Context, userID, questionID, notes string) (bool, error) {
	if err := p.guard("ToggleBookmark"); err != nil {
		return false, err
	}
	res, err := p.col("bookmarks").DeleteOne(ctx, bson.M{"user_id": userID, "question_id": questionID})
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}
	_, err = p.col("bookmarks").InsertOne(ctx, models.Bookmark{
		ID:         uuid.NewString(),
		UserID:     userID,
		QuestionID: questionID,
		Notes:      notes,
		CreatedAt:  p.now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
