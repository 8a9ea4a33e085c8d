package mongo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"study-service/internal/models"
)

func (p *Provider) StartStudySession(ctx context.Context, userID string) (string, error) {
	if err := p.guard("StartStudySession"); err != nil {
		return "", err
	}
	session := models.StudySession{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartTime: p.now(),
		Status:    models.SessionActive,
	}
	if _, err := p.col("study_sessions").InsertOne(ctx, session); err != nil {
		return "", err
	}
	return session.ID, nil
}

func (p *Provider) EndStudySession(ctx context.Context, sessionID string, score float64, questionsAttempted int) error {
	if err := p.guard("EndStudySession"); err != nil {
		return err
	}
	// Zero matches (unknown id) is deliberately not an error.
	_, err := p.col("study_sessions").UpdateOne(ctx,
		bson.M{"_id": sessionID},
		bson.M{"$set": bson.M{
			"end_time":            p.now(),
			"score":               score,
			"questions_attempted": questionsAttempted,
			"status":              models.SessionCompleted,
		}},
	)
	return err
}

func (p *Provider) GetUserAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	if err := p.guard("GetUserAchievements"); err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "unlocked_at", Value: -1}})
	cur, err := p.col("achievements").Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var achievements []models.Achievement
	for cur.Next(ctx) {
		var a models.Achievement
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, cur.Err()
}

func (p *Provider) UnlockAchievement(ctx context.Context, userID, achievementType, title, description string) error {
	if err := p.guard("UnlockAchievement"); err != nil {
		return err
	}
	_, err := p.col("achievements").InsertOne(ctx, models.Achievement{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        achievementType,
		Title:       title,
		Description: description,
		UnlockedAt:  p.now(),
	})
	return err
}

// savedQuiz is the snapshot slot document: one per user, raw blob inside.
type savedQuiz struct {
	UserID string `bson:"_id"`
	Blob   []byte `bson:"blob"`
}

func (p *Provider) SaveQuizSnapshot(ctx context.Context, userID string, blob []byte) error {
	if err := p.guard("SaveQuizSnapshot"); err != nil {
		return err
	}
	_, err := p.col("saved_quizzes").ReplaceOne(ctx,
		bson.M{"_id": userID},
		savedQuiz{UserID: userID, Blob: blob},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (p *Provider) LoadQuizSnapshot(ctx context.Context, userID string) ([]byte, error) {
	if err := p.guard("LoadQuizSnapshot"); err != nil {
		return nil, err
	}
	var doc savedQuiz
	err := p.col("saved_quizzes").FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Blob, nil
}

func (p *Provider) ClearQuizSnapshot(ctx context.Context, userID string) error {
	if err := p.guard("ClearQuizSnapshot"); err != nil {
		return err
	}
	_, err := p.col("saved_quizzes").DeleteOne(ctx, bson.M{"_id": userID})
	return err
}
