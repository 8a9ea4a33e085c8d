package mongo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"study-service/internal/models"
)

func (p *Provider) SaveUserResponse(ctx context.Context, response *models.UserResponse) error {
	if err := p.guard("SaveUserResponse"); err != nil {
		return err
	}
	stored := *response
	stored.ID = uuid.NewString()
	stored.AnsweredAt = p.now()
	_, err := p.col("responses").InsertOne(ctx, stored)
	return err
}

func (p *Provider) GetUserResponses(ctx context.Context, userID string, filters models.ResponseFilters) ([]models.UserResponse, error) {
	if err := p.guard("GetUserResponses"); err != nil {
		return nil, err
	}
	filter := bson.M{"user_id": userID}
	if !filters.Since.IsZero() {
		filter["answered_at"] = bson.M{"$gte": filters.Since}
	}
	opts := options.Find().SetSort(bson.D{{Key: "answered_at", Value: 1}})
	if filters.Limit > 0 {
		opts.SetLimit(int64(filters.Limit))
	}
	cur, err := p.col("responses").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var responses []models.UserResponse
	for cur.Next(ctx) {
		var r models.UserResponse
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		responses = append(responses, r)
	}
	return responses, cur.Err()
}

func (p *Provider) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	if err := p.guard("GetUserStats"); err != nil {
		return nil, err
	}
	cur, err := p.col("responses").Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stats := &models.UserStats{}
	for cur.Next(ctx) {
		var r models.UserResponse
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		stats.TotalQuestions++
		if r.IsCorrect {
			stats.CorrectAnswers++
		}
		stats.TotalTimeSeconds += r.TimeSpentSeconds
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	if stats.TotalQuestions > 0 {
		stats.AverageScore = float64(stats.CorrectAnswers) / float64(stats.TotalQuestions) * 100
	}
	return stats, nil
}
