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

func (p *Provider) GetUserProgress(ctx context.Context, userID, category string) ([]models.UserProgress, error) {
	if err := p.guard("GetUserProgress"); err != nil {
		return nil, err
	}
	filter := bson.M{"user_id": userID}
	if category != "" {
		filter["category"] = category
	}
	cur, err := p.col("progress").Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.UserProgress
	for cur.Next(ctx) {
		var row models.UserProgress
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, cur.Err()
}

// UpdateUserProgress is a single upsert: $inc the counters, $max the best
// score so it never regresses, and create the row on first practice of a
// category.
func (p *Provider) UpdateUserProgress(ctx context.Context, userID, category string, correct bool, timeSpentSeconds int) error {
	if err := p.guard("UpdateUserProgress"); err != nil {
		return err
	}
	correctInc := 0
	attemptScore := 0.0
	if correct {
		correctInc = 1
		attemptScore = 100.0
	}
	update := bson.M{
		"$inc": bson.M{
			"questions_attempted": 1,
			"questions_correct":   correctInc,
		},
		"$max": bson.M{"best_score": attemptScore},
		"$set": bson.M{"last_practiced": p.now()},
		"$setOnInsert": bson.M{
			"_id":      uuid.NewString(),
			"user_id":  userID,
			"category": category,
		},
	}
	_, err := p.col("progress").UpdateOne(ctx,
		bson.M{"user_id": userID, "category": category},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

func (p *Provider) GetDailyGoal(ctx context.Context, userID, date string) (*models.DailyGoal, error) {
	if err := p.guard("GetDailyGoal"); err != nil {
		return nil, err
	}
	if date == "" {
		date = models.GoalDate(p.now())
	}
	var goal models.DailyGoal
	err := p.col("daily_goals").FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&goal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (p *Provider) UpdateDailyGoal(ctx context.Context, userID string, completedQuestions, completedMinutes int) error {
	if err := p.guard("UpdateDailyGoal"); err != nil {
		return err
	}
	today := models.GoalDate(p.now())
	update := bson.M{
		"$inc": bson.M{
			"completed_questions": completedQuestions,
			"completed_minutes":   completedMinutes,
		},
		"$setOnInsert": bson.M{
			"_id":                 uuid.NewString(),
			"user_id":             userID,
			"date":                today,
			"target_questions":    models.DefaultGoalQuestions,
			"target_time_minutes": models.DefaultGoalTimeMinutes,
		},
	}
	_, err := p.col("daily_goals").UpdateOne(ctx,
		bson.M{"user_id": userID, "date": today},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}
