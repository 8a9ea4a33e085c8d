package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"study-service/internal/models"
)

// questionFilter translates the shared filter semantics into a bson query:
// AND across fields, $in across tags, with "all"/"mixed" meaning no filter.
func questionFilter(filters models.QuestionFilters) bson.M {
	filter := bson.M{}
	if filters.Category != "" && filters.Category != models.CategoryAll {
		filter["category"] = filters.Category
	}
	if filters.Difficulty != "" && filters.Difficulty != models.DifficultyMixed {
		filter["difficulty"] = filters.Difficulty
	}
	if len(filters.Tags) > 0 {
		filter["tags"] = bson.M{"$in": filters.Tags}
	}
	return filter
}

func (p *Provider) GetQuestions(ctx context.Context, filters models.QuestionFilters) ([]models.Question, error) {
	if err := p.guard("GetQuestions"); err != nil {
		return nil, err
	}
	opts := options.Find()
	if filters.Limit > 0 {
		opts.SetLimit(int64(filters.Limit))
	}
	cur, err := p.col("questions").Find(ctx, questionFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (p *Provider) GetQuestionByID(ctx context.Context, id string) (*models.Question, error) {
	if err := p.guard("GetQuestionByID"); err != nil {
		return nil, err
	}
	var question models.Question
	err := p.col("questions").FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (p *Provider) GetQuestionCount(ctx context.Context, filters models.QuestionFilters) (int, error) {
	if err := p.guard("GetQuestionCount"); err != nil {
		return 0, err
	}
	count, err := p.col("questions").CountDocuments(ctx, questionFilter(filters))
	return int(count), err
}
