package service

import (
	"context"

	"study-service/internal/models"
	"study-service/internal/provider"
)

// QuestionService serves the question bank. Content authoring happens
// upstream; this service only reads.
type QuestionService struct {
	Provider provider.DataProvider
}

func NewQuestionService(p provider.DataProvider) *QuestionService {
	return &QuestionService{Provider: p}
}

func (s *QuestionService) ListQuestions(ctx context.Context, filters models.QuestionFilters) ([]models.Question, error) {
	return s.Provider.GetQuestions(ctx, filters)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Provider.GetQuestionByID(ctx, id)
}

func (s *QuestionService) CountQuestions(ctx context.Context, filters models.QuestionFilters) (int, error) {
	return s.Provider.GetQuestionCount(ctx, filters)
}
