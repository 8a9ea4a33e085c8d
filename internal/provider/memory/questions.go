package memory

import (
	"context"

	"study-service/internal/models"
)

// GetQuestions returns the questions passing the filters in their seed
// order, truncated to the limit when one is set.
func (p *Provider) GetQuestions(ctx context.Context, filters models.QuestionFilters) ([]models.Question, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	matched := filterQuestions(p.questions, filters)
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, nil
}

func (p *Provider) GetQuestionByID(ctx context.Context, id string) (*models.Question, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for i := range p.questions {
		if p.questions[i].ID == id {
			q := p.questions[i]
			return &q, nil
		}
	}
	return nil, nil
}

// GetQuestionCount counts under the same filter semantics as GetQuestions,
// ignoring the limit.
func (p *Provider) GetQuestionCount(ctx context.Context, filters models.QuestionFilters) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(filterQuestions(p.questions, filters)), nil
}

// filterQuestions is the single filter implementation shared by reads and
// counts, preserving source order.
func filterQuestions(questions []models.Question, filters models.QuestionFilters) []models.Question {
	matched := make([]models.Question, 0, len(questions))
	for i := range questions {
		if filters.Matches(&questions[i]) {
			matched = append(matched, questions[i])
		}
	}
	return matched
}
