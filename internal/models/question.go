package models

import "encoding/json"

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

// Difficulty tiers for a question. "mixed" is a filter value only and never
// appears on a stored question.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyMixed  = "mixed"
)

// CategoryAll is the filter value meaning "no category filter".
const CategoryAll = "all"

type Question struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	Category      string   `bson:"category" json:"category"`
	Content       string   `bson:"content" json:"content"`
	Options       []Option `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correct_answer" json:"correct_answer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
	Difficulty    string   `bson:"difficulty" json:"difficulty"`
	Tags          []string `bson:"tags" json:"tags"`
}

// UnmarshalJSON accepts the legacy content format where the explanation was
// published under "rationale". When both fields are present "explanation"
// wins.
func (q *Question) UnmarshalJSON(data []byte) error {
	type questionAlias Question
	aux := struct {
		*questionAlias
		Rationale string `json:"rationale"`
	}{questionAlias: (*questionAlias)(q)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if q.Explanation == "" {
		q.Explanation = aux.Rationale
	}
	return nil
}

// IsCorrect reports whether the given option id answers this question.
func (q *Question) IsCorrect(optionID string) bool {
	return optionID != "" && optionID == q.CorrectAnswer
}

// QuestionFilters narrows question reads. Zero values mean "no filter";
// Category "all" and Difficulty "mixed" are treated the same as empty.
// Category, Difficulty and Tags compose with AND semantics; within Tags any
// overlap matches.
type QuestionFilters struct {
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// Matches reports whether q passes the category/difficulty/tag filters.
// Limit is truncation, not matching, and is ignored here.
func (f QuestionFilters) Matches(q *Question) bool {
	if f.Category != "" && f.Category != CategoryAll && q.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && f.Difficulty != DifficultyMixed && q.Difficulty != f.Difficulty {
		return false
	}
	if len(f.Tags) > 0 {
		found := false
		for _, want := range f.Tags {
			for _, have := range q.Tags {
				if want == have {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
