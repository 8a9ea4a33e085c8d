package models

import (
	"encoding/json"
	"testing"
)

func TestQuestionLegacyRationaleField(t *testing.T) {
	testCases := []struct {
		name     string
		blob     string
		expected string
	}{
		{
			"explanation only",
			`{"id": "q1", "explanation": "modern"}`,
			"modern",
		},
		{
			"legacy rationale only",
			`{"id": "q1", "rationale": "legacy"}`,
			"legacy",
		},
		{
			"explanation wins over rationale",
			`{"id": "q1", "explanation": "modern", "rationale": "legacy"}`,
			"modern",
		},
		{
			"neither present",
			`{"id": "q1"}`,
			"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var q Question
			if err := json.Unmarshal([]byte(tc.blob), &q); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if q.Explanation != tc.expected {
				t.Errorf("Expected explanation %q, got %q", tc.expected, q.Explanation)
			}
		})
	}
}

func TestQuestionFilterMatching(t *testing.T) {
	question := Question{
		ID:         "q1",
		Category:   "Sterilization",
		Difficulty: DifficultyHard,
		Tags:       []string{"steam", "autoclave"},
	}

	testCases := []struct {
		name    string
		filters QuestionFilters
		matches bool
	}{
		{"empty filters", QuestionFilters{}, true},
		{"category match", QuestionFilters{Category: "Sterilization"}, true},
		{"category mismatch", QuestionFilters{Category: "Anatomy"}, false},
		{"category all", QuestionFilters{Category: CategoryAll}, true},
		{"difficulty match", QuestionFilters{Difficulty: DifficultyHard}, true},
		{"difficulty mismatch", QuestionFilters{Difficulty: DifficultyEasy}, false},
		{"difficulty mixed", QuestionFilters{Difficulty: DifficultyMixed}, true},
		{"tag overlap", QuestionFilters{Tags: []string{"nope", "steam"}}, true},
		{"no tag overlap", QuestionFilters{Tags: []string{"nope"}}, false},
		{"and semantics", QuestionFilters{Category: "Sterilization", Difficulty: DifficultyEasy}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filters.Matches(&question); got != tc.matches {
				t.Errorf("Matches = %v, expected %v", got, tc.matches)
			}
		})
	}
}
