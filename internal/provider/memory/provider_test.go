package memory

import (
	"context"
	"testing"
	"time"

	"study-service/internal/models"
)

func TestSeedLoadAndReadiness(t *testing.T) {
	p := New()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.WaitReady(ctx); err != nil {
		t.Fatalf("WaitReady failed: %v", err)
	}
	questions, err := p.GetQuestions(ctx, models.QuestionFilters{})
	if err != nil {
		t.Fatalf("GetQuestions failed: %v", err)
	}
	if len(questions) != 12 {
		t.Fatalf("Expected 12 seeded questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Explanation == "" {
			t.Errorf("Question %s has no explanation (legacy rationale not honored?)", q.ID)
		}
		if len(q.Options) != 4 {
			t.Errorf("Question %s has %d options, expected 4", q.ID, len(q.Options))
		}
	}
}

func TestWaitReadyHonorsContext(t *testing.T) {
	p := &Provider{ready: make(chan struct{}), now: time.Now}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := p.WaitReady(ctx); err == nil {
		t.Error("Expected context error while seed never resolves")
	}
}

func TestQuestionFilteringScenarios(t *testing.T) {
	p := New()
	ctx := context.Background()
	if err := p.WaitReady(ctx); err != nil {
		t.Fatalf("WaitReady failed: %v", err)
	}

	t.Run("category with limit keeps source order", func(t *testing.T) {
		questions, err := p.GetQuestions(ctx, models.QuestionFilters{Category: "Sterilization", Limit: 2})
		if err != nil {
			t.Fatalf("GetQuestions failed: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("Expected 2 Sterilization questions, got %d", len(questions))
		}
		if questions[0].ID != "q-003" || questions[1].ID != "q-004" {
			t.Errorf("Expected q-003 then q-004, got %s then %s", questions[0].ID, questions[1].ID)
		}
	})

	t.Run("count ignores limit", func(t *testing.T) {
		count, err := p.GetQuestionCount(ctx, models.QuestionFilters{Category: "Sterilization", Limit: 1})
		if err != nil {
			t.Fatalf("GetQuestionCount failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Expected count 2, got %d", count)
		}
	})

	t.Run("all and mixed mean no filter", func(t *testing.T) {
		count, err := p.GetQuestionCount(ctx, models.QuestionFilters{
			Category:   models.CategoryAll,
			Difficulty: models.DifficultyMixed,
		})
		if err != nil {
			t.Fatalf("GetQuestionCount failed: %v", err)
		}
		if count != 12 {
			t.Errorf("Expected all 12 questions, got %d", count)
		}
	})

	t.Run("tags match on any overlap", func(t *testing.T) {
		questions, err := p.GetQuestions(ctx, models.QuestionFilters{Tags: []string{"cardiac", "autoclave"}})
		if err != nil {
			t.Fatalf("GetQuestions failed: %v", err)
		}
		// q-002 and q-012 are cardiac; q-003 and q-004 are autoclave.
		if len(questions) != 4 {
			t.Errorf("Expected 4 tag matches, got %d", len(questions))
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		q, err := p.GetQuestionByID(ctx, "q-007")
		if err != nil {
			t.Fatalf("GetQuestionByID failed: %v", err)
		}
		if q == nil || q.Category != "Instrumentation" {
			t.Errorf("Unexpected question: %+v", q)
		}

		missing, err := p.GetQuestionByID(ctx, "q-999")
		if err != nil {
			t.Fatalf("Missing id should not error: %v", err)
		}
		if missing != nil {
			t.Errorf("Expected absent marker for unknown id, got %+v", missing)
		}
	})
}

func TestBookmarkToggleRoundTrip(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	before, _ := p.ListBookmarks(ctx, "u1")

	added, err := p.ToggleBookmark(ctx, "u1", "q-001", "review before exam")
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if !added {
		t.Error("First toggle should report bookmarked")
	}
	if marked, _ := p.IsBookmarked(ctx, "u1", "q-001"); !marked {
		t.Error("IsBookmarked should see the new bookmark")
	}

	removed, err := p.ToggleBookmark(ctx, "u1", "q-001", "")
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if removed {
		t.Error("Second toggle should report un-bookmarked")
	}

	after, _ := p.ListBookmarks(ctx, "u1")
	if len(after) != len(before) {
		t.Errorf("Toggle pair should leave bookmark count unchanged: %d vs %d", len(after), len(before))
	}
}

func TestBookmarksAreScopedPerUser(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	p.ToggleBookmark(ctx, "u1", "q-001", "")
	p.ToggleBookmark(ctx, "u2", "q-002", "")

	list, _ := p.ListBookmarks(ctx, "u1")
	if len(list) != 1 || list[0].QuestionID != "q-001" {
		t.Errorf("Expected only u1's bookmark, got %+v", list)
	}
}

func TestProgressUpsertAndBestScore(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	if err := p.UpdateUserProgress(ctx, "u1", "Anatomy", true, 30); err != nil {
		t.Fatalf("UpdateUserProgress failed: %v", err)
	}

	rows, _ := p.GetUserProgress(ctx, "u1", "Anatomy")
	if len(rows) != 1 {
		t.Fatalf("Expected one progress row, got %d", len(rows))
	}
	row := rows[0]
	if row.QuestionsAttempted != 1 || row.QuestionsCorrect != 1 || row.BestScore != 100 {
		t.Errorf("Unexpected fresh row: %+v", row)
	}

	if err := p.UpdateUserProgress(ctx, "u1", "Anatomy", false, 45); err != nil {
		t.Fatalf("UpdateUserProgress failed: %v", err)
	}
	rows, _ = p.GetUserProgress(ctx, "u1", "Anatomy")
	row = rows[0]
	if row.QuestionsAttempted != 2 {
		t.Errorf("Expected 2 attempts, got %d", row.QuestionsAttempted)
	}
	if row.QuestionsCorrect != 1 {
		t.Errorf("Expected 1 correct, got %d", row.QuestionsCorrect)
	}
	if row.BestScore != 100 {
		t.Errorf("Best score must not regress, got %f", row.BestScore)
	}
}

func TestProgressCategoryFilterOnRead(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	p.UpdateUserProgress(ctx, "u1", "Anatomy", true, 10)
	p.UpdateUserProgress(ctx, "u1", "Pharmacology", false, 20)

	all, _ := p.GetUserProgress(ctx, "u1", "")
	if len(all) != 2 {
		t.Errorf("Expected rows for both categories, got %d", len(all))
	}
	one, _ := p.GetUserProgress(ctx, "u1", "Pharmacology")
	if len(one) != 1 || one[0].Category != "Pharmacology" {
		t.Errorf("Expected only the Pharmacology row, got %+v", one)
	}
}

func TestDailyGoalUpsertWithDefaults(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	goal, err := p.GetDailyGoal(ctx, "u1", "")
	if err != nil {
		t.Fatalf("GetDailyGoal failed: %v", err)
	}
	if goal != nil {
		t.Fatalf("Expected no goal before any activity, got %+v", goal)
	}

	if err := p.UpdateDailyGoal(ctx, "u1", 5, 10); err != nil {
		t.Fatalf("UpdateDailyGoal failed: %v", err)
	}
	goal, _ = p.GetDailyGoal(ctx, "u1", "")
	if goal == nil {
		t.Fatal("Expected a goal row after activity")
	}
	if goal.TargetQuestions != models.DefaultGoalQuestions || goal.TargetTimeMinutes != models.DefaultGoalTimeMinutes {
		t.Errorf("Expected default targets, got %+v", goal)
	}
	if goal.CompletedQuestions != 5 || goal.CompletedMinutes != 10 {
		t.Errorf("Unexpected completed counters: %+v", goal)
	}

	p.UpdateDailyGoal(ctx, "u1", 3, 5)
	goal, _ = p.GetDailyGoal(ctx, "u1", models.GoalDate(time.Now()))
	if goal.CompletedQuestions != 8 || goal.CompletedMinutes != 15 {
		t.Errorf("Counters should accumulate, got %+v", goal)
	}
}

func TestUserStatsAggregate(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	empty, err := p.GetUserStats(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserStats failed: %v", err)
	}
	if empty.AverageScore != 0 {
		t.Errorf("No attempts should mean average 0, got %f", empty.AverageScore)
	}

	responses := []models.UserResponse{
		{UserID: "u1", QuestionID: "q-001", SelectedOption: "B", IsCorrect: true, TimeSpentSeconds: 20},
		{UserID: "u1", QuestionID: "q-002", SelectedOption: "A", IsCorrect: false, TimeSpentSeconds: 35},
		{UserID: "u1", QuestionID: "q-003", SelectedOption: "C", IsCorrect: true, TimeSpentSeconds: 40},
		{UserID: "u2", QuestionID: "q-001", SelectedOption: "B", IsCorrect: true, TimeSpentSeconds: 5},
	}
	for i := range responses {
		if err := p.SaveUserResponse(ctx, &responses[i]); err != nil {
			t.Fatalf("SaveUserResponse failed: %v", err)
		}
	}

	stats, _ := p.GetUserStats(ctx, "u1")
	if stats.TotalQuestions != 3 || stats.CorrectAnswers != 2 {
		t.Errorf("Unexpected aggregate: %+v", stats)
	}
	if stats.AverageScore < 66.6 || stats.AverageScore > 66.7 {
		t.Errorf("Expected average near 66.67, got %f", stats.AverageScore)
	}
	if stats.TotalTimeSeconds != 95 {
		t.Errorf("Expected 95s total time, got %d", stats.TotalTimeSeconds)
	}
}

func TestStudySessionLifecycle(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	id, err := p.StartStudySession(ctx, "u1")
	if err != nil {
		t.Fatalf("StartStudySession failed: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a session id")
	}

	if err := p.EndStudySession(ctx, id, 80, 10); err != nil {
		t.Fatalf("EndStudySession failed: %v", err)
	}
	if p.sessions[0].Status != models.SessionCompleted || p.sessions[0].Score != 80 {
		t.Errorf("Session not closed properly: %+v", p.sessions[0])
	}

	if err := p.EndStudySession(ctx, "no-such-session", 50, 1); err != nil {
		t.Errorf("Unknown session id must be a no-op, got %v", err)
	}
}

func TestAchievementsNewestFirst(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	base := time.Now()
	clock := base
	p.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	p.UnlockAchievement(ctx, "u1", models.AchievementFirstQuiz, "First Quiz", "Completed a first quiz")
	p.UnlockAchievement(ctx, "u1", models.AchievementPerfectScore, "Perfect Score", "Answered every question correctly")

	list, err := p.GetUserAchievements(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserAchievements failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 achievements, got %d", len(list))
	}
	if list[0].Type != models.AchievementPerfectScore {
		t.Errorf("Expected newest achievement first, got %s", list[0].Type)
	}
}

func TestQuizSnapshotSlot(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	if blob, err := p.LoadQuizSnapshot(ctx, "u1"); err != nil || blob != nil {
		t.Fatalf("Empty slot should be (nil, nil), got (%v, %v)", blob, err)
	}

	if err := p.SaveQuizSnapshot(ctx, "u1", []byte(`{"saved": true}`)); err != nil {
		t.Fatalf("SaveQuizSnapshot failed: %v", err)
	}
	blob, err := p.LoadQuizSnapshot(ctx, "u1")
	if err != nil || string(blob) != `{"saved": true}` {
		t.Fatalf("Unexpected load result: (%s, %v)", blob, err)
	}

	if err := p.ClearQuizSnapshot(ctx, "u1"); err != nil {
		t.Fatalf("ClearQuizSnapshot failed: %v", err)
	}
	if blob, _ := p.LoadQuizSnapshot(ctx, "u1"); blob != nil {
		t.Error("Slot should be empty after clear")
	}
}

func TestDirectorySeed(t *testing.T) {
	p := NewSeeded(nil)
	ctx := context.Background()

	user, err := p.GetCurrentUser(ctx)
	if err != nil || user == nil {
		t.Fatalf("Expected the seeded user, got (%v, %v)", user, err)
	}
	campuses, _ := p.GetCampuses(ctx)
	if len(campuses) != 1 {
		t.Errorf("Expected exactly one seeded campus, got %d", len(campuses))
	}
	users, _ := p.GetUsers(ctx, campuses[0].ID)
	if len(users) != 1 || users[0].ID != user.ID {
		t.Errorf("Campus filter should find the seeded user, got %+v", users)
	}
}
