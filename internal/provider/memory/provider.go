// Package memory is the in-process DataProvider backend. It is the default
// backend for development and tests: activity tables start empty, the
// directory is seeded with one user and one campus, and the question bank is
// loaded asynchronously from the bundled content file.
package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"
	"sync"
	"time"

	"study-service/internal/models"
)

//go:embed seed/questions.json
var seedQuestions []byte

const seedUserID = "user-001"

// Provider holds every table in memory behind one lock. Question content is
// unavailable until the seed load resolves; readers before that observe an
// empty bank, which WaitReady lets callers rule out.
type Provider struct {
	mu sync.RWMutex

	questions    []models.Question
	responses    []models.UserResponse
	bookmarks    []models.Bookmark
	progress     []models.UserProgress
	goals        []models.DailyGoal
	sessions     []models.StudySession
	achievements []models.Achievement
	snapshots    map[string][]byte

	users       []models.User
	campuses    []models.Campus
	classes     []models.Class
	enrollments []models.ClassEnrollment
	benchmarks  []models.Benchmark

	ready chan struct{}
	now   func() time.Time
}

// New constructs the backend and kicks off the question seed load. The
// directory seed is synchronous so GetCurrentUser works immediately.
func New() *Provider {
	p := &Provider{
		snapshots: make(map[string][]byte),
		ready:     make(chan struct{}),
		now:       time.Now,
	}
	p.seedDirectory()
	go p.loadQuestions(seedQuestions)
	return p
}

// NewSeeded is the test constructor: the given questions are installed
// synchronously and the provider is ready on return.
func NewSeeded(questions []models.Question) *Provider {
	p := &Provider{
		snapshots: make(map[string][]byte),
		ready:     make(chan struct{}),
		now:       time.Now,
	}
	p.seedDirectory()
	p.questions = questions
	close(p.ready)
	return p
}

func (p *Provider) seedDirectory() {
	p.campuses = []models.Campus{
		{ID: "campus-001", Name: "Main Campus", Location: "Houston, TX"},
	}
	p.users = []models.User{
		{
			ID:        seedUserID,
			Name:      "Demo Student",
			Email:     "student@example.edu",
			Role:      "student",
			CampusID:  "campus-001",
			CreatedAt: p.now(),
		},
	}
}

func (p *Provider) loadQuestions(data []byte) {
	defer close(p.ready)

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		log.Printf("memory provider: question seed failed to parse: %v", err)
		return
	}
	p.mu.Lock()
	p.questions = questions
	p.mu.Unlock()
}

// WaitReady blocks until the question bank is loaded or ctx ends.
func (p *Provider) WaitReady(ctx context.Context) error {
	select {
	case <-p.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Provider) Close(ctx context.Context) error {
	return nil
}
