package factory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"study-service/internal/config"
	"study-service/internal/models"
	"study-service/internal/provider"
)

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), &config.Config{ProviderBackend: "dynamodb"})
	if !errors.Is(err, provider.ErrUnknownBackend) {
		t.Errorf("Expected ErrUnknownBackend, got %v", err)
	}
}

func TestSupabaseBackendFailsLoud(t *testing.T) {
	p, err := New(context.Background(), &config.Config{ProviderBackend: config.BackendSupabase})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, err = p.GetQuestions(context.Background(), models.QuestionFilters{})
	if !provider.IsNotConfigured(err) {
		t.Errorf("Expected a NotConfigured failure, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "supabase") {
		t.Errorf("Error must name the backend, got %v", err)
	}
}

func TestDefaultIsMemoizedUntilReset(t *testing.T) {
	t.Cleanup(ResetDefaultForTests)
	ResetDefaultForTests()

	cfg := &config.Config{ProviderBackend: config.BackendMemory}
	first, err := Default(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	second, _ := Default(context.Background(), cfg)
	if first != second {
		t.Error("Default should return the memoized instance")
	}

	ResetDefaultForTests()
	third, _ := Default(context.Background(), cfg)
	if third == first {
		t.Error("Reset should force a fresh instance")
	}
}
