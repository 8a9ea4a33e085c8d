package service

import (
	"context"

	"study-service/internal/models"
	"study-service/internal/provider"
)

// DirectoryService serves the read-only reference data: who studies where,
// and what scores cohorts are measured against.
type DirectoryService struct {
	Provider provider.DataProvider
}

func NewDirectoryService(p provider.DataProvider) *DirectoryService {
	return &DirectoryService{Provider: p}
}

func (s *DirectoryService) GetCurrentUser(ctx context.Context) (*models.User, error) {
	return s.Provider.GetCurrentUser(ctx)
}

func (s *DirectoryService) GetUsers(ctx context.Context, campusID string) ([]models.User, error) {
	return s.Provider.GetUsers(ctx, campusID)
}

func (s *DirectoryService) GetCampuses(ctx context.Context) ([]models.Campus, error) {
	return s.Provider.GetCampuses(ctx)
}

func (s *DirectoryService) GetClasses(ctx context.Context, campusID string) ([]models.Class, error) {
	return s.Provider.GetClasses(ctx, campusID)
}

func (s *DirectoryService) GetEnrollments(ctx context.Context, userID string) ([]models.ClassEnrollment, error) {
	return s.Provider.GetClassEnrollments(ctx, userID)
}

func (s *DirectoryService) GetBenchmarks(ctx context.Context, category string) ([]models.Benchmark, error) {
	return s.Provider.GetBenchmarks(ctx, category)
}
