package memory

import (
	"context"

	"study-service/internal/models"
)

// GetCurrentUser returns the seeded demo user. Real identity arrives via
// request headers; this exists so the development backend can stand alone.
func (p *Provider) GetCurrentUser(ctx context.Context) (*models.User, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.users) == 0 {
		return nil, nil
	}
	u := p.users[0]
	return &u, nil
}

func (p *Provider) GetUsers(ctx context.Context, campusID string) ([]models.User, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	list := make([]models.User, 0, len(p.users))
	for _, u := range p.users {
		if campusID != "" && u.CampusID != campusID {
			continue
		}
		list = append(list, u)
	}
	return list, nil
}

func (p *Provider) GetCampuses(ctx context.Context) ([]models.Campus, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]models.Campus(nil), p.campuses...), nil
}

func (p *Provider) GetClasses(ctx context.Context, campusID string) ([]models.Class, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	list := make([]models.Class, 0, len(p.classes))
	for _, c := range p.classes {
		if campusID != "" && c.CampusID != campusID {
			continue
		}
		list = append(list, c)
	}
	return list, nil
}

func (p *Provider) GetClassEnrollments(ctx context.Context, userID string) ([]models.ClassEnrollment, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	list := make([]models.ClassEnrollment, 0, len(p.enrollments))
	for _, e := range p.enrollments {
		if userID != "" && e.UserID != userID {
			continue
		}
		list = append(list, e)
	}
	return list, nil
}

func (p *Provider) GetBenchmarks(ctx context.Context, category string) ([]models.Benchmark, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	list := make([]models.Benchmark, 0, len(p.benchmarks))
	for _, b := range p.benchmarks {
		if category != "" && b.Category != category {
			continue
		}
		list = append(list, b)
	}
	return list, nil
}
