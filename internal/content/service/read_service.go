package service

import (
	"context"

	"github.com/devport/portfolio-backend/internal/content/domain"
)

// ReadService serves the public, published-only view of the content. It has
// no side effects and holds no state between calls.
type ReadService struct {
	projects ProjectRepo
	profile  ProfileRepo
}

func NewReadService(projects ProjectRepo, profile ProfileRepo) *ReadService {
	return &ReadService{
		projects: projects,
		profile:  profile,
	}
}

// ListPublishedProjects returns published projects, newest first. The
// published filter sits in the repository query, not here.
func (s *ReadService) ListPublishedProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.ListPublished(ctx)
}

// GetPublishedProject returns ErrNotFound for both absent and unpublished
// projects; callers cannot probe for drafts.
func (s *ReadService) GetPublishedProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetPublished(ctx, id)
}

func (s *ReadService) GetProfile(ctx context.Context) (*domain.Profile, error) {
	return s.profile.Get(ctx)
}
