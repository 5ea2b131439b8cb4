// Package service holds the content read, public write and admin services.
// Persistence is injected through narrow interfaces so tests run against an
// in-memory store.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devport/portfolio-backend/internal/content/domain"
)

// ErrRateLimited is returned by SubmitInquiry when the client key has
// exhausted its window budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// ValidationError carries per-field messages for a rejected payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// ProjectRepo is the project slice of the persistence collaborator.
type ProjectRepo interface {
	ListPublished(ctx context.Context) ([]domain.Project, error)
	GetPublished(ctx context.Context, id string) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ProfileRepo reads the singleton profile document.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
}

// InquiryRepo persists contact-form submissions.
type InquiryRepo interface {
	Create(ctx context.Context, inq *domain.Inquiry) (string, error)
}
