package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/devport/portfolio-backend/internal/content/domain"
)

const (
	profileCollection = "profile"
	profileDocID      = "main"
)

// ProfileRepository reads the singleton profile document. The document is
// written by provisioning and the admin surface, never by this service.
type ProfileRepository struct {
	client *firestore.Client
}

func NewProfileRepository(client *firestore.Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

func (r *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	doc, err := r.client.Collection(profileCollection).Doc(profileDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// Absent singleton means provisioning never ran.
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p domain.Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	p.UpdatedAt = p.UpdatedAt.UTC()
	if p.Skills == nil {
		p.Skills = []string{}
	}

	return &p, nil
}
