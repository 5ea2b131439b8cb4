// Package repository implements the Firestore persistence layer. Documents
// are decoded into typed records at this boundary; the document shape is
// never trusted past it.
package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/devport/portfolio-backend/internal/content/domain"
)

const projectsCollection = "projects"

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	client *firestore.Client
}

func NewProjectRepository(client *firestore.Client) *ProjectRepository {
	return &ProjectRepository{client: client}
}

// ListPublished returns published projects ordered by creation time,
// newest first. The published filter is part of the query itself, so an
// unpublished project can never appear even in a partial result.
func (r *ProjectRepository) ListPublished(ctx context.Context) ([]domain.Project, error) {
	iter := r.client.Collection(projectsCollection).
		Where("published", "==", true).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Project, 0, 16)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list published projects: %w", err)
		}

		p, err := decodeProject(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}

	return out, nil
}

// GetPublished returns a published project by ID. An absent document and an
// unpublished one both come back as ErrNotFound.
func (r *ProjectRepository) GetPublished(ctx context.Context, id string) (*domain.Project, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Get returns a project regardless of its published flag. Admin paths use it
// as their existence check.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	doc, err := r.client.Collection(projectsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}

	return decodeProject(doc)
}

// Create persists a new project and returns the store-assigned ID. The
// serverTimestamp tags fill createdAt/updatedAt on the server.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (string, error) {
	ref := r.client.Collection(projectsCollection).NewDoc()
	if _, err := ref.Create(ctx, p); err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return ref.ID, nil
}

// Update applies a partial field map. updatedAt is always refreshed; callers
// must never include id or createdAt in the map.
func (r *ProjectRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.client.Collection(projectsCollection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update project %s: %w", id, err)
	}
	return nil
}

// Delete removes the document permanently. Firestore deletes are idempotent;
// the service layer checks existence first for NotFound semantics.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(projectsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

func decodeProject(doc *firestore.DocumentSnapshot) (*domain.Project, error) {
	var p domain.Project
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", doc.Ref.ID, err)
	}

	p.ID = doc.Ref.ID
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	return &p, nil
}
