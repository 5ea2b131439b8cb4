package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devport/portfolio-backend/internal/content/domain"
)

func ptr[T any](v T) *T { return &v }

func validFields() ProjectFields {
	return ProjectFields{
		Title:           "Portfolio Site",
		Description:     "A personal site",
		FullDescription: "A longer description",
		Thumbnail:       "https://cdn.example.com/t.png",
		Technologies:    []string{"go", "typescript"},
		Category:        "web",
	}
}

func TestAdminService_CreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with safe defaults", func(t *testing.T) {
		repo := newMemProjectRepo()
		svc := NewAdminService(repo)

		id, err := svc.CreateProject(ctx, validFields())
		require.NoError(t, err)

		p, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, p.Published, "new projects default to unpublished")
		assert.False(t, p.Featured)
		assert.Zero(t, p.Order)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("honors explicit flags", func(t *testing.T) {
		repo := newMemProjectRepo()
		svc := NewAdminService(repo)

		in := validFields()
		in.Published = ptr(true)
		in.Featured = ptr(true)
		in.Order = ptr(5)

		id, err := svc.CreateProject(ctx, in)
		require.NoError(t, err)

		p, _ := repo.Get(ctx, id)
		assert.True(t, p.Published)
		assert.True(t, p.Featured)
		assert.Equal(t, 5, p.Order)
	})

	t.Run("rejects an invalid record without persisting", func(t *testing.T) {
		repo := newMemProjectRepo()
		svc := NewAdminService(repo)

		in := validFields()
		in.Title = "   "
		_, err := svc.CreateProject(ctx, in)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")
		assert.Empty(t, repo.docs)
	})
}

func TestAdminService_UpdateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update preserves unspecified fields", func(t *testing.T) {
		repo := newMemProjectRepo()
		svc := NewAdminService(repo)
		id, err := svc.CreateProject(ctx, validFields())
		require.NoError(t, err)
		before, _ := repo.Get(ctx, id)

		require.NoError(t, svc.UpdateProject(ctx, id, ProjectPatch{Title: ptr("Renamed")}))

		after, _ := repo.Get(ctx, id)
		assert.Equal(t, "Renamed", after.Title)
		assert.Equal(t, before.Description, after.Description)
		assert.Equal(t, before.FullDescription, after.FullDescription)
		assert.Equal(t, before.Thumbnail, after.Thumbnail)
		assert.Equal(t, before.Technologies, after.Technologies)
		assert.Equal(t, before.Category, after.Category)
		assert.Equal(t, before.Published, after.Published)
		assert.Equal(t, before.Order, after.Order)
		assert.Equal(t, before.CreatedAt, after.CreatedAt, "createdAt is immutable")
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updatedAt always refreshes")
	})

	t.Run("updating a missing project is NotFound", func(t *testing.T) {
		svc := NewAdminService(newMemProjectRepo())
		err := svc.UpdateProject(ctx, "no-such-id", ProjectPatch{Title: ptr("X")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update never creates a document as a side effect", func(t *testing.T) {
		repo := newMemProjectRepo()
		svc := NewAdminService(repo)

		_ = svc.UpdateProject(ctx, "chosen-id", ProjectPatch{Title: ptr("X")})
		assert.Empty(t, repo.docs)
	})

	t.Run("rejects blanking a required field", func(t *testing.T) {
		repo := newMemProjectRepo()
		svc := NewAdminService(repo)
		id, _ := svc.CreateProject(ctx, validFields())

		err := svc.UpdateProject(ctx, id, ProjectPatch{Thumbnail: ptr("  ")})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "thumbnail")
	})
}

func TestAdminService_DeleteProject(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing project", func(t *testing.T) {
		repo := newMemProjectRepo()
		svc := NewAdminService(repo)
		id, _ := svc.CreateProject(ctx, validFields())

		require.NoError(t, svc.DeleteProject(ctx, id))
		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("deleting a missing project is NotFound", func(t *testing.T) {
		svc := NewAdminService(newMemProjectRepo())
		err := svc.DeleteProject(ctx, "no-such-id")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// Full lifecycle across the admin and read services: draft → publish →
// delete, with the public view checked at each step.
func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMemProjectRepo()
	admin := NewAdminService(repo)
	read := NewReadService(repo, &memProfileRepo{})

	id, err := admin.CreateProject(ctx, validFields())
	require.NoError(t, err)

	projects, err := read.ListPublishedProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects, "draft must not be publicly visible")

	require.NoError(t, admin.UpdateProject(ctx, id, ProjectPatch{Published: ptr(true)}))

	projects, err = read.ListPublishedProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, id, projects[0].ID)

	require.NoError(t, admin.DeleteProject(ctx, id))

	_, err = read.GetPublishedProject(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
