package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/devport/portfolio-backend/internal/content/domain"
	"github.com/devport/portfolio-backend/internal/validation"
)

// AdminService performs authenticated project mutations. Authentication is a
// precondition enforced by the HTTP layer; every operation here assumes a
// verified identity.
type AdminService struct {
	projects ProjectRepo
}

func NewAdminService(projects ProjectRepo) *AdminService {
	return &AdminService{projects: projects}
}

// ProjectFields is the full create payload. Published, Featured and Order
// default to false/false/0 when left nil.
type ProjectFields struct {
	Title           string
	Description     string
	FullDescription string
	Thumbnail       string
	Gallery         []string
	Technologies    []string
	Category        string
	DemoURL         string
	SourceURL       string
	Featured        *bool
	Published       *bool
	Order           *int
}

// ProjectPatch is a partial update: nil fields keep their stored values.
// There is deliberately no way to express id or createdAt here.
type ProjectPatch struct {
	Title           *string
	Description     *string
	FullDescription *string
	Thumbnail       *string
	Gallery         *[]string
	Technologies    *[]string
	Category        *string
	DemoURL         *string
	SourceURL       *string
	Featured        *bool
	Published       *bool
	Order           *int
}

func (s *AdminService) CreateProject(ctx context.Context, in ProjectFields) (string, error) {
	errs := validation.ProjectRecord(validation.ProjectInput{
		Title:           in.Title,
		Description:     in.Description,
		FullDescription: in.FullDescription,
		Thumbnail:       in.Thumbnail,
		Category:        in.Category,
		Technologies:    in.Technologies,
	})
	if len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}

	p := &domain.Project{
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		FullDescription: strings.TrimSpace(in.FullDescription),
		Thumbnail:       strings.TrimSpace(in.Thumbnail),
		Gallery:         in.Gallery,
		Technologies:    in.Technologies,
		Category:        strings.TrimSpace(in.Category),
		DemoURL:         strings.TrimSpace(in.DemoURL),
		SourceURL:       strings.TrimSpace(in.SourceURL),
	}
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
	if in.Order != nil {
		p.Order = *in.Order
	}

	id, err := s.projects.Create(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}

	return id, nil
}

// UpdateProject applies a partial update. Existence is checked first so an
// update can never materialize a new document under an admin-chosen ID.
func (s *AdminService) UpdateProject(ctx context.Context, id string, patch ProjectPatch) error {
	if errs := validatePatch(patch); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	if _, err := s.projects.Get(ctx, id); err != nil {
		return err
	}

	fields := patch.fields()
	if err := s.projects.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update project %s: %w", id, err)
	}

	return nil
}

// DeleteProject hard-deletes a project. No tombstone is kept.
func (s *AdminService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.projects.Get(ctx, id); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}

	return nil
}

// validatePatch applies the required-field rules to the fields the patch
// actually carries.
func validatePatch(p ProjectPatch) map[string]string {
	errs := make(map[string]string)

	check := func(field string, v *string, message string) {
		if v != nil && strings.TrimSpace(*v) == "" {
			errs[field] = message
		}
	}
	check("title", p.Title, "Title is required")
	check("description", p.Description, "Description is required")
	check("fullDescription", p.FullDescription, "Full description is required")
	check("thumbnail", p.Thumbnail, "Thumbnail is required")
	check("category", p.Category, "Category is required")

	if p.Technologies != nil && *p.Technologies == nil {
		errs["technologies"] = "Technologies must be a list"
	}

	return errs
}

// fields flattens the patch into the update map handed to the store.
// updatedAt is added by the repository; id and createdAt cannot appear.
func (p ProjectPatch) fields() map[string]any {
	m := make(map[string]any)

	setString := func(key string, v *string) {
		if v != nil {
			m[key] = strings.TrimSpace(*v)
		}
	}
	setString("title", p.Title)
	setString("description", p.Description)
	setString("fullDescription", p.FullDescription)
	setString("thumbnail", p.Thumbnail)
	setString("category", p.Category)
	setString("demoUrl", p.DemoURL)
	setString("sourceUrl", p.SourceURL)

	if p.Gallery != nil {
		m["gallery"] = *p.Gallery
	}
	if p.Technologies != nil {
		m["technologies"] = *p.Technologies
	}
	if p.Featured != nil {
		m["featured"] = *p.Featured
	}
	if p.Published != nil {
		m["published"] = *p.Published
	}
	if p.Order != nil {
		m["order"] = *p.Order
	}

	return m
}
