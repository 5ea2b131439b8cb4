package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/devport/portfolio-backend/internal/content/domain"
)

// memProjectRepo is an in-memory stand-in for the document store.
type memProjectRepo struct {
	mu   sync.Mutex
	seq  int
	now  time.Time
	docs map[string]domain.Project
	err  error
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{
		now:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		docs: make(map[string]domain.Project),
	}
}

func (r *memProjectRepo) tick() time.Time {
	r.now = r.now.Add(time.Minute)
	return r.now
}

func (r *memProjectRepo) ListPublished(context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	out := make([]domain.Project, 0, len(r.docs))
	for _, p := range r.docs {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memProjectRepo) GetPublished(ctx context.Context, id string) (*domain.Project, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *memProjectRepo) Get(_ context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	p, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}

	r.seq++
	id := fmt.Sprintf("proj-%d", r.seq)
	stored := *p
	stored.ID = id
	stored.CreatedAt = r.tick()
	stored.UpdatedAt = stored.CreatedAt
	r.docs[id] = stored
	return id, nil
}

func (r *memProjectRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}

	p, ok := r.docs[id]
	if !ok {
		return domain.ErrNotFound
	}

	for k, v := range fields {
		switch k {
		case "title":
			p.Title = v.(string)
		case "description":
			p.Description = v.(string)
		case "fullDescription":
			p.FullDescription = v.(string)
		case "thumbnail":
			p.Thumbnail = v.(string)
		case "category":
			p.Category = v.(string)
		case "demoUrl":
			p.DemoURL = v.(string)
		case "sourceUrl":
			p.SourceURL = v.(string)
		case "gallery":
			p.Gallery = v.([]string)
		case "technologies":
			p.Technologies = v.([]string)
		case "featured":
			p.Featured = v.(bool)
		case "published":
			p.Published = v.(bool)
		case "order":
			p.Order = v.(int)
		default:
			return fmt.Errorf("unexpected update field %q", k)
		}
	}
	p.UpdatedAt = r.tick()
	r.docs[id] = p
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}

	delete(r.docs, id)
	return nil
}

type memProfileRepo struct {
	profile *domain.Profile
	err     error
}

func (r *memProfileRepo) Get(context.Context) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.profile == nil {
		return nil, domain.ErrNotFound
	}
	return r.profile, nil
}

type memInquiryRepo struct {
	mu      sync.Mutex
	seq     int
	created []domain.Inquiry
	err     error
}

func (r *memInquiryRepo) Create(_ context.Context, inq *domain.Inquiry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}

	r.seq++
	stored := *inq
	stored.ID = fmt.Sprintf("inq-%d", r.seq)
	stored.SubmittedAt = time.Now().UTC()
	r.created = append(r.created, stored)
	return stored.ID, nil
}

type stubLimiter struct {
	allow bool
	err   error
	calls int
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	l.calls++
	return l.allow, l.err
}
