package project

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/pkg/apperror"
)

// memProjectRepo is an in-memory stand-in honoring the repository
// contract, including not-found on update and newest-first listing.
type memProjectRepo struct {
	mu     sync.Mutex
	rows   map[int64]*project.Project
	nextID int64
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{rows: map[int64]*project.Project{}}
}

func copyProject(p *project.Project) *project.Project {
	cp := *p
	cp.Technologies = append([]string(nil), p.Technologies...)
	if p.ImageURL != nil {
		v := *p.ImageURL
		cp.ImageURL = &v
	}
	if p.GithubURL != nil {
		v := *p.GithubURL
		cp.GithubURL = &v
	}
	if p.DemoURL != nil {
		v := *p.DemoURL
		cp.DemoURL = &v
	}
	return &cp
}

func (r *memProjectRepo) Save(ctx context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = copyProject(p)
	return nil
}

func (r *memProjectRepo) UpdateFields(ctx context.Context, id int64, changes project.Changes) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("project", strconv.FormatInt(id, 10))
	}

	if v, ok := changes.Title.Get(); ok {
		p.Title = v
	}
	if v, ok := changes.Description.Get(); ok {
		p.Description = v
	}
	if changes.ImageURL.IsSet() {
		p.ImageURL = changes.ImageURL.Ptr()
	}
	if changes.GithubURL.IsSet() {
		p.GithubURL = changes.GithubURL.Ptr()
	}
	if changes.DemoURL.IsSet() {
		p.DemoURL = changes.DemoURL.Ptr()
	}
	if v, ok := changes.Technologies.Get(); ok {
		p.Technologies = append([]string(nil), v...)
	}
	p.UpdatedAt = time.Now().UTC()
	return copyProject(p), nil
}

func (r *memProjectRepo) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("project", strconv.FormatInt(id, 10))
	}
	return copyProject(p), nil
}

func (r *memProjectRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := make([]*project.Project, 0, len(r.rows))
	for _, p := range r.rows {
		projects = append(projects, copyProject(p))
	}
	sort.SliceStable(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ID < projects[j].ID
	})
	return projects, nil
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []event.ContentEventPayload
}

func (p *capturingPublisher) PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return nil
}
