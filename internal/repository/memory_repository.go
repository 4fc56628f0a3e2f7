package repository

import (
	"context"
	"sync"
	"time"

	"codecraft/backend/internal/model"
)

type memoryRepository struct {
	mu       sync.RWMutex
	projects map[string]*model.Project
}

// NewMemoryRepository keeps projects in process memory. Nothing survives a restart.
func NewMemoryRepository() Repository {
	return &memoryRepository{projects: make(map[string]*model.Project)}
}

func (r *memoryRepository) CreateProject(_ context.Context, project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = project.Clone()
	return nil
}

func (r *memoryRepository) GetProject(_ context.Context, projectID string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[projectID]
	if !ok {
		return nil, ErrNotFound
	}
	return p.Clone(), nil
}

func (r *memoryRepository) ListProjectsByOwner(_ context.Context, ownerID string) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	projects := make([]*model.Project, 0)
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			projects = append(projects, p.Clone())
		}
	}
	return projects, nil
}

func (r *memoryRepository) UpsertFiles(_ context.Context, projectID string, files map[string]model.ProjectFile, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[projectID]
	if !ok {
		return ErrNotFound
	}
	if p.Files == nil {
		p.Files = make(map[string]model.ProjectFile, len(files))
	}
	for name, f := range files {
		p.Files[name] = f
	}
	touch(p, at)
	return nil
}

func (r *memoryRepository) AppendMessage(_ context.Context, projectID string, message model.ChatMessage, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[projectID]
	if !ok {
		return ErrNotFound
	}
	p.ChatHistory = append(p.ChatHistory, message)
	touch(p, at)
	return nil
}

func (r *memoryRepository) DeleteProject(_ context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[projectID]; !ok {
		return ErrNotFound
	}
	delete(r.projects, projectID)
	return nil
}

func touch(p *model.Project, at time.Time) {
	if at.After(p.UpdatedAt) {
		p.UpdatedAt = at
	}
}
