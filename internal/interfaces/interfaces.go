package interfaces

import (
	"context"

	"codecraft/backend/internal/account"
	"codecraft/backend/internal/model"
	"codecraft/backend/internal/service"
)

// This file defines the interfaces for our core services.
// The API layer depends on these rather than on concrete services so that
// handlers can be tested against mocks.

// ProjectService defines the contract for project generation and revision.
type ProjectService interface {
	Generate(ctx context.Context, prompt, template string) (*model.GenerationResult, error)
	Create(ctx context.Context, req service.CreateProjectRequest) (*model.Project, error)
	Get(ctx context.Context, projectID string) (*model.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Project, error)
	UpdateFiles(ctx context.Context, projectID string, files map[string]model.ProjectFile) (*model.Project, error)
	Chat(ctx context.Context, projectID, message string) (*model.ChatOutcome, error)
	Delete(ctx context.Context, projectID string) error
}

// AccountService defines the contract for user records.
type AccountService interface {
	CreateOrUpdate(ctx context.Context, p account.Profile) (*account.User, error)
	Get(ctx context.Context, clerkID string) (*account.User, error)
	List(ctx context.Context) ([]account.User, error)
	Delete(ctx context.Context, clerkID string) error
}

var (
	_ ProjectService = (*service.ProjectService)(nil)
	_ AccountService = (*account.Service)(nil)
)
