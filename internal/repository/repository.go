package repository

import (
	"context"
	"time"

	"codecraft/backend/internal/model"
)

// Repository defines the interface for project storage. Every backend must
// honor the same merge rules:
//   - UpsertFiles overwrites or inserts only the named files, all or nothing.
//   - AppendMessage adds to the end of the chat history.
//   - updated_at becomes max(updated_at, at) on both.
//   - Any operation on an unknown id returns ErrNotFound.
type Repository interface {
	CreateProject(ctx context.Context, project *model.Project) error
	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	ListProjectsByOwner(ctx context.Context, ownerID string) ([]*model.Project, error)
	UpsertFiles(ctx context.Context, projectID string, files map[string]model.ProjectFile, at time.Time) error
	AppendMessage(ctx context.Context, projectID string, message model.ChatMessage, at time.Time) error
	DeleteProject(ctx context.Context, projectID string) error
}
