package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"codecraft/backend/internal/codegen"
	app_errors "codecraft/backend/internal/errors"
	"codecraft/backend/internal/model"
	"codecraft/backend/internal/store"
	"codecraft/backend/internal/template"
)

// DefaultTemplate is used when a request names none.
const DefaultTemplate = "react"

// CreateProjectRequest describes a new project. When InitialPrompt is set the
// files come from the AI, otherwise from the template's seed files.
type CreateProjectRequest struct {
	Title         string
	Description   *string
	Template      string
	OwnerID       string
	InitialPrompt string
}

// ProjectService ties the code generation engine to the project store.
type ProjectService struct {
	engine    *codegen.Engine
	store     *store.Store
	templates *template.Registry
	turns     *store.KeyLock
	now       func() time.Time
}

func NewProjectService(engine *codegen.Engine, st *store.Store, templates *template.Registry) *ProjectService {
	return &ProjectService{
		engine:    engine,
		store:     st,
		templates: templates,
		turns:     store.NewKeyLock(),
		now:       time.Now,
	}
}

// Generate runs a one-off generation without creating a project.
func (s *ProjectService) Generate(ctx context.Context, prompt, tmpl string) (*model.GenerationResult, error) {
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	return s.engine.Generate(ctx, prompt, tmpl)
}

// Create stores a new project. If generation fails nothing is stored.
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*model.Project, error) {
	if req.Template == "" {
		req.Template = DefaultTemplate
	}

	var files map[string]model.ProjectFile
	var chat []model.ChatMessage
	title := req.Title

	if req.InitialPrompt != "" {
		result, err := s.engine.Generate(ctx, req.InitialPrompt, req.Template)
		if err != nil {
			return nil, err
		}
		files = result.Files
		at := s.now()
		chat = []model.ChatMessage{
			{Content: req.InitialPrompt, Sender: model.SenderUser, Timestamp: at},
			{Content: result.Explanation, Sender: model.SenderAI, Timestamp: at},
		}
		if title == "" {
			title = result.ProjectTitle
		}
	} else {
		files = s.templates.Seed(req.Template)
	}
	if title == "" {
		title = codegen.DefaultTitle
	}

	return s.store.Create(ctx, files, chat, model.ProjectMetadata{
		Title:       title,
		Description: req.Description,
		Template:    req.Template,
		OwnerID:     req.OwnerID,
	})
}

func (s *ProjectService) Get(ctx context.Context, projectID string) (*model.Project, error) {
	return s.store.Get(ctx, projectID)
}

func (s *ProjectService) ListByOwner(ctx context.Context, ownerID string) ([]*model.Project, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// UpdateFiles applies a partial file update and returns the resulting project.
func (s *ProjectService) UpdateFiles(ctx context.Context, projectID string, files map[string]model.ProjectFile) (*model.Project, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files to update", app_errors.ErrValidation)
	}
	unlock, err := s.turns.Lock(ctx, projectID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.store.ApplyFileUpdate(ctx, projectID, files); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, projectID)
}

// Chat runs one conversation turn. The project is locked for the whole turn
// so a second turn on the same project sees the first one's files.
func (s *ProjectService) Chat(ctx context.Context, projectID, message string) (*model.ChatOutcome, error) {
	unlock, err := s.turns.Lock(ctx, projectID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	project, err := s.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	askedAt := s.now()

	outcome, err := s.engine.Revise(ctx, message, project.Files)
	if err != nil {
		return nil, err
	}
	// Nothing is recorded for a turn whose files could not be applied.
	if outcome.HasFileUpdates() {
		if err := s.store.ValidateFiles(outcome.UpdatedFiles); err != nil {
			return nil, err
		}
	}

	if _, err := s.store.AppendChat(ctx, projectID, model.ChatMessage{
		Content: message, Sender: model.SenderUser, Timestamp: askedAt,
	}); err != nil {
		return nil, err
	}
	if _, err := s.store.AppendChat(ctx, projectID, model.ChatMessage{
		Content: outcome.Message, Sender: model.SenderAI, Timestamp: outcome.Timestamp,
	}); err != nil {
		return nil, err
	}
	if outcome.HasFileUpdates() {
		if err := s.store.ApplyFileUpdate(ctx, projectID, outcome.UpdatedFiles); err != nil {
			return nil, err
		}
	}
	slog.Info("Chat turn completed", "project_id", projectID, "updated_files", len(outcome.UpdatedFiles))
	return outcome, nil
}

func (s *ProjectService) Delete(ctx context.Context, projectID string) error {
	unlock, err := s.turns.Lock(ctx, projectID)
	if err != nil {
		return err
	}
	defer unlock()
	return s.store.Delete(ctx, projectID)
}
