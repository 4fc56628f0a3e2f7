package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"codecraft/backend/internal/codegen"
	app_errors "codecraft/backend/internal/errors"
	"codecraft/backend/internal/model"
	"codecraft/backend/internal/repository"
)

// Store owns every project. It validates input, stamps ids and times, and
// serializes writes per project before handing them to the repository.
type Store struct {
	repo  repository.Repository
	locks *KeyLock
	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString for project and message ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func New(repo repository.Repository, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		locks: NewKeyLock(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new project with the given files and chat history.
// created_at and updated_at are both set to now.
func (s *Store) Create(ctx context.Context, files map[string]model.ProjectFile, chat []model.ChatMessage, meta model.ProjectMetadata) (*model.Project, error) {
	if meta.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", app_errors.ErrValidation)
	}
	normalized, err := normalizeFiles(files)
	if err != nil {
		return nil, err
	}
	history := make([]model.ChatMessage, 0, len(chat))
	for _, msg := range chat {
		m, err := s.prepareMessage(msg)
		if err != nil {
			return nil, err
		}
		history = append(history, m)
	}

	now := s.clock()
	project := &model.Project{
		ID:          s.newID(),
		Title:       meta.Title,
		Description: meta.Description,
		Template:    meta.Template,
		Files:       normalized,
		ChatHistory: history,
		OwnerID:     meta.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("could not create project: %w", err)
	}
	slog.Info("Project created", "project_id", project.ID, "owner_id", project.OwnerID, "files", len(normalized))
	return project.Clone(), nil
}

func (s *Store) Get(ctx context.Context, projectID string) (*model.Project, error) {
	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// ListByOwner returns an unordered snapshot of the owner's projects.
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]*model.Project, error) {
	projects, err := s.repo.ListProjectsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}
	return projects, nil
}

// ApplyFileUpdate overwrites or inserts each named file and leaves every other
// file alone. Every entry is checked before anything is written.
func (s *Store) ApplyFileUpdate(ctx context.Context, projectID string, files map[string]model.ProjectFile) error {
	normalized, err := normalizeFiles(files)
	if err != nil {
		return err
	}

	unlock, err := s.locks.Lock(ctx, projectID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.repo.UpsertFiles(ctx, projectID, normalized, s.clock()); err != nil {
		return translate(err)
	}
	slog.Debug("Project files updated", "project_id", projectID, "files", len(normalized))
	return nil
}

// ValidateFiles runs the checks ApplyFileUpdate makes without writing anything.
func (s *Store) ValidateFiles(files map[string]model.ProjectFile) error {
	_, err := normalizeFiles(files)
	return err
}

// AppendChat adds message to the end of the history. A missing id or
// timestamp is filled in.
func (s *Store) AppendChat(ctx context.Context, projectID string, message model.ChatMessage) (model.ChatMessage, error) {
	msg, err := s.prepareMessage(message)
	if err != nil {
		return model.ChatMessage{}, err
	}

	unlock, err := s.locks.Lock(ctx, projectID)
	if err != nil {
		return model.ChatMessage{}, err
	}
	defer unlock()

	if err := s.repo.AppendMessage(ctx, projectID, msg, s.clock()); err != nil {
		return model.ChatMessage{}, translate(err)
	}
	return msg, nil
}

func (s *Store) Delete(ctx context.Context, projectID string) error {
	unlock, err := s.locks.Lock(ctx, projectID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.repo.DeleteProject(ctx, projectID); err != nil {
		return translate(err)
	}
	slog.Info("Project deleted", "project_id", projectID)
	return nil
}

func (s *Store) clock() time.Time {
	return s.now().UTC()
}

func (s *Store) prepareMessage(msg model.ChatMessage) (model.ChatMessage, error) {
	if msg.Sender != model.SenderUser && msg.Sender != model.SenderAI {
		return model.ChatMessage{}, fmt.Errorf("%w: unknown sender %q", app_errors.ErrValidation, msg.Sender)
	}
	if msg.ID == "" {
		msg.ID = s.newID()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.clock()
	} else {
		msg.Timestamp = msg.Timestamp.UTC()
	}
	return msg, nil
}

// normalizeFiles copies files, filling a blank name from its key and a blank
// language from the name. A name that disagrees with its key is rejected.
func normalizeFiles(files map[string]model.ProjectFile) (map[string]model.ProjectFile, error) {
	out := make(map[string]model.ProjectFile, len(files))
	for key, f := range files {
		if key == "" {
			return nil, fmt.Errorf("%w: file name must not be empty", app_errors.ErrValidation)
		}
		if f.Name == "" {
			f.Name = key
		}
		if f.Name != key {
			return nil, fmt.Errorf("%w: file %q is stored under key %q", app_errors.ErrValidation, f.Name, key)
		}
		if f.Language == "" {
			f.Language = codegen.LanguageFor(f.Name)
		}
		out[key] = f
	}
	return out, nil
}

func translate(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return app_errors.ErrProjectNotFound
	}
	return err
}
