package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"codecraft/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository expects a database already migrated by database.InitDB.
func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

// Timestamps are stored as unix nanoseconds so SQLite can compare them with MAX().
func toNanos(t time.Time) int64    { return t.UnixNano() }
func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }

func (r *sqliteRepository) CreateProject(ctx context.Context, project *model.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	var description sql.NullString
	if project.Description != nil {
		description = sql.NullString{String: *project.Description, Valid: true}
	}
	insertProject := `
		INSERT INTO projects (id, owner_id, title, description, template, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, insertProject,
		project.ID, project.OwnerID, project.Title, description, project.Template,
		toNanos(project.CreatedAt), toNanos(project.UpdatedAt),
	); err != nil {
		return fmt.Errorf("could not insert project: %w", err)
	}

	if err := upsertFilesTx(ctx, tx, project.ID, project.Files); err != nil {
		return err
	}
	for _, msg := range project.ChatHistory {
		if err := insertMessageTx(ctx, tx, project.ID, msg); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *sqliteRepository) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	query := "SELECT id, owner_id, title, description, template, created_at, updated_at FROM projects WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, projectID)

	var p model.Project
	var description sql.NullString
	var createdAt, updatedAt int64
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &description, &p.Template, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if description.Valid {
		p.Description = &description.String
	}
	p.CreatedAt = fromNanos(createdAt)
	p.UpdatedAt = fromNanos(updatedAt)

	files, err := r.getFiles(ctx, projectID)
	if err != nil {
		return nil, err
	}
	p.Files = files

	messages, err := r.getMessages(ctx, projectID)
	if err != nil {
		return nil, err
	}
	p.ChatHistory = messages
	return &p, nil
}

func (r *sqliteRepository) ListProjectsByOwner(ctx context.Context, ownerID string) ([]*model.Project, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM projects WHERE owner_id = ?", ownerID)
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	projects := make([]*model.Project, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetProject(ctx, id)
		if errors.Is(err, ErrNotFound) {
			// Deleted between the two queries.
			continue
		}
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *sqliteRepository) UpsertFiles(ctx context.Context, projectID string, files map[string]model.ProjectFile, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := touchTx(ctx, tx, projectID, at); err != nil {
		return err
	}
	if err := upsertFilesTx(ctx, tx, projectID, files); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *sqliteRepository) AppendMessage(ctx context.Context, projectID string, message model.ChatMessage, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := touchTx(ctx, tx, projectID, at); err != nil {
		return err
	}
	if err := insertMessageTx(ctx, tx, projectID, message); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *sqliteRepository) DeleteProject(ctx context.Context, projectID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", projectID)
	if err != nil {
		return fmt.Errorf("could not delete project: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM project_files WHERE project_id = ?", projectID); err != nil {
		return fmt.Errorf("could not delete project files: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM chat_messages WHERE project_id = ?", projectID); err != nil {
		return fmt.Errorf("could not delete chat history: %w", err)
	}
	return tx.Commit()
}

func (r *sqliteRepository) getFiles(ctx context.Context, projectID string) (map[string]model.ProjectFile, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, content, language FROM project_files WHERE project_id = ?", projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get files: %w", err)
	}
	defer rows.Close()

	files := make(map[string]model.ProjectFile)
	for rows.Next() {
		var f model.ProjectFile
		if err := rows.Scan(&f.Name, &f.Content, &f.Language); err != nil {
			return nil, err
		}
		files[f.Name] = f
	}
	return files, rows.Err()
}

func (r *sqliteRepository) getMessages(ctx context.Context, projectID string) ([]model.ChatMessage, error) {
	query := `
		SELECT id, content, sender, timestamp
		FROM chat_messages
		WHERE project_id = ?
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get chat history: %w", err)
	}
	defer rows.Close()

	messages := make([]model.ChatMessage, 0)
	for rows.Next() {
		var msg model.ChatMessage
		var sender string
		var ts int64
		if err := rows.Scan(&msg.ID, &msg.Content, &sender, &ts); err != nil {
			return nil, err
		}
		msg.Sender = model.Sender(sender)
		msg.Timestamp = fromNanos(ts)
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func touchTx(ctx context.Context, tx *sql.Tx, projectID string, at time.Time) error {
	res, err := tx.ExecContext(ctx, "UPDATE projects SET updated_at = MAX(updated_at, ?) WHERE id = ?", toNanos(at), projectID)
	if err != nil {
		return fmt.Errorf("could not update project timestamp: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func upsertFilesTx(ctx context.Context, tx *sql.Tx, projectID string, files map[string]model.ProjectFile) error {
	query := `
		INSERT INTO project_files (project_id, name, content, language)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_id, name) DO UPDATE SET content = excluded.content, language = excluded.language
	`
	for name, f := range files {
		if _, err := tx.ExecContext(ctx, query, projectID, name, f.Content, f.Language); err != nil {
			return fmt.Errorf("could not upsert file %s: %w", name, err)
		}
	}
	return nil
}

func insertMessageTx(ctx context.Context, tx *sql.Tx, projectID string, msg model.ChatMessage) error {
	query := "INSERT INTO chat_messages (id, project_id, content, sender, timestamp) VALUES (?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, query, msg.ID, projectID, msg.Content, string(msg.Sender), toNanos(msg.Timestamp)); err != nil {
		return fmt.Errorf("could not insert chat message: %w", err)
	}
	return nil
}
