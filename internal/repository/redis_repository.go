package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codecraft/backend/internal/model"
)

const maxTxRetries = 5

type redisRepository struct {
	rdb *redis.Client
}

// NewRedisRepository stores each project as a metadata string, a hash of
// files and a list of chat messages.
func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

// projectMeta is the part of a project kept under projectKey.
type projectMeta struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Template    string    `json:"template"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Key Generation Helpers
func (r *redisRepository) projectKey(id string) string { return fmt.Sprintf("project:%s", id) }
func (r *redisRepository) filesKey(id string) string   { return fmt.Sprintf("project:%s:files", id) }
func (r *redisRepository) chatKey(id string) string    { return fmt.Sprintf("project:%s:chat", id) }
func (r *redisRepository) ownerKey(owner string) string {
	return fmt.Sprintf("owner:%s:projects", owner)
}

func (r *redisRepository) CreateProject(ctx context.Context, project *model.Project) error {
	meta, err := json.Marshal(metaOf(project))
	if err != nil {
		return fmt.Errorf("could not encode project: %w", err)
	}
	fileFields, err := encodeFiles(project.Files)
	if err != nil {
		return err
	}
	messages, err := encodeMessages(project.ChatHistory)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, r.projectKey(project.ID), meta, 0)
	if len(fileFields) > 0 {
		pipe.HSet(ctx, r.filesKey(project.ID), fileFields)
	}
	if len(messages) > 0 {
		pipe.RPush(ctx, r.chatKey(project.ID), messages...)
	}
	pipe.SAdd(ctx, r.ownerKey(project.OwnerID), project.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	raw, err := r.rdb.Get(ctx, r.projectKey(projectID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	var meta projectMeta
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("could not decode project: %w", err)
	}

	fileMap, err := r.rdb.HGetAll(ctx, r.filesKey(projectID)).Result()
	if err != nil {
		return nil, fmt.Errorf("could not get files: %w", err)
	}
	files := make(map[string]model.ProjectFile, len(fileMap))
	for name, v := range fileMap {
		var f model.ProjectFile
		if err := json.Unmarshal([]byte(v), &f); err != nil {
			return nil, fmt.Errorf("could not decode file %s: %w", name, err)
		}
		files[name] = f
	}

	rawMessages, err := r.rdb.LRange(ctx, r.chatKey(projectID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("could not get chat history: %w", err)
	}
	messages := make([]model.ChatMessage, 0, len(rawMessages))
	for _, v := range rawMessages {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(v), &msg); err != nil {
			return nil, fmt.Errorf("could not decode chat message: %w", err)
		}
		messages = append(messages, msg)
	}

	return &model.Project{
		ID:          meta.ID,
		Title:       meta.Title,
		Description: meta.Description,
		Template:    meta.Template,
		Files:       files,
		ChatHistory: messages,
		OwnerID:     meta.OwnerID,
		CreatedAt:   meta.CreatedAt,
		UpdatedAt:   meta.UpdatedAt,
	}, nil
}

func (r *redisRepository) ListProjectsByOwner(ctx context.Context, ownerID string) ([]*model.Project, error) {
	ids, err := r.rdb.SMembers(ctx, r.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}
	projects := make([]*model.Project, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetProject(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *redisRepository) UpsertFiles(ctx context.Context, projectID string, files map[string]model.ProjectFile, at time.Time) error {
	fields, err := encodeFiles(files)
	if err != nil {
		return err
	}
	return r.update(ctx, projectID, at, func(pipe redis.Pipeliner) {
		if len(fields) > 0 {
			pipe.HSet(ctx, r.filesKey(projectID), fields)
		}
	})
}

func (r *redisRepository) AppendMessage(ctx context.Context, projectID string, message model.ChatMessage, at time.Time) error {
	encoded, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("could not encode chat message: %w", err)
	}
	return r.update(ctx, projectID, at, func(pipe redis.Pipeliner) {
		pipe.RPush(ctx, r.chatKey(projectID), encoded)
	})
}

func (r *redisRepository) DeleteProject(ctx context.Context, projectID string) error {
	key := r.projectKey(projectID)
	return r.watch(ctx, key, func(tx *redis.Tx) error {
		meta, err := getMeta(ctx, tx, key)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key, r.filesKey(projectID), r.chatKey(projectID))
			pipe.SRem(ctx, r.ownerKey(meta.OwnerID), projectID)
			return nil
		})
		return err
	})
}

// update runs mutate and the updated_at bump in one MULTI, guarded by WATCH
// on the metadata key so a concurrent delete aborts the write.
func (r *redisRepository) update(ctx context.Context, projectID string, at time.Time, mutate func(redis.Pipeliner)) error {
	key := r.projectKey(projectID)
	return r.watch(ctx, key, func(tx *redis.Tx) error {
		meta, err := getMeta(ctx, tx, key)
		if err != nil {
			return err
		}
		if at.After(meta.UpdatedAt) {
			meta.UpdatedAt = at
		}
		encoded, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("could not encode project: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			mutate(pipe)
			pipe.Set(ctx, key, encoded, 0)
			return nil
		})
		return err
	})
}

func (r *redisRepository) watch(ctx context.Context, key string, fn func(*redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := r.rdb.Watch(ctx, fn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("project %s: too much contention: %w", key, redis.TxFailedErr)
}

func getMeta(ctx context.Context, tx *redis.Tx, key string) (*projectMeta, error) {
	raw, err := tx.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var meta projectMeta
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("could not decode project: %w", err)
	}
	return &meta, nil
}

// --- Helper Functions ---
func metaOf(p *model.Project) projectMeta {
	return projectMeta{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Template:    p.Template,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func encodeFiles(files map[string]model.ProjectFile) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(files))
	for name, f := range files {
		data, err := json.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("could not encode file %s: %w", name, err)
		}
		fields[name] = data
	}
	return fields, nil
}

func encodeMessages(messages []model.ChatMessage) ([]interface{}, error) {
	out := make([]interface{}, 0, len(messages))
	for _, m := range messages {
		data, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("could not encode chat message: %w", err)
		}
		out = append(out, data)
	}
	return out, nil
}
