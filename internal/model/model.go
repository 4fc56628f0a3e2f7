package model

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ProjectFile is a single source file inside a project. Its identity is Name.
type ProjectFile struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// ChatMessage stores a single message in a project's chat history.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Project holds the files and chat history of one generated project.
type Project struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description *string                `json:"description,omitempty"`
	Template    string                 `json:"template"`
	Files       map[string]ProjectFile `json:"files"`
	ChatHistory []ChatMessage          `json:"chat_history"`
	OwnerID     string                 `json:"user_clerk_id"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// Clone returns a deep copy so callers can never alias stored state.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Description != nil {
		d := *p.Description
		cp.Description = &d
	}
	cp.Files = make(map[string]ProjectFile, len(p.Files))
	for name, f := range p.Files {
		cp.Files[name] = f
	}
	cp.ChatHistory = append([]ChatMessage(nil), p.ChatHistory...)
	return &cp
}

// GenerationResult is the canonical shape every fresh generation is reduced to.
type GenerationResult struct {
	ProjectTitle string                 `json:"project_title"`
	Explanation  string                 `json:"explanation"`
	Files        map[string]ProjectFile `json:"files"`
	// GeneratedFileNames keeps the order files appeared in the AI response.
	GeneratedFileNames []string `json:"generated_files"`
}

// ChatOutcome is the AI side of one chat turn.
type ChatOutcome struct {
	Message      string                 `json:"message"`
	Sender       Sender                 `json:"sender"`
	Timestamp    time.Time              `json:"timestamp"`
	UpdatedFiles map[string]ProjectFile `json:"updated_files,omitempty"`
}

// HasFileUpdates reports whether the turn changed any code.
func (o *ChatOutcome) HasFileUpdates() bool {
	return o != nil && len(o.UpdatedFiles) > 0
}

// ProjectMetadata is the non-file, non-chat part of a new project.
type ProjectMetadata struct {
	Title       string
	Description *string
	Template    string
	OwnerID     string
}
