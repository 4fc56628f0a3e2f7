package codegen

import (
	"context"
	"log/slog"
	"time"

	app_errors "codecraft/backend/internal/errors"
	"codecraft/backend/internal/llm"
	"codecraft/backend/internal/model"
)

// Engine runs the two AI exchanges: generating a project from a prompt and
// revising an existing file set through chat. It keeps no state between calls.
type Engine struct {
	collaborator    llm.Collaborator
	timeout         time.Duration
	maxContextBytes int
	now             func() time.Time
}

type Option func(*Engine)

// WithTimeout bounds every AI call. Zero means no bound beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithContextBudget caps how many bytes of file content a revision prompt carries.
func WithContextBudget(n int) Option {
	return func(e *Engine) { e.maxContextBytes = n }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(collaborator llm.Collaborator, opts ...Option) *Engine {
	e := &Engine{collaborator: collaborator, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate sends prompt verbatim and reduces the reply to a GenerationResult.
// The template is not part of the prompt.
func (e *Engine) Generate(ctx context.Context, prompt, template string) (*model.GenerationResult, error) {
	raw, err := e.send(ctx, "generate", prompt)
	if err != nil {
		return nil, err
	}

	n := Normalize(raw, ModeGenerate, prompt)
	if n.Malformed {
		slog.Warn("AI reply was not a JSON object, using fallback project", "template", template, "response_bytes", len(raw))
	}

	result := &model.GenerationResult{
		ProjectTitle:       n.Title,
		Explanation:        n.Explanation,
		Files:              make(map[string]model.ProjectFile, len(n.Files)),
		GeneratedFileNames: make([]string, 0, len(n.Files)),
	}
	for _, f := range n.Files {
		result.Files[f.Name] = model.ProjectFile{Name: f.Name, Content: f.Code, Language: LanguageFor(f.Name)}
		result.GeneratedFileNames = append(result.GeneratedFileNames, f.Name)
	}
	slog.Debug("Generated project", "title", result.ProjectTitle, "files", result.GeneratedFileNames)
	return result, nil
}

// Revise asks the AI about currentFiles. Every file in the reply fully replaces
// the file of the same name; a reply without files is conversation only.
func (e *Engine) Revise(ctx context.Context, message string, currentFiles map[string]model.ProjectFile) (*model.ChatOutcome, error) {
	prompt := BuildRevisionPrompt(message, currentFiles, e.maxContextBytes)
	raw, err := e.send(ctx, "revise", prompt)
	if err != nil {
		return nil, err
	}

	n := Normalize(raw, ModeChat, message)
	outcome := &model.ChatOutcome{
		Message: n.Explanation,
		Sender:  model.SenderAI,
	}
	if len(n.Files) > 0 {
		outcome.UpdatedFiles = make(map[string]model.ProjectFile, len(n.Files))
		for _, f := range n.Files {
			outcome.UpdatedFiles[f.Name] = model.ProjectFile{Name: f.Name, Content: f.Code, Language: LanguageFor(f.Name)}
		}
	}
	outcome.Timestamp = e.now()
	return outcome, nil
}

func (e *Engine) send(ctx context.Context, op, prompt string) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	start := time.Now()
	raw, err := e.collaborator.Send(ctx, prompt)
	if err != nil {
		slog.Error("AI collaborator call failed", "op", op, "error", err, "elapsed", time.Since(start))
		return "", app_errors.NewGenerationError(op, err)
	}
	slog.Debug("AI collaborator replied", "op", op, "elapsed", time.Since(start), "response_bytes", len(raw))
	return raw, nil
}
