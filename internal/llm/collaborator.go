package llm

import "context"

// Collaborator is the external code-generating AI. It takes a prompt and
// returns whatever raw text the model produced; no schema is guaranteed.
type Collaborator interface {
	Send(ctx context.Context, prompt string) (string, error)
}
