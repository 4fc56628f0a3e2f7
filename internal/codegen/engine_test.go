package codegen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codecraft/backend/internal/codegen"
	app_errors "codecraft/backend/internal/errors"
	"codecraft/backend/internal/llm/mocks"
	"codecraft/backend/internal/model"
)

func TestEngine_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Structured reply", func(t *testing.T) {
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, "a todo app").
			Return(`{"project_title":"Todo","explanation":"ok","files":{"App.js":{"code":"x"}}}`, nil).Once()

		result, err := codegen.NewEngine(collaborator).Generate(ctx, "a todo app", "react")

		require.NoError(t, err)
		assert.Equal(t, &model.GenerationResult{
			ProjectTitle:       "Todo",
			Explanation:        "ok",
			Files:              map[string]model.ProjectFile{"App.js": {Name: "App.js", Content: "x", Language: "javascript"}},
			GeneratedFileNames: []string{"App.js"},
		}, result)
	})

	t.Run("Unstructured reply yields the fallback project", func(t *testing.T) {
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, "a todo app").Return("oops", nil).Once()

		result, err := codegen.NewEngine(collaborator).Generate(ctx, "a todo app", "react")

		require.NoError(t, err)
		assert.Equal(t, codegen.FallbackTitle, result.ProjectTitle)
		assert.Equal(t, []string{"App.js"}, result.GeneratedFileNames)
		require.Len(t, result.Files, 1)
		assert.Equal(t, codegen.FallbackCode, result.Files["App.js"].Content)
		assert.Equal(t, "javascript", result.Files["App.js"].Language)
	})

	t.Run("Generated file order follows the reply", func(t *testing.T) {
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, mock.Anything).
			Return(`{"files":{"z.css":"1","a.py":"2","m.md":{"code":"3"}}}`, nil).Once()

		result, err := codegen.NewEngine(collaborator).Generate(ctx, "p", "")

		require.NoError(t, err)
		assert.Equal(t, []string{"z.css", "a.py", "m.md"}, result.GeneratedFileNames)
		assert.Equal(t, "python", result.Files["a.py"].Language)
		assert.Equal(t, codegen.DefaultTitle, result.ProjectTitle)
	})

	t.Run("Collaborator failure is a GenerationError", func(t *testing.T) {
		cause := errors.New("connection refused")
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, mock.Anything).Return("", cause).Once()

		result, err := codegen.NewEngine(collaborator).Generate(ctx, "p", "react")

		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrGeneration)
		assert.ErrorIs(t, err, cause)
		var genErr *app_errors.GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "generate", genErr.Op)
	})

	t.Run("Timeout bounds the call", func(t *testing.T) {
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return("", context.DeadlineExceeded).Once()

		_, err := codegen.NewEngine(collaborator, codegen.WithTimeout(10*time.Millisecond)).Generate(ctx, "p", "")

		assert.ErrorIs(t, err, app_errors.ErrGeneration)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestEngine_Revise(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	current := map[string]model.ProjectFile{
		"App.js": {Name: "App.js", Content: "<button/>", Language: "javascript"},
	}

	t.Run("Plain text reply is conversation only", func(t *testing.T) {
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, mock.AnythingOfType("string")).Return("Sure, done.", nil).Once()

		outcome, err := codegen.NewEngine(collaborator, codegen.WithClock(func() time.Time { return fixed })).
			Revise(ctx, "make button red", current)

		require.NoError(t, err)
		assert.Equal(t, &model.ChatOutcome{Message: "Sure, done.", Sender: model.SenderAI, Timestamp: fixed}, outcome)
		assert.False(t, outcome.HasFileUpdates())
	})

	t.Run("Prompt carries the message and current files", func(t *testing.T) {
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, codegen.BuildRevisionPrompt("make button red", current, 0)).
			Return(`{"explanation":"ok"}`, nil).Once()

		outcome, err := codegen.NewEngine(collaborator).Revise(ctx, "make button red", current)

		require.NoError(t, err)
		assert.Equal(t, "ok", outcome.Message)
		assert.Nil(t, outcome.UpdatedFiles)
	})

	t.Run("Returned files replace content and infer language", func(t *testing.T) {
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, mock.Anything).
			Return(`{"explanation":"Made it red","files":{"App.js":{"code":"<button red/>"},"App.css":"button{color:red}"}}`, nil).Once()

		outcome, err := codegen.NewEngine(collaborator).Revise(ctx, "make button red", current)

		require.NoError(t, err)
		assert.Equal(t, "Made it red", outcome.Message)
		assert.Equal(t, map[string]model.ProjectFile{
			"App.js":  {Name: "App.js", Content: "<button red/>", Language: "javascript"},
			"App.css": {Name: "App.css", Content: "button{color:red}", Language: "css"},
		}, outcome.UpdatedFiles)
	})

	t.Run("Collaborator failure is a GenerationError", func(t *testing.T) {
		collaborator := mocks.NewMockCollaborator(t)
		collaborator.On("Send", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()

		outcome, err := codegen.NewEngine(collaborator).Revise(ctx, "hi", current)

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, app_errors.ErrGeneration)
	})
}
