package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codecraft/backend/internal/api"
	app_errors "codecraft/backend/internal/errors"
	"codecraft/backend/internal/interfaces/mocks"
	"codecraft/backend/internal/model"
	"codecraft/backend/internal/service"
)

func setupProjectHandler(t *testing.T) (*api.ProjectHandler, *mocks.MockProjectService) {
	mockSvc := mocks.NewMockProjectService(t)
	return api.NewProjectHandler(mockSvc), mockSvc
}

// withURLParam attaches a chi route parameter, as the router would.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestProjectHandler_HandleGenerate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("Generate", mock.Anything, "a todo app", "react").Return(&model.GenerationResult{
			ProjectTitle: "Todo",
			Explanation:  "ok",
			Files: map[string]model.ProjectFile{
				"App.js": {Name: "App.js", Content: "x", Language: "javascript"},
			},
			GeneratedFileNames: []string{"App.js"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/projects/generate", strings.NewReader(`{"prompt":"a todo app","template":"react"}`))
		rr := httptest.NewRecorder()
		handler.HandleGenerate(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"project_title":"Todo","explanation":"ok","files":{"App.js":{"code":"x"}},"generated_files":["App.js"]}`, rr.Body.String())
	})

	t.Run("Failure - Missing prompt", func(t *testing.T) {
		handler, _ := setupProjectHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/projects/generate", strings.NewReader(`{"template":"react"}`))
		rr := httptest.NewRecorder()
		handler.HandleGenerate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "prompt")
	})

	t.Run("Failure - AI collaborator down", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("Generate", mock.Anything, "a todo app", "").
			Return(nil, app_errors.NewGenerationError("generate", errors.New("connection refused"))).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/projects/generate", strings.NewReader(`{"prompt":"a todo app"}`))
		rr := httptest.NewRecorder()
		handler.HandleGenerate(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused", "internal detail must not leak")
	})
}

func TestProjectHandler_HandleCreateProject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(r service.CreateProjectRequest) bool {
			return r.Title == "Todo" && r.OwnerID == "user_1" && r.InitialPrompt == "a todo app"
		})).Return(&model.Project{ID: "p1", Title: "Todo", OwnerID: "user_1", CreatedAt: now, UpdatedAt: now}, nil).Once()

		body := `{"title":"Todo","user_clerk_id":"user_1","initial_prompt":"a todo app"}`
		req := httptest.NewRequest(http.MethodPost, "/api/projects/create", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleCreateProject(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "p1", resp.ID)
		assert.Equal(t, "user_1", resp.OwnerID)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupProjectHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/projects/create", strings.NewReader(`{"title":`))
		rr := httptest.NewRecorder()
		handler.HandleCreateProject(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Missing owner", func(t *testing.T) {
		handler, _ := setupProjectHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/projects/create", strings.NewReader(`{"title":"Todo"}`))
		rr := httptest.NewRecorder()
		handler.HandleCreateProject(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "user_clerk_id")
	})
}

func TestProjectHandler_HandleGetProject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("Get", mock.Anything, "p1").Return(&model.Project{ID: "p1"}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/projects/p1", nil), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleGetProject(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("Get", mock.Anything, "gone").Return(nil, app_errors.ErrProjectNotFound).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/projects/gone", nil), "projectID", "gone")
		rr := httptest.NewRecorder()
		handler.HandleGetProject(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Project not found"}`, rr.Body.String())
	})
}

func TestProjectHandler_HandleUpdateFiles(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("UpdateFiles", mock.Anything, "p1", mock.MatchedBy(func(files map[string]model.ProjectFile) bool {
			return len(files) == 1 && files["App.js"].Content == "v2"
		})).Return(&model.Project{ID: "p1"}, nil).Once()

		body := `{"files":{"App.js":{"name":"App.js","content":"v2","language":"javascript"}}}`
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/projects/p1/files", strings.NewReader(body)), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleUpdateFiles(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Empty files", func(t *testing.T) {
		handler, _ := setupProjectHandler(t)

		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/projects/p1/files", strings.NewReader(`{"files":{}}`)), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleUpdateFiles(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Name disagrees with key", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("UpdateFiles", mock.Anything, "p1", mock.Anything).
			Return(nil, errors.Join(app_errors.ErrValidation, errors.New("file b.js is stored under key a.js"))).Once()

		body := `{"files":{"a.js":{"name":"b.js","content":"x"}}}`
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/projects/p1/files", strings.NewReader(body)), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleUpdateFiles(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProjectHandler_HandleChat(t *testing.T) {
	t.Run("Success - Conversation only", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		mockSvc.On("Chat", mock.Anything, "p1", "make button red").
			Return(&model.ChatOutcome{Message: "Sure, done.", Sender: model.SenderAI, Timestamp: ts}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/projects/p1/chat", strings.NewReader(`{"message":"make button red"}`)), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Sure, done.","sender":"ai","timestamp":"2025-01-01T00:00:00Z"}`, rr.Body.String())
	})

	t.Run("Success - Path id wins over a body project_id", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("Chat", mock.Anything, "p1", "hi").
			Return(&model.ChatOutcome{Message: "hello", Sender: model.SenderAI}, nil).Once()

		body := `{"message":"hi","project_id":"other"}`
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/projects/p1/chat", strings.NewReader(body)), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Project not found", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("Chat", mock.Anything, "gone", "hi").Return(nil, app_errors.ErrProjectNotFound).Once()

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/projects/gone/chat", strings.NewReader(`{"message":"hi"}`)), "projectID", "gone")
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - Empty message", func(t *testing.T) {
		handler, _ := setupProjectHandler(t)

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/projects/p1/chat", strings.NewReader(`{"message":""}`)), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProjectHandler_HandleDeleteProject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("Delete", mock.Anything, "p1").Return(nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/projects/p1", nil), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleDeleteProject(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Project deleted successfully","success":true}`, rr.Body.String())
	})

	t.Run("Failure - Unexpected error", func(t *testing.T) {
		handler, mockSvc := setupProjectHandler(t)
		mockSvc.On("Delete", mock.Anything, "p1").Return(errors.New("disk on fire")).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/projects/p1", nil), "projectID", "p1")
		rr := httptest.NewRecorder()
		handler.HandleDeleteProject(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "disk on fire")
	})
}

func TestProjectHandler_HandleListUserProjects(t *testing.T) {
	handler, mockSvc := setupProjectHandler(t)
	mockSvc.On("ListByOwner", mock.Anything, "user_1").Return([]*model.Project{{ID: "p1"}, {ID: "p2"}}, nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/projects/user/user_1", nil), "ownerID", "user_1")
	rr := httptest.NewRecorder()
	handler.HandleListUserProjects(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []model.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
