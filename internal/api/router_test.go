package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"codecraft/backend/internal/api"
	app_errors "codecraft/backend/internal/errors"
	"codecraft/backend/internal/interfaces/mocks"
	"codecraft/backend/internal/model"
)

func TestNewRouter(t *testing.T) {
	projects := mocks.NewMockProjectService(t)
	users := mocks.NewMockAccountService(t)
	router := api.NewRouter(api.NewProjectHandler(projects), api.NewUserHandler(users), []string{"*"})

	t.Run("Health", func(t *testing.T) {
		for _, path := range []string{"/health", "/healthz"} {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rr.Code, path)
		}
	})

	t.Run("Static segment wins over project id", func(t *testing.T) {
		projects.On("ListByOwner", mock.Anything, "user_1").Return([]*model.Project{}, nil).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/user/user_1", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Project id reaches the handler", func(t *testing.T) {
		projects.On("Get", mock.Anything, "abc").Return(nil, app_errors.ErrProjectNotFound).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/abc", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/projects/create", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
