package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codecraft/backend/internal/account"
	"codecraft/backend/internal/api"
	app_errors "codecraft/backend/internal/errors"
	"codecraft/backend/internal/interfaces/mocks"
)

func setupUserHandler(t *testing.T) (*api.UserHandler, *mocks.MockAccountService) {
	mockSvc := mocks.NewMockAccountService(t)
	return api.NewUserHandler(mockSvc), mockSvc
}

func TestUserHandler_HandleRegisterUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupUserHandler(t)
		mockSvc.On("CreateOrUpdate", mock.Anything, mock.MatchedBy(func(p account.Profile) bool {
			return p.ClerkID == "user_1" && p.Email == "ada@example.com" && p.FirstName != nil && *p.FirstName == "Ada"
		})).Return(&account.User{ID: 1, ClerkID: "user_1", Email: "ada@example.com"}, nil).Once()

		body := `{"clerk_id":"user_1","email":"ada@example.com","first_name":"Ada"}`
		req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleRegisterUser(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp api.RegisterUserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "user_1", resp.User.ClerkID)
	})

	t.Run("Failure - Invalid email", func(t *testing.T) {
		handler, _ := setupUserHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{"clerk_id":"user_1","email":"nope"}`))
		rr := httptest.NewRecorder()
		handler.HandleRegisterUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "email")
	})
}

func TestUserHandler_HandleGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupUserHandler(t)
		mockSvc.On("Get", mock.Anything, "user_1").Return(&account.User{ClerkID: "user_1"}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/users/user_1", nil), "clerkID", "user_1")
		rr := httptest.NewRecorder()
		handler.HandleGetUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		handler, mockSvc := setupUserHandler(t)
		mockSvc.On("Get", mock.Anything, "ghost").Return(nil, app_errors.ErrUserNotFound).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil), "clerkID", "ghost")
		rr := httptest.NewRecorder()
		handler.HandleGetUser(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, rr.Body.String())
	})
}

func TestUserHandler_HandleListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupUserHandler(t)
		mockSvc.On("List", mock.Anything).Return([]account.User{{ClerkID: "a"}, {ClerkID: "b"}}, nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleListUsers(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var users []account.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
		assert.Len(t, users, 2)
	})

	t.Run("Failure", func(t *testing.T) {
		handler, mockSvc := setupUserHandler(t)
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("db closed")).Once()

		rr := httptest.NewRecorder()
		handler.HandleListUsers(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUserHandler_HandleDeleteUser(t *testing.T) {
	handler, mockSvc := setupUserHandler(t)
	mockSvc.On("Delete", mock.Anything, "user_1").Return(nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/users/user_1", nil), "clerkID", "user_1")
	rr := httptest.NewRecorder()
	handler.HandleDeleteUser(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
