package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"codecraft/backend/internal/account"
	"codecraft/backend/internal/interfaces"
)

// RegisterUserRequest is the body of POST /users/register.
type RegisterUserRequest struct {
	ClerkID   string  `json:"clerk_id" validate:"required" example:"user_2abc"`
	Email     string  `json:"email" validate:"required,email" example:"ada@example.com"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	ImageURL  *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// RegisterUserResponse wraps the stored user.
type RegisterUserResponse struct {
	Message string        `json:"message"`
	User    *account.User `json:"user"`
	Success bool          `json:"success"`
}

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service interfaces.AccountService
}

func NewUserHandler(svc interfaces.AccountService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleRegisterUser godoc
// @Summary      Register a user
// @Description  Creates the user or updates the existing record with the same clerk id.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterUserRequest  true  "User"
// @Success      201      {object}  RegisterUserResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /users/register [post]
func (h *UserHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	user, err := h.service.CreateOrUpdate(r.Context(), account.Profile{
		ClerkID:   req.ClerkID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, RegisterUserResponse{
		Message: "User created/updated successfully",
		User:    user,
		Success: true,
	})
}

// HandleListUsers godoc
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Success      200  {array}   account.User
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// HandleGetUser godoc
// @Summary      Get a user by clerk id
// @Tags         Users
// @Produce      json
// @Param        clerkID  path      string  true  "Clerk ID"
// @Success      200      {object}  account.User
// @Failure      404      {object}  ErrorResponse
// @Router       /users/{clerkID} [get]
func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), chi.URLParam(r, "clerkID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Tags         Users
// @Produce      json
// @Param        clerkID  path      string  true  "Clerk ID"
// @Success      200      {object}  MessageResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /users/{clerkID} [delete]
func (h *UserHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "clerkID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully", Success: true})
}
