package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"codecraft/backend/internal/interfaces"
	"codecraft/backend/internal/model"
	"codecraft/backend/internal/service"
)

// GenerateRequest is the body of POST /projects/generate.
type GenerateRequest struct {
	Prompt   string `json:"prompt" validate:"required,max=20000" example:"a todo app"`
	Template string `json:"template" example:"react"`
}

// GeneratedCode is one file of a GenerateResponse.
type GeneratedCode struct {
	Code string `json:"code"`
}

// GenerateResponse lists files as name to {code}, in the order the AI produced them.
type GenerateResponse struct {
	ProjectTitle   string                   `json:"project_title"`
	Explanation    string                   `json:"explanation"`
	Files          map[string]GeneratedCode `json:"files"`
	GeneratedFiles []string                 `json:"generated_files"`
}

// CreateProjectRequest is the body of POST /projects/create.
type CreateProjectRequest struct {
	Title         string  `json:"title" validate:"required,max=200" example:"Todo"`
	Description   *string `json:"description,omitempty"`
	Template      string  `json:"template" example:"react"`
	UserClerkID   string  `json:"user_clerk_id" validate:"required" example:"user_2abc"`
	InitialPrompt *string `json:"initial_prompt,omitempty" example:"a todo app"`
}

// UpdateFilesRequest carries a partial file update.
type UpdateFilesRequest struct {
	Files map[string]model.ProjectFile `json:"files" validate:"required,min=1"`
}

// ChatRequest is the body of POST /projects/{projectID}/chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=20000" example:"make the button red"`
}

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service interfaces.ProjectService
}

func NewProjectHandler(svc interfaces.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// HandleGenerate godoc
// @Summary      Generate code
// @Description  Turns a prompt into a set of files without creating a project.
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "Prompt"
// @Success      200      {object}  GenerateResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /projects/generate [post]
func (h *ProjectHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.service.Generate(r.Context(), req.Prompt, req.Template)
	if err != nil {
		respondWithError(w, err)
		return
	}

	resp := GenerateResponse{
		ProjectTitle:   result.ProjectTitle,
		Explanation:    result.Explanation,
		Files:          make(map[string]GeneratedCode, len(result.Files)),
		GeneratedFiles: result.GeneratedFileNames,
	}
	for name, f := range result.Files {
		resp.Files[name] = GeneratedCode{Code: f.Content}
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandleCreateProject godoc
// @Summary      Create a project
// @Description  Creates a project from an initial prompt, or from the template's seed files when no prompt is given.
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        request  body      CreateProjectRequest  true  "Project"
// @Success      200      {object}  model.Project
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /projects/create [post]
func (h *ProjectHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	create := service.CreateProjectRequest{
		Title:       req.Title,
		Description: req.Description,
		Template:    req.Template,
		OwnerID:     req.UserClerkID,
	}
	if req.InitialPrompt != nil {
		create.InitialPrompt = *req.InitialPrompt
	}
	project, err := h.service.Create(r.Context(), create)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

// HandleListUserProjects godoc
// @Summary      List a user's projects
// @Tags         Projects
// @Produce      json
// @Param        ownerID  path      string  true  "User clerk id"
// @Success      200      {array}   model.Project
// @Failure      500      {object}  ErrorResponse
// @Router       /projects/user/{ownerID} [get]
func (h *ProjectHandler) HandleListUserProjects(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	projects, err := h.service.ListByOwner(r.Context(), ownerID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, projects)
}

// HandleGetProject godoc
// @Summary      Get a project
// @Tags         Projects
// @Produce      json
// @Param        projectID  path      string  true  "Project ID"
// @Success      200        {object}  model.Project
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectID} [get]
func (h *ProjectHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

// HandleUpdateFiles godoc
// @Summary      Update project files
// @Description  Overwrites or inserts the named files. Files not named are left untouched.
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        projectID  path      string              true  "Project ID"
// @Param        request    body      UpdateFilesRequest  true  "Files"
// @Success      200        {object}  model.Project
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectID}/files [put]
func (h *ProjectHandler) HandleUpdateFiles(w http.ResponseWriter, r *http.Request) {
	var req UpdateFilesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	project, err := h.service.UpdateFiles(r.Context(), chi.URLParam(r, "projectID"), req.Files)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

// HandleChat godoc
// @Summary      Chat about a project
// @Description  Sends the message and the current files to the AI. Returned files replace the project's files of the same name.
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        projectID  path      string       true  "Project ID"
// @Param        request    body      ChatRequest  true  "Message"
// @Success      200        {object}  model.ChatOutcome
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      502        {object}  ErrorResponse
// @Router       /projects/{projectID}/chat [post]
func (h *ProjectHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	outcome, err := h.service.Chat(r.Context(), chi.URLParam(r, "projectID"), req.Message)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, outcome)
}

// HandleDeleteProject godoc
// @Summary      Delete a project
// @Tags         Projects
// @Produce      json
// @Param        projectID  path      string  true  "Project ID"
// @Success      200        {object}  MessageResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /projects/{projectID} [delete]
func (h *ProjectHandler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully", Success: true})
}
