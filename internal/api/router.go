package api

import (
	"net/http"
	"time"

	// This blank import registers the API definitions with swaggo.
	_ "codecraft/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(projectHandler *ProjectHandler, userHandler *UserHandler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	health := func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Health check successful"})
	}
	r.Get("/health", health)
	r.Get("/healthz", health)

	r.Route("/api", func(r chi.Router) {

		// Plain CRUD routes get a request timeout.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Projects ---
			r.Get("/projects/user/{ownerID}", projectHandler.HandleListUserProjects)
			r.Get("/projects/{projectID}", projectHandler.HandleGetProject)
			r.Put("/projects/{projectID}/files", projectHandler.HandleUpdateFiles)
			r.Delete("/projects/{projectID}", projectHandler.HandleDeleteProject)

			// --- Users ---
			r.Post("/users/register", userHandler.HandleRegisterUser)
			r.Get("/users", userHandler.HandleListUsers)
			r.Get("/users/{clerkID}", userHandler.HandleGetUser)
			r.Delete("/users/{clerkID}", userHandler.HandleDeleteUser)
		})

		// Routes that wait on the AI collaborator. They are bounded by the
		// engine's own timeout instead of the router's.
		r.Group(func(r chi.Router) {
			r.Post("/projects/generate", projectHandler.HandleGenerate)
			r.Post("/projects/create", projectHandler.HandleCreateProject)
			r.Post("/projects/{projectID}/chat", projectHandler.HandleChat)
		})
	})

	return r
}
