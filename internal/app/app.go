package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"codecraft/backend/internal/account"
	"codecraft/backend/internal/api"
	"codecraft/backend/internal/codegen"
	"codecraft/backend/internal/config"
	"codecraft/backend/internal/database"
	"codecraft/backend/internal/llm"
	"codecraft/backend/internal/repository"
	"codecraft/backend/internal/service"
	"codecraft/backend/internal/store"
	"codecraft/backend/internal/template"
)

// App holds the wired HTTP server and the resources it must release.
type App struct {
	Server  *http.Server
	closers []func() error
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.LLMProvider == config.ProviderOllama {
		if err := waitForOllama(ctx, cfg.OllamaURL); err != nil {
			slog.Error("Ollama never became ready", "error", err)
			return 1
		}
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("Failed to release resources", "error", err)
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "store", cfg.StoreBackend, "llm_provider", cfg.LLMProvider)
		serveErr <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

// NewApp builds every dependency from cfg without starting the server.
func NewApp(cfg *config.Config) (*App, error) {
	a := &App{}

	repo, err := a.newRepository(cfg)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	accountDB, err := account.Open(cfg.AccountDatabasePath)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to open account database: %w", err)
	}
	if sqlDB, err := accountDB.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	collaborator, err := newCollaborator(context.Background(), cfg)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	templates, err := template.Builtin()
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	slog.Info("Project templates loaded", "templates", templates.Names())

	engine := codegen.NewEngine(collaborator,
		codegen.WithTimeout(cfg.LLMTimeout),
		codegen.WithContextBudget(cfg.MaxContextBytes),
	)
	projectService := service.NewProjectService(engine, store.New(repo), templates)
	accountService := account.NewService(account.NewRepository(accountDB))

	router := api.NewRouter(
		api.NewProjectHandler(projectService),
		api.NewUserHandler(accountService),
		cfg.CORSAllowedOrigins,
	)

	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // AI-backed routes are bounded by LLM_TIMEOUT instead.
		IdleTimeout:       120 * time.Second,
	}
	return a, nil
}

// Close releases every resource in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) newRepository(cfg *config.Config) (repository.Repository, error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		return repository.NewSQLiteRepository(db), nil
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		a.closers = append(a.closers, rdb.Close)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
		return repository.NewRedisRepository(rdb), nil
	default:
		slog.Warn("Using in-memory project store; projects are lost on restart.")
		return repository.NewMemoryRepository(), nil
	}
}

func newCollaborator(ctx context.Context, cfg *config.Config) (llm.Collaborator, error) {
	var c llm.Collaborator
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.SystemPrompt)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		c = gemini
	default:
		c = llm.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.SystemPrompt)
	}

	if cfg.LLMRateLimit > 0 {
		burst := cfg.LLMBurst
		if burst < 1 {
			burst = 1
		}
		c = llm.WithRateLimit(c, rate.NewLimiter(rate.Limit(cfg.LLMRateLimit), burst))
	}
	return c, nil
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// waitForOllama polls the Ollama root endpoint until it answers 200 or ctx ends.
func waitForOllama(ctx context.Context, ollamaURL string) error {
	slog.Info("Waiting for Ollama to be ready...")
	client := &http.Client{Timeout: 2 * time.Second}
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ollamaURL, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			ok := resp.StatusCode == http.StatusOK
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in ollama health check", "error", bErr)
			}
			if ok {
				slog.Info("Ollama is ready.")
				return nil
			}
		}
		slog.Debug("Ollama not ready yet, retrying in 3 seconds...", "url", ollamaURL, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(3 * time.Second):
		}
	}
}
