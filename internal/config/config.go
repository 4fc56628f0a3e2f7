package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"

	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// DefaultSystemPrompt asks the model for the JSON shape the normalizer reads.
const DefaultSystemPrompt = `You are an expert software engineer that writes small, complete projects.
Always reply with a single JSON object of the form
{"project_title": string, "explanation": string, "files": {"<file name>": {"code": string}}}.
When revising a project, include only the files you changed, each with its full new content.`

type Config struct {
	AppPort             int           `mapstructure:"APP_PORT"`
	StoreBackend        string        `mapstructure:"STORE_BACKEND"`
	DatabasePath        string        `mapstructure:"DATABASE_PATH"`
	AccountDatabasePath string        `mapstructure:"ACCOUNT_DATABASE_PATH"`
	RedisAddr           string        `mapstructure:"REDIS_ADDR"`
	LLMProvider         string        `mapstructure:"LLM_PROVIDER"`
	OllamaURL           string        `mapstructure:"OLLAMA_URL"`
	OllamaModel         string        `mapstructure:"OLLAMA_MODEL"`
	GeminiAPIKey        string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel         string        `mapstructure:"GEMINI_MODEL"`
	SystemPrompt        string        `mapstructure:"SYSTEM_PROMPT"`
	LLMTimeout          time.Duration `mapstructure:"LLM_TIMEOUT"`
	LLMRateLimit        float64       `mapstructure:"LLM_RATE_LIMIT"`
	LLMBurst            int           `mapstructure:"LLM_BURST"`
	MaxContextBytes     int           `mapstructure:"MAX_CONTEXT_BYTES"`
	CORSAllowedOrigins  []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("STORE_BACKEND", StoreMemory)
	viper.SetDefault("DATABASE_PATH", "/data/codecraft.db")
	viper.SetDefault("ACCOUNT_DATABASE_PATH", "/data/accounts.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("LLM_PROVIDER", ProviderOllama)
	viper.SetDefault("OLLAMA_URL", "http://ollama:11434")
	viper.SetDefault("OLLAMA_MODEL", "qwen2.5-coder:7b")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("SYSTEM_PROMPT", DefaultSystemPrompt)
	viper.SetDefault("LLM_TIMEOUT", "120s")
	viper.SetDefault("LLM_RATE_LIMIT", 2.0)
	viper.SetDefault("LLM_BURST", 4)
	viper.SetDefault("MAX_CONTEXT_BYTES", 200000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the app cannot start with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.StoreBackend)
	}
	switch c.LLMProvider {
	case ProviderOllama:
		if c.OllamaURL == "" {
			return fmt.Errorf("config: OLLAMA_URL is required for the ollama provider")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("config: GEMINI_API_KEY is required for the gemini provider")
		}
	default:
		return fmt.Errorf("config: unknown LLM_PROVIDER %q", c.LLMProvider)
	}
	if c.LLMTimeout < 0 || c.LLMRateLimit < 0 || c.LLMBurst < 0 || c.MaxContextBytes < 0 {
		return fmt.Errorf("config: LLM_TIMEOUT, LLM_RATE_LIMIT, LLM_BURST and MAX_CONTEXT_BYTES must not be negative")
	}
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return fmt.Errorf("config: APP_PORT %d is out of range", c.AppPort)
	}
	return nil
}
