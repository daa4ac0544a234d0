package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"secdash/internal/bootstrap/logging"
	"secdash/internal/errs"
)

type Config struct {
	App       AppConfig       `mapstructure:"app" yaml:"app"`
	Database  DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Ingest    IngestConfig    `mapstructure:"ingest" yaml:"ingest"`
	Assistant AssistantConfig `mapstructure:"assistant" yaml:"assistant"`
}

type AppConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
	Env  string `mapstructure:"env" yaml:"env"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" yaml:"driver"`
	DSN    string `mapstructure:"dsn" yaml:"dsn"`
}

// IngestConfig locates the batch CSV drop directory.
type IngestConfig struct {
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

// AssistantConfig drives the remote chat-completion call. An empty APIKey
// routes every question to the offline rule-based answer.
type AssistantConfig struct {
	APIKey         string  `mapstructure:"api_key" yaml:"api_key"`
	BaseURL        string  `mapstructure:"base_url" yaml:"base_url"`
	Model          string  `mapstructure:"model" yaml:"model"`
	Temperature    float64 `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens" yaml:"max_tokens"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	Referer        string  `mapstructure:"referer" yaml:"referer"`
	Title          string  `mapstructure:"title" yaml:"title"`
}

func Load(ctx context.Context, configFile string) (Config, error) {
	if ctx == nil {
		return Config{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Config{}, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.config"))

	// Best-effort .env preload so the credential can live next to the binary.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SECDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential answers to the legacy OpenRouter name as well.
	_ = v.BindEnv("assistant.api_key", "SECDASH_ASSISTANT_API_KEY", "OPENROUTER_API_KEY")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			// Keep default and env-backed config when no file is provided.
			logging.Warn(logCtx, "config file not found, fallback to defaults and env")
		} else {
			return Config{}, errs.Wrap(err, "read config")
		}
	} else {
		logging.Info(logCtx, "using config file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.Wrap(err, "unmarshal config")
	}

	if cfg.Database.DSN == "" {
		return Config{}, errors.New("database.dsn is required")
	}
	if cfg.Ingest.DataDir == "" {
		return Config{}, errors.New("ingest.data_dir is required")
	}
	if cfg.Assistant.TimeoutSeconds <= 0 {
		return Config{}, errors.New("assistant.timeout_seconds must be positive")
	}

	logging.Info(
		logCtx,
		"config loaded",
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("data_dir", cfg.Ingest.DataDir),
		slog.Bool("assistant_credential", cfg.Assistant.APIKey != ""),
	)

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "secdash")
	v.SetDefault("app.env", "local")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/secdash.sqlite")

	v.SetDefault("ingest.data_dir", "DATA")

	v.SetDefault("assistant.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("assistant.model", "openai/gpt-oss-20b:free")
	v.SetDefault("assistant.temperature", 0.2)
	v.SetDefault("assistant.max_tokens", 400)
	v.SetDefault("assistant.timeout_seconds", 30)
	v.SetDefault("assistant.referer", "http://localhost:8501")
	v.SetDefault("assistant.title", "secdash")
}
