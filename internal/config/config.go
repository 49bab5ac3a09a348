package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	LLM            LLM            `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	HistoryCleanup HistoryCleanup `mapstructure:",squash"`
	Clients        []domain.APIClient `mapstructure:"-"`
}

type App struct {
	LogLevel       string `mapstructure:"log_level"`
	Version        string `mapstructure:"app_version"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type LLM struct {
	BaseURL        string  `mapstructure:"llm_base_url"`
	APIKey         string  `mapstructure:"llm_api_key"`
	Model          string  `mapstructure:"llm_model"`
	TimeoutSeconds int     `mapstructure:"llm_timeout_seconds"`
	Temperature    float64 `mapstructure:"llm_temperature"`
	MaxTokens      int     `mapstructure:"llm_max_tokens"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
	// APIClients holds credentialed consumers as "id:role:bcrypt-hash"
	// entries separated by commas.
	APIClients string `mapstructure:"api_clients"`
}

type HistoryCleanup struct {
	CronSchedule  string `mapstructure:"history_cleanup_cron"`
	RetentionDays int    `mapstructure:"history_retention_days"`
	Enabled       bool   `mapstructure:"history_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_VERSION", "3.0")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/kenaz")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 30)
	viper.SetDefault("LLM_TEMPERATURE", 0.7)
	viper.SetDefault("LLM_MAX_TOKENS", 1500)

	viper.SetDefault("AUTH_SECRET", "change_me")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
	viper.SetDefault("API_CLIENTS", "")

	viper.SetDefault("HISTORY_CLEANUP_CRON", "0 3 * * *")
	viper.SetDefault("HISTORY_RETENTION_DAYS", 90)
	viper.SetDefault("HISTORY_CLEANUP_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	clients, err := parseAPIClients(config.Auth.APIClients)
	if err != nil {
		return nil, err
	}
	config.Clients = clients

	return config, nil
}

// AllowedOriginList splits the configured CORS origins.
func (c *Config) AllowedOriginList() []string {
	origins := strings.Split(c.App.AllowedOrigins, ",")
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseAPIClients decodes "id:role:bcrypt-hash" entries. Bcrypt hashes never
// contain ':' so a plain split is safe.
func parseAPIClients(raw string) ([]domain.APIClient, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	entries := strings.Split(raw, ",")
	clients := make([]domain.APIClient, 0, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid API client entry %q, want id:role:hash", entry)
		}

		role, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid role in API client entry %q: %w", entry, err)
		}

		clients = append(clients, domain.APIClient{
			ID:         parts[0],
			Role:       role,
			SecretHash: parts[2],
		})
	}

	return clients, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from: ", location)
			return
		}
	}

	logrus.Debug("no .env file found, relying on process environment")
}
