package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Secret file names looked up on Render when the matching credential is empty.
const (
	secretHubSpotAccessToken = "hubspot_access_token"
	secretOpenAIAPIKey       = "openai_api_key"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Upload      Upload      `mapstructure:",squash"`
	Validation  Validation  `mapstructure:",squash"`
	HubSpot     HubSpot     `mapstructure:",squash"`
	HubSpotSync HubSpotSync `mapstructure:",squash"`
	OpenAI      OpenAI      `mapstructure:",squash"`
	Render      Render      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
	Version  string `mapstructure:"app_version"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	BasePath       string   `mapstructure:"api_base_path"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	Path        string `mapstructure:"database_path"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type Upload struct {
	Dir          string `mapstructure:"upload_dir"`
	MaxSizeBytes int64  `mapstructure:"upload_max_size_bytes"`
}

// Validation bounds the years accepted by the row validator.
type Validation struct {
	MinYear int `mapstructure:"validation_min_year"`
	MaxYear int `mapstructure:"validation_max_year"`
}

type HubSpot struct {
	URL         string        `mapstructure:"hubspot_url"`
	AccessToken string        `mapstructure:"hubspot_access_token"`
	Timeout     time.Duration `mapstructure:"hubspot_timeout"`
	PageLimit   int           `mapstructure:"hubspot_page_limit"`
	MaxPages    int           `mapstructure:"hubspot_max_pages"`
}

type HubSpotSync struct {
	Quarter      string   `mapstructure:"hubspot_sync_quarter"`
	Year         int      `mapstructure:"hubspot_sync_year"`
	CronSchedule string   `mapstructure:"hubspot_sync_cron"`
	Enabled      bool     `mapstructure:"hubspot_sync_enabled"`
	DataTypes    []string `mapstructure:"hubspot_sync_data_types"`
}

type OpenAI struct {
	URL         string        `mapstructure:"openai_url"`
	APIKey      string        `mapstructure:"openai_api_key"`
	Model       string        `mapstructure:"openai_model"`
	MaxTokens   int           `mapstructure:"openai_max_tokens"`
	Temperature float64       `mapstructure:"openai_temperature"`
	Timeout     time.Duration `mapstructure:"openai_timeout"`
}

type Render struct {
	URL       string `mapstructure:"render_url"`
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_VERSION", "1.0.0")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("API_BASE_PATH", "/api")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_URL", "localhost:5432/elt_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_PATH", "data/elt_dashboard.db")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE_BYTES", 10*1024*1024)

	viper.SetDefault("VALIDATION_MIN_YEAR", 2020)
	viper.SetDefault("VALIDATION_MAX_YEAR", 2030)

	viper.SetDefault("HUBSPOT_URL", "https://api.hubapi.com")
	viper.SetDefault("HUBSPOT_ACCESS_TOKEN", "")
	viper.SetDefault("HUBSPOT_TIMEOUT", "30s")
	viper.SetDefault("HUBSPOT_PAGE_LIMIT", 100)
	viper.SetDefault("HUBSPOT_MAX_PAGES", 10)

	viper.SetDefault("HUBSPOT_SYNC_QUARTER", "Q1")
	viper.SetDefault("HUBSPOT_SYNC_YEAR", 0)           // 0 = current year
	viper.SetDefault("HUBSPOT_SYNC_CRON", "0 2 * * *") // every day at 2am
	viper.SetDefault("HUBSPOT_SYNC_ENABLED", false)
	viper.SetDefault("HUBSPOT_SYNC_DATA_TYPES", "pipeline,revenue")

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4")
	viper.SetDefault("OPENAI_MAX_TOKENS", 2000)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)
	viper.SetDefault("OPENAI_TIMEOUT", "60s")

	viper.SetDefault("RENDER_URL", "https://api.render.com/v1")
	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: using environment loaded by godotenv: ", err)
	} else {
		logrus.Info("config: .env read by viper")
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

	if config.Render.ServiceID != "" && config.Render.APIKey != "" {
		renderClient := NewRenderClient(config)
		secrets, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("config: loading render secrets: %w", err)
		}
		config.applySecrets(secrets)
	}

	config.Database.DSN, err = config.Database.buildDSN()
	if err != nil {
		return nil, err
	}

	config.Server.BasePath = normalizeBasePath(config.Server.BasePath)

	return config, nil
}

func (c *Config) applySecrets(secrets map[string]string) {
	if token, ok := secrets[secretHubSpotAccessToken]; ok && c.HubSpot.AccessToken == "" {
		c.HubSpot.AccessToken = strings.TrimSpace(token)
	}
	if key, ok := secrets[secretOpenAIAPIKey]; ok && c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = strings.TrimSpace(key)
	}
}

func (d Database) buildDSN() (string, error) {
	switch d.Driver {
	case DriverPostgres:
		return fmt.Sprintf("%s://%s:%s@%s", d.Driver, d.User, d.Password, d.URL), nil
	case DriverSQLite:
		return d.Path, nil
	default:
		return "", fmt.Errorf("config: unsupported database driver %q", d.Driver)
	}
}

func normalizeBasePath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, relying on process environment")
}
