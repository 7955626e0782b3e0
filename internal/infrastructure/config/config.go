package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	MotoManager MotoManagerConfig
	Report      ReportConfig
	AWS         AWSConfig
	History     HistoryConfig
	Archive     ArchiveConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// MotoManagerConfig locates the upstream Moto Manager API and the account used to log in.
type MotoManagerConfig struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

type ReportConfig struct {
	LogoPath        string
	IncludeTimeline bool
	FooterBrand     string
}

// AWSConfig is shared by the DynamoDB history and the S3 archive.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type HistoryConfig struct {
	Enabled          bool
	Table            string
	DynamoDBEndpoint string
}

// ArchiveConfig enables the S3 archive when Bucket is set.
type ArchiveConfig struct {
	Bucket     string
	Endpoint   string
	PresignTTL time.Duration
}

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

// Load reads configuration from the environment (a .env file is loaded beforehand by
// godotenv/autoload in main). Unset keys fall back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port:    v.GetString("SERVER_PORT"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		MotoManager: MotoManagerConfig{
			BaseURL:  v.GetString("MOTO_MANAGER_BASE_URL"),
			Username: v.GetString("MOTO_MANAGER_USERNAME"),
			Password: v.GetString("MOTO_MANAGER_PASSWORD"),
			Timeout:  v.GetDuration("MOTO_MANAGER_TIMEOUT"),
		},
		Report: ReportConfig{
			LogoPath:        v.GetString("REPORT_LOGO_PATH"),
			IncludeTimeline: v.GetBool("REPORT_INCLUDE_TIMELINE"),
			FooterBrand:     v.GetString("REPORT_FOOTER_BRAND"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		History: HistoryConfig{
			Enabled:          v.GetBool("REPORT_HISTORY_ENABLED"),
			Table:            v.GetString("REPORT_GENERATIONS_TABLE"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Archive: ArchiveConfig{
			Bucket:     v.GetString("REPORT_ARCHIVE_BUCKET"),
			Endpoint:   v.GetString("S3_ENDPOINT"),
			PresignTTL: v.GetDuration("REPORT_ARCHIVE_PRESIGN_TTL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("MOTO_MANAGER_BASE_URL", "http://localhost:8080")
	v.SetDefault("MOTO_MANAGER_USERNAME", "admin")
	v.SetDefault("MOTO_MANAGER_PASSWORD", "admin")
	v.SetDefault("MOTO_MANAGER_TIMEOUT", 10*time.Second)
	v.SetDefault("REPORT_LOGO_PATH", "")
	v.SetDefault("REPORT_INCLUDE_TIMELINE", false)
	v.SetDefault("REPORT_FOOTER_BRAND", "MotoManager")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("REPORT_HISTORY_ENABLED", false)
	v.SetDefault("REPORT_GENERATIONS_TABLE", "report_generations")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("REPORT_ARCHIVE_BUCKET", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("REPORT_ARCHIVE_PRESIGN_TTL", 15*time.Minute)
}

func (c *Config) validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Port) == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	u, err := url.Parse(c.MotoManager.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("MOTO_MANAGER_BASE_URL must be an absolute URL, got %q", c.MotoManager.BaseURL))
	}
	if c.MotoManager.Timeout <= 0 {
		errs = append(errs, errors.New("MOTO_MANAGER_TIMEOUT must be positive"))
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Table) == "" {
		errs = append(errs, errors.New("REPORT_GENERATIONS_TABLE is required when REPORT_HISTORY_ENABLED is true"))
	}
	if c.Archive.Enabled() && c.Archive.PresignTTL <= 0 {
		errs = append(errs, errors.New("REPORT_ARCHIVE_PRESIGN_TTL must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
