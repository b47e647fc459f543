package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	S3       S3Config
	Catalog  CatalogConfig
	Label    LabelConfig
	Pipeline PipelineConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// CatalogConfig holds product catalog storage settings.
type CatalogConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LabelConfig holds label rendering settings.
type LabelConfig struct {
	FontPath string `mapstructure:"font_path"`
}

// PipelineConfig holds manifest pipeline settings.
type PipelineConfig struct {
	Concurrency      int `mapstructure:"concurrency"`
	CleanupDelaySecs int `mapstructure:"cleanup_delay_secs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SHIPMARK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHIPMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "shipmark")
	v.SetDefault("db.password", "shipmark_secret")
	v.SetDefault("db.name", "shipmark_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-northeast-1")
	v.SetDefault("s3.bucket", "shipmark-labels")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Catalog defaults
	v.SetDefault("catalog.data_dir", "uploads")

	// Label defaults
	v.SetDefault("label.font_path", "fonts/label.ttf")

	// Pipeline defaults
	v.SetDefault("pipeline.concurrency", 4)
	v.SetDefault("pipeline.cleanup_delay_secs", 600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "SHIPMARK_SERVER_PORT",
		"server.read_timeout":         "SHIPMARK_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "SHIPMARK_SERVER_WRITE_TIMEOUT",
		"server.environment":          "SHIPMARK_SERVER_ENVIRONMENT",
		"db.host":                     "SHIPMARK_DB_HOST",
		"db.port":                     "SHIPMARK_DB_PORT",
		"db.user":                     "SHIPMARK_DB_USER",
		"db.password":                 "SHIPMARK_DB_PASSWORD",
		"db.name":                     "SHIPMARK_DB_NAME",
		"db.sslmode":                  "SHIPMARK_DB_SSLMODE",
		"db.max_open":                 "SHIPMARK_DB_MAX_OPEN",
		"db.max_idle":                 "SHIPMARK_DB_MAX_IDLE",
		"s3.region":                   "SHIPMARK_S3_REGION",
		"s3.bucket":                   "SHIPMARK_S3_BUCKET",
		"s3.endpoint":                 "SHIPMARK_S3_ENDPOINT",
		"s3.access_key":               "SHIPMARK_S3_ACCESS_KEY",
		"s3.secret_key":               "SHIPMARK_S3_SECRET_KEY",
		"s3.max_file_size_mb":         "SHIPMARK_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":           "SHIPMARK_S3_PRESIGN_EXPIRY",
		"catalog.data_dir":            "SHIPMARK_CATALOG_DATA_DIR",
		"label.font_path":             "SHIPMARK_LABEL_FONT_PATH",
		"pipeline.concurrency":        "SHIPMARK_PIPELINE_CONCURRENCY",
		"pipeline.cleanup_delay_secs": "SHIPMARK_PIPELINE_CLEANUP_DELAY_SECS",
		"log.level":                   "SHIPMARK_LOG_LEVEL",
		"log.format":                  "SHIPMARK_LOG_FORMAT",
		"cors.allowed_origins":        "SHIPMARK_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SHIPMARK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SHIPMARK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Catalog = CatalogConfig{
		DataDir: v.GetString("catalog.data_dir"),
	}
	cfg.Label = LabelConfig{
		FontPath: v.GetString("label.font_path"),
	}
	cfg.Pipeline = PipelineConfig{
		Concurrency:      v.GetInt("pipeline.concurrency"),
		CleanupDelaySecs: v.GetInt("pipeline.cleanup_delay_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
