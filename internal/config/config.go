package config

import (
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds relational database connection settings.
// Driver selects the dialect: "sqlite3" (file at Path) or "pgx" (PostgreSQL).
type DatabaseConfig struct {
	Driver             string
	Path               string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
// Storage is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig holds settings for the list cache. The cache is disabled when Addr is empty.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	CacheTTLSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string
	Port               string
	Timezone           string
	LogLevel           string
	CORSAllowedOrigins string
	Database           DatabaseConfig
	MinIO              MinIOConfig
	Redis              RedisConfig
}

var defaults = map[string]any{
	"APP_HOST":                 "localhost:8080",
	"PORT":                     "8080",
	"APP_TIMEZONE":             "UTC",
	"LOG_LEVEL":                "info",
	"CORS_ALLOWED_ORIGINS":     "*",
	"DB_DRIVER":                "sqlite3",
	"DB_PATH":                  "database/database.db",
	"DB_PORT":                  "5432",
	"DB_SSLMODE":               "disable",
	"DB_MAX_OPEN_CONNS":        10,
	"DB_MAX_IDLE_CONNS":        5,
	"DB_CONN_MAX_LIFETIME_SEC": 300,
	"MINIO_USE_SSL":            false,
	"REDIS_DB":                 0,
	"REDIS_CACHE_TTL_SEC":      60,
}

// NewViper returns a viper instance reading the process environment with the
// application defaults applied. Callers may bind flags onto the same keys.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	return v
}

// Load reads configuration from environment variables.
// Real environment variables take precedence over the built-in defaults.
func Load() *AppConfig {
	return FromViper(NewViper())
}

// FromViper builds an AppConfig from an already prepared viper instance.
func FromViper(v *viper.Viper) *AppConfig {
	return &AppConfig{
		AppHost:            v.GetString("APP_HOST"),
		Port:               v.GetString("PORT"),
		Timezone:           v.GetString("APP_TIMEZONE"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		CORSAllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		Database: DatabaseConfig{
			Driver:             strings.ToLower(v.GetString("DB_DRIVER")),
			Path:               v.GetString("DB_PATH"),
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			MaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSec: v.GetInt("DB_CONN_MAX_LIFETIME_SEC"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
		Redis: RedisConfig{
			Addr:        v.GetString("REDIS_ADDR"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			CacheTTLSec: v.GetInt("REDIS_CACHE_TTL_SEC"),
		},
	}
}
