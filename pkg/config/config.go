package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store backends
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Pipeline PipelineConfig
	Store    StoreConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Metrics  MetricsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `split_words:"true" default:"8080"`
	Host            string        `split_words:"true" default:"0.0.0.0"`
	Environment     string        `split_words:"true" default:"development"`
	AllowedOrigins  []string      `split_words:"true" default:"http://localhost:3000"`
	ShutdownTimeout int           `split_words:"true" default:"10"`
	RequestTimeout  time.Duration `split_words:"true" default:"30s"`
	MaxUploadBytes  int           `split_words:"true" default:"5242880"`
}

// PipelineConfig tunes the extraction pipeline
type PipelineConfig struct {
	Concurrent bool          `split_words:"true" default:"true"`
	JobTimeout time.Duration `split_words:"true" default:"2m"`
	// ExtraStopVerbs are appended to the default role verb stoplist
	ExtraStopVerbs []string `split_words:"true"`
}

// StoreConfig selects the result store backend
type StoreConfig struct {
	Type            string        `split_words:"true" default:"memory"`
	ResultTTL       time.Duration `split_words:"true" default:"24h"`
	CleanupInterval time.Duration `split_words:"true" default:"5m"`
	KeyPrefix       string        `split_words:"true" default:"meeting-recap:record:"`
	// SQLitePath is the database file used by the sqlite backend
	SQLitePath string `envconfig:"SQLITE_PATH" default:"meeting-recap.db"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `split_words:"true" default:"localhost"`
	Port     string `split_words:"true" default:"6379"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `split_words:"true" default:"localhost"`
	Port        string `split_words:"true" default:"5432"`
	User        string `split_words:"true" default:"postgres"`
	Password    string `split_words:"true" default:"postgres"`
	Name        string `split_words:"true" default:"meeting_recap"`
	SSLMode     string `split_words:"true" default:"disable"`
	MaxConns    int    `split_words:"true" default:"25"`
	MinConns    int    `split_words:"true" default:"5"`
	AutoMigrate bool   `split_words:"true" default:"false"`
}

// StorageConfig holds object storage configuration for the transcript archive
type StorageConfig struct {
	Enabled         bool   `split_words:"true" default:"false"`
	Endpoint        string `split_words:"true" default:"localhost:9000"`
	AccessKeyID     string `split_words:"true" default:"minioadmin"`
	SecretAccessKey string `split_words:"true" default:"minioadmin"`
	BucketName      string `split_words:"true" default:"meeting-recap"`
	UseSSL          bool   `split_words:"true" default:"false"`
}

// MetricsConfig holds prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `split_words:"true" default:"true"`
	Path    string `split_words:"true" default:"/metrics"`
}

// Load loads configuration from environment variables. Each section reads
// prefixed keys (SERVER_PORT, STORE_TYPE, REDIS_HOST, ...).
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	sections := []struct {
		prefix string
		target interface{}
	}{
		{"server", &config.Server},
		{"pipeline", &config.Pipeline},
		{"store", &config.Store},
		{"redis", &config.Redis},
		{"db", &config.Database},
		{"storage", &config.Storage},
		{"metrics", &config.Metrics},
	}
	for _, s := range sections {
		if err := envconfig.Process(s.prefix, s.target); err != nil {
			return nil, fmt.Errorf("load %s config: %w", s.prefix, err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Type {
	case StoreMemory, StoreRedis, StorePostgres, StoreSQLite:
	default:
		return fmt.Errorf("STORE_TYPE must be one of memory, redis, postgres, sqlite: got %q", c.Store.Type)
	}
	if c.Store.ResultTTL <= 0 {
		return fmt.Errorf("STORE_RESULT_TTL must be positive")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("SERVER_MAX_UPLOAD_BYTES must be positive")
	}
	if c.Storage.Enabled && (c.Storage.Endpoint == "" || c.Storage.BucketName == "") {
		return fmt.Errorf("STORAGE_ENDPOINT and STORAGE_BUCKET_NAME are required when storage is enabled")
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
