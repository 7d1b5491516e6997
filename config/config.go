// Package config reads the service settings from the environment (and an
// optional .env file).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port     string
	GinMode  string
	Log      LogConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Images   ImageConfig
	Upload   UploadConfig
}

type LogConfig struct {
	Level  string
	Format string // text or json
}

// DatabaseConfig selects the document store backend. Driver is one of
// mysql, postgres, sqlite or mongodb.
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type MongoConfig struct {
	URI          string
	Database     string
	Transactions bool
}

type ImageConfig struct {
	Store     string // minio or local
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	PublicURL string
	LocalDir  string
}

type UploadConfig struct {
	Dir   string
	MaxMB int64
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongodb"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3001")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_NAME", "menu")

	v.SetDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("MONGO_DATABASE", "menu")
	v.SetDefault("MONGO_TRANSACTIONS", false)

	v.SetDefault("IMAGE_STORE", "minio")
	v.SetDefault("MINIO_ENDPOINT", "127.0.0.1:9000")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MINIO_BUCKET", "images")
	v.SetDefault("IMAGE_LOCAL_DIR", "public/uploads/images")

	v.SetDefault("UPLOAD_DIR", os.TempDir())
	v.SetDefault("MAX_UPLOAD_MB", 10)
}

// Load reads .env (when present) and the process environment. Environment
// variables win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:    v.GetString("PORT"),
		GinMode: v.GetString("GIN_MODE"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:      v.GetString("DB_DSN"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Mongo: MongoConfig{
			URI:          v.GetString("MONGO_URI"),
			Database:     v.GetString("MONGO_DATABASE"),
			Transactions: v.GetBool("MONGO_TRANSACTIONS"),
		},
		Images: ImageConfig{
			Store:     strings.ToLower(v.GetString("IMAGE_STORE")),
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			PublicURL: v.GetString("MINIO_PUBLIC_URL"),
			LocalDir:  v.GetString("IMAGE_LOCAL_DIR"),
		},
		Upload: UploadConfig{
			Dir:   v.GetString("UPLOAD_DIR"),
			MaxMB: v.GetInt64("MAX_UPLOAD_MB"),
		},
	}

	if _, ok := os.LookupEnv("DB_PORT"); !ok && cfg.Database.Driver == DriverPostgres {
		cfg.Database.Port = 5432
	}

	if cfg.Images.PublicURL == "" {
		scheme := "http"
		if cfg.Images.UseSSL {
			scheme = "https"
		}
		cfg.Images.PublicURL = fmt.Sprintf("%s://%s", scheme, cfg.Images.Endpoint)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Images.Store {
	case "minio", "local":
	default:
		return fmt.Errorf("unsupported IMAGE_STORE %q", c.Images.Store)
	}
	if c.Upload.MaxMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.Upload.MaxMB)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
