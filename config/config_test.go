package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "images", cfg.Images.Bucket)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Images.PublicURL)
	assert.Equal(t, int64(10), cfg.Upload.MaxMB)
	assert.Equal(t, ":3001", cfg.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_NAME", "menus")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_ENDPOINT", "cdn.example.com")
	t.Setenv("MONGO_TRANSACTIONS", "true")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "https://cdn.example.com", cfg.Images.PublicURL)
	assert.True(t, cfg.Mongo.Transactions)
	assert.Contains(t, cfg.Database.ConnectionString(), "dbname=menus")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "sqlite", env: map[string]string{"DB_DRIVER": "sqlite"}},
		{name: "mongodb", env: map[string]string{"DB_DRIVER": "mongodb", "IMAGE_STORE": "local"}},
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "oracle"}, wantErr: true},
		{name: "unknown image store", env: map[string]string{"IMAGE_STORE": "ftp"}, wantErr: true},
		{name: "zero upload size", env: map[string]string{"MAX_UPLOAD_MB": "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(viper.New())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConnectionString(t *testing.T) {
	mysqlCfg := DatabaseConfig{Driver: DriverMySQL, Host: "db", Port: 3306, User: "u", Password: "p", Name: "menu"}
	assert.Equal(t, "u:p@tcp(db:3306)/menu?charset=utf8mb4&parseTime=True&loc=Local", mysqlCfg.ConnectionString())

	sqliteCfg := DatabaseConfig{Driver: DriverSQLite, Name: "menu"}
	assert.Equal(t, "menu.db", sqliteCfg.ConnectionString())

	explicit := DatabaseConfig{Driver: DriverMySQL, DSN: "custom"}
	assert.Equal(t, "custom", explicit.ConnectionString())
}
