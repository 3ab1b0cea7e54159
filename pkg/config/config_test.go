package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "https://apisetu.gov.in", cfg.APISetu.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.APISetu.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "MEMORY")
	v.Set("APISETU_BASE_URL", "http://localhost:9999/")
	v.Set("APISETU_API_KEY", "key")
	v.Set("APISETU_CLIENT_ID", "client")
	v.Set("APISETU_TIMEOUT_SECONDS", "3")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_AUTO_MIGRATE", false)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, "http://localhost:9999", cfg.APISetu.BaseURL)
	assert.Equal(t, "key", cfg.APISetu.APIKey)
	assert.Equal(t, "client", cfg.APISetu.ClientID)
	assert.Equal(t, 3*time.Second, cfg.APISetu.Timeout)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "iec", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/iec?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x/y"
	assert.Equal(t, "postgres://x/y", c.ConnectionString())
}
