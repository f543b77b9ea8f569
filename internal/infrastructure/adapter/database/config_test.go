package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            5432,
		Username:        "wallet",
		Password:        "wallet",
		Database:        "credit_wallet",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 15 * time.Minute,
		QueryTimeout:    5 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("should accept a complete configuration", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("should require a host", func(t *testing.T) {
		cfg := validConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject an out-of-range port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject an unknown SSL mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.SSLMode = "maybe"
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_DSN(t *testing.T) {
	dsn := validConfig().DSN()

	assert.Equal(t, "host=localhost port=5432 user=wallet password=wallet dbname=credit_wallet sslmode=disable", dsn)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort(""))
	assert.Equal(t, 5432, ParsePort("not-a-port"))
	assert.Equal(t, 5432, ParsePort("-1"))
	assert.Equal(t, 6543, ParsePort("6543"))
}
