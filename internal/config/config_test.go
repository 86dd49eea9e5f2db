package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "development", cfg.Service.Environment)
	assert.Equal(t, "8080", cfg.Service.APIPort)
	assert.Equal(t, "teeseele", cfg.Mongo.Database)
	assert.Equal(t, 10, cfg.Mongo.ConnectTimeoutSec)
	assert.Empty(t, cfg.Mongo.URI)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVICE_ENVIRONMENT", "production")
	t.Setenv("SERVICE_API_PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "wellness")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "production", cfg.Service.Environment)
	assert.Equal(t, "9090", cfg.Service.APIPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "wellness", cfg.Mongo.Database)
}
