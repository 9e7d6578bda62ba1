package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDRESS", "ENVIRONMENT", "AWS_REGION", "DYNAMODB_TABLE", "LOG_LEVEL", "ENABLE_CORS", "IS_LAMBDA"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "kbju_meals", cfg.DynamoDBTable)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.EnableCORS)
	assert.False(t, cfg.IsLambda)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("DYNAMODB_TABLE", "kbju_meals_prod")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "kbju_meals_prod", cfg.DynamoDBTable)
	assert.False(t, cfg.EnableCORS)
}
