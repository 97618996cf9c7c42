package health_test

import (
	"testing"

	"github.com/aaravmahajanofficial/easymenu/internal/config"
	"github.com/aaravmahajanofficial/easymenu/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHealthHandler(t *testing.T) {
	cfg := &config.Config{
		Database:     config.Database{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "easymenu", SSLMode: "disable"},
		RedisConnect: config.RedisConnect{Host: "localhost", Port: "6379"},
	}

	h, err := health.NewHealthHandler(cfg)

	require.NoError(t, err)
	assert.NotNil(t, h.Handler())
}
