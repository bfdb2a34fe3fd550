package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setZoomEnv(t *testing.T) {
	t.Setenv("ZOOM_BASE_URL", "https://api.zoom.example")
	t.Setenv("ZOOM_CLIENT_ID", "client-id")
	t.Setenv("ZOOM_CLIENT_SECRET", "client-secret")
	t.Setenv("ZOOM_ACCOUNT_ID", "acc-123")
}

func TestLoad_Defaults(t *testing.T) {
	setZoomEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "https://api.zoom.example", cfg.Zoom.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Zoom.Timeout)
}

func TestLoad_MissingCredentials(t *testing.T) {
	setZoomEnv(t)
	t.Setenv("ZOOM_CLIENT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZOOM_CLIENT_SECRET")
}
