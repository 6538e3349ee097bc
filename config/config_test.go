package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_ENDPOINT", "storage.local:9000")
	t.Setenv("STORAGE_ACCESS_KEY", "access")
	t.Setenv("STORAGE_SECRET_KEY", "secret")
	t.Setenv("STORAGE_USE_SSL", "")
	t.Setenv("STORAGE_PUBLIC_URL", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("PORT", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storage.local:9000", cfg.StorageEndpoint)
	assert.Equal(t, "http://storage.local:9000", cfg.StoragePublicURL)
	assert.Equal(t, "journal.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.StorageUseSSL)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_ENDPOINT", "")
	t.Setenv("STORAGE_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_ENDPOINT")
	assert.Contains(t, err.Error(), "STORAGE_SECRET_KEY")
}

func TestLoadSSLAndPublicURL(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.StorageUseSSL)
	assert.Equal(t, "https://storage.local:9000", cfg.StoragePublicURL)

	t.Setenv("STORAGE_PUBLIC_URL", "https://cdn.example.com/")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", cfg.StoragePublicURL)
}
