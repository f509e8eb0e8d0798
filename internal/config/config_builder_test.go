// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_EnvWinsOverJSON(t *testing.T) {
	// Arrange: the file carries an address too, but the env layer is
	// registered first and must win; the file only fills the gaps.
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	jsonBody := `{
		"portal": {
			"address": "https://file.example.com",
			"token": "filetoken",
			"request_timeout": "45s"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	t.Setenv("CONFIG", p)
	t.Setenv("PORTAL_ADDRESS", "https://env.example.com")

	// Act
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Portal.Address)
	assert.Equal(t, "filetoken", cfg.Portal.Token)
	assert.Equal(t, 45*time.Second, cfg.Portal.RequestTimeout)
}

func TestConfigBuilder_JSONSkippedWithoutPath(t *testing.T) {
	// Arrange
	t.Setenv("PORTAL_ADDRESS", "https://env.example.com")

	// Act
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()

	// Assert: no file layer ran and nothing failed.
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Portal.Address)
	assert.Empty(t, cfg.Portal.Token)
}

func TestConfigBuilder_SourceErrorStopsBuild(t *testing.T) {
	// Arrange: the path resolves but the file does not exist.
	t.Setenv("CONFIG", "definitely-does-not-exist.json")

	// Act
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}
