// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package cardease

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cardease.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
servers:
  - url: https://live.cardeasexml.com/generic.cex
  - url: https://live2.cardeasexml.com/generic.cex
    timeout: 60s
proxy:
  host: proxy.internal
  port: 3128
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Len(t, cfg.Servers, 2)
	assert.Equal(t, "https://live.cardeasexml.com/generic.cex", cfg.Servers[0].URL)
	assert.Equal(t, Duration(DefaultEndpointTimeout), cfg.Servers[0].Timeout)
	assert.Equal(t, Duration(60*time.Second), cfg.Servers[1].Timeout)
	assert.Equal(t, "proxy.internal", cfg.Proxy.Host)
	assert.Equal(t, 3128, cfg.Proxy.Port)
}

func TestLoadConfig_EnvExpansion(t *testing.T) {
	t.Setenv("CARDEASE_SERVER", "https://test.cardeasexml.com/generic.cex")
	t.Setenv("PROXY_PASSWORD", "s3cret")

	path := writeConfigFile(t, `
servers:
  - url: ${CARDEASE_SERVER}
proxy:
  host: proxy.internal
  password: ${PROXY_PASSWORD}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://test.cardeasexml.com/generic.cex", cfg.Servers[0].URL)
	assert.Equal(t, "s3cret", cfg.Proxy.Password)
	// Proxy port defaults when a host is given.
	assert.Equal(t, 8080, cfg.Proxy.Port)
}

func TestLoadConfig_NoServers(t *testing.T) {
	path := writeConfigFile(t, `servers: []`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one server is required")
}

func TestLoadConfig_MissingURL(t *testing.T) {
	path := writeConfigFile(t, `
servers:
  - timeout: 45s
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "servers[0].url is required")
}

func TestLoadConfig_TimeoutBelowFloor(t *testing.T) {
	path := writeConfigFile(t, `
servers:
  - url: https://test.cardeasexml.com/generic.cex
    timeout: 5s
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the 30s minimum")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	path := writeConfigFile(t, `
servers:
  - url: https://test.cardeasexml.com/generic.cex
    timeout: fast
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfig_NewClient(t *testing.T) {
	path := writeConfigFile(t, `
servers:
  - url: https://live.cardeasexml.com/generic.cex
  - url: https://live2.cardeasexml.com/generic.cex
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	client, err := cfg.NewClient(nil)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Len(t, client.endpoints, 2)
}
