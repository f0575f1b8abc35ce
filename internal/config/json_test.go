// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "1.2.0", "downloads_dir": "/srv/reports"},
		"adapter": {"api_address": "https://vault.example.com", "request_timeout": "30s"},
		"storage": {"db": {"dsn": "/var/cache/console.db"}},
		"workers": {"refresh_interval": "30s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", cfg.App.Version)
	assert.Equal(t, "/srv/reports", cfg.App.DownloadsDir)
	assert.Equal(t, "https://vault.example.com", cfg.Adapter.APIAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/cache/console.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/definitely/not/here.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"adapter": `)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalVariants(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"45s"`)))
	assert.Equal(t, 45*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"forever"`)))
}
