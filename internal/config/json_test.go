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
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "qrcode1",
			"token_duration": "24h",
			"display_base_url": "https://qr.example.com"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/qrcode"},
			"state_path": "/tmp/state.json"
		},
		"server": {
			"http_address": "0.0.0.0:8080",
			"request_timeout": "30s"
		},
		"adapter": {
			"http_address": "localhost:8080",
			"request_timeout": "15s"
		}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "https://qr.example.com", cfg.App.DisplayBaseURL)
	assert.Equal(t, "postgres://localhost/qrcode", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.StatePath)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "", cfg.JSONFilePath, "json file path must not propagate from the file itself")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestStructuredConfigValidate(t *testing.T) {
	valid := &StructuredConfig{
		App:     App{TokenSignKey: "k", DisplayBaseURL: "https://qr.example.com"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/qrcode"}},
	}
	assert.NoError(t, valid.validate())

	noDSN := &StructuredConfig{App: valid.App}
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noKey := &StructuredConfig{Storage: valid.Storage, App: App{DisplayBaseURL: "x"}}
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)
}
