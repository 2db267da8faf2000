package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_grpc":             ":7001",
		"database_dsn":                   "postgres://json",
		"secret_key":                     "jsonsecret",
		"access_token_validity_duration": "45m",
		"s3_bucket":                      "memos",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, ":7001", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
		assert.Equal(t, "jsonsecret", cfg.SecretKey)
		assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, "memos", cfg.S3Bucket)
	})

	t.Run("no flags, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrGRPC: ":1234"}
		parseJson(cfg)

		assert.Equal(t, ":1234", cfg.EndpointAddrGRPC)
	})
}
