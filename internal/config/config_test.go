package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
api:
  environment: "test"
  base_url: "localhost:8080"
  port: "8080"
  jwt_signing_key: "test-key"
  allowed_cors_domains:
    - "http://localhost:3000"

scan:
  maintenance_start: "07:30:00"
  maintenance_seconds: 6
  max_sequence_retries: 3

gin:
  mode: "test"

postgres:
  host: "localhost"
  port: "5432"
  user: "test"
  password: "test"
  db_name: "warehouse_test"
  ssl_mode: "disable"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, "test-key", conf.API.JWTSigningKey)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "07:30:00", conf.Scan.MaintenanceStart)
	assert.Equal(t, 6, conf.Scan.MaintenanceSeconds)
	assert.Equal(t, 3, conf.Scan.MaxSequenceRetries)
	assert.Equal(t, "warehouse_test", conf.Postgres.DBName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
