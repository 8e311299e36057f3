package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dreambox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, envOf(map[string]string{"PAYSTACK_SECRET_KEY": "sk_test"}))

	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level())
	assert.Equal(t, 3, cfg.Reconcile.MaxAttempts)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=dreambox sslmode=disable", cfg.Database.ConnString())
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
store: memory
grpc_addr: ":7000"
log_level: debug
database:
  lock_timeout: 750ms
paystack:
  secret_key: sk_from_file
  timeout: 3s
reconcile:
  max_attempts: 7
  oracle_timeout: 4s
`)

	cfg, err := Load(
		[]string{"--config", path, "--grpc-addr", ":9000"},
		envOf(map[string]string{
			"GRPC_ADDR":           ":8000",
			"LOG_LEVEL":           "warn",
			"PAYSTACK_SECRET_KEY": "sk_from_env",
			"STRICT_AMOUNT_CHECK": "true",
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store, "file over default")
	assert.Equal(t, ":9000", cfg.GRPCAddr, "flag over env over file")
	assert.Equal(t, zapcore.WarnLevel, cfg.Level(), "env over file")
	assert.Equal(t, "sk_from_env", cfg.Paystack.SecretKey)
	assert.Equal(t, 3*time.Second, cfg.Paystack.Timeout)
	assert.Equal(t, 750*time.Millisecond, cfg.Database.LockTimeout)
	assert.Equal(t, 7, cfg.Reconcile.MaxAttempts)
	assert.Equal(t, 4*time.Second, cfg.Reconcile.OracleTimeout)
	assert.Equal(t, 5*time.Second, cfg.Reconcile.CommitTimeout, "unset keys keep defaults")
	assert.True(t, cfg.Reconcile.StrictAmountCheck)
}

func TestLoad_ConnStrWins(t *testing.T) {
	cfg, err := Load(
		[]string{"--db-conn-str", "postgres://u:p@db:5432/x"},
		envOf(map[string]string{"PAYSTACK_SECRET_KEY": "sk", "DB_HOST": "ignored"}),
	)

	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.Database.ConnString())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr string
	}{
		{name: "Missing secret key", wantErr: "paystack secret key is required"},
		{name: "Unknown store", args: []string{"--store", "redis"}, env: map[string]string{"PAYSTACK_SECRET_KEY": "sk"}, wantErr: `unknown store "redis"`},
		{name: "Bad log level", env: map[string]string{"PAYSTACK_SECRET_KEY": "sk", "LOG_LEVEL": "loud"}, wantErr: "invalid log_level"},
		{name: "Bad strict flag", env: map[string]string{"STRICT_AMOUNT_CHECK": "maybe"}, wantErr: "invalid STRICT_AMOUNT_CHECK"},
		{name: "Missing file", args: []string{"--config", "/does/not/exist.yaml"}, wantErr: "failed to read config file"},
		{name: "Unknown flag", args: []string{"--nope"}, wantErr: "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args, envOf(tt.env))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "store: [unterminated")

	_, err := Load([]string{"--config", path}, envOf(map[string]string{"PAYSTACK_SECRET_KEY": "sk"}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
