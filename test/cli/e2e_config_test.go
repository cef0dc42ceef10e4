package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, stdout string, err error)
	}{
		{
			name: "show_defaults",
			args: []string{"config", "show"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "storage")
			},
		},
		{
			name: "show_json",
			args: []string{"config", "show", "--format", "json"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				var result json.RawMessage
				assert.NoError(t, json.Unmarshal([]byte(stdout), &result))
			},
		},
		{
			name: "get_retention_days",
			args: []string{"config", "get", "storage.retention_days"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "90")
			},
		},
		{
			name: "get_nonexistent_key",
			args: []string{"config", "get", "nonexistent.key"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "key not found")
			},
		},
		{
			name: "set_value",
			args: []string{"config", "set", "security.auto_block_threshold", "0.8"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "Set security.auto_block_threshold")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			stdout, _, err := env.run(tt.args...)
			tt.assert(t, stdout, err)
		})
	}
}

func TestConfig_SetThenGet(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "classifier.timeout_ms", "500")
	require.NoError(t, err)

	stdout, _, err := env.run("config", "get", "classifier.timeout_ms")
	require.NoError(t, err)
	assert.Contains(t, stdout, "500")
}

func TestConfig_Reset(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "storage.retention_days", "30")
	require.NoError(t, err)

	stdout, _, err := env.run("config", "reset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "reset")

	stdout, _, err = env.run("config", "get", "storage.retention_days")
	require.NoError(t, err)
	assert.Contains(t, stdout, "90")
}
