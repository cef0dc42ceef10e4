package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailgate/mailgate/tui"
)

func TestLogs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		setup  func(env *testEnv)
		assert func(t *testing.T, stdout string, err error)
	}{
		{
			name:  "empty_database",
			args:  []string{"logs"},
			setup: func(env *testEnv) {},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "No checks found")
			},
		},
		{
			name:   "lists_recent_checks",
			args:   []string{"logs", "--format", "json"},
			setup:  seedNRecentChecks(5),
			assert: assertCheckCount(5),
		},
		{
			name:   "limit",
			args:   []string{"logs", "--format", "json", "--limit", "2"},
			setup:  seedNRecentChecks(5),
			assert: assertCheckCount(2),
		},
		{
			name:   "direction_filter",
			args:   []string{"logs", "--format", "json", "--direction", "output"},
			setup:  seedMixedChecks,
			assert: assertAllChecksDirection("output"),
		},
		{
			name:  "blocked_filter",
			args:  []string{"logs", "--format", "json", "--blocked"},
			setup: seedMixedChecks,
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				var checks []tui.CheckView
				require.NoError(t, json.Unmarshal([]byte(stdout), &checks))
				require.Len(t, checks, 1)
				assert.True(t, checks[0].Blocked)
				assert.Equal(t, "critical", checks[0].RiskBand)
			},
		},
		{
			name:  "band_filter",
			args:  []string{"logs", "--format", "json", "--band", "critical", "--band", "medium"},
			setup: seedMixedChecks,
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				var checks []tui.CheckView
				require.NoError(t, json.Unmarshal([]byte(stdout), &checks))
				require.Len(t, checks, 2)
				for _, c := range checks {
					assert.Contains(t, []string{"critical", "medium"}, c.RiskBand)
				}
			},
		},
		{
			name:  "since_excludes_old",
			args:  []string{"logs", "--format", "json", "--since", "1h"},
			setup: seedOldAndRecentChecks,
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				var checks []tui.CheckView
				require.NoError(t, json.Unmarshal([]byte(stdout), &checks))
				assert.Len(t, checks, 3)
			},
		},
		{
			name:  "invalid_direction",
			args:  []string{"logs", "--direction", "sideways"},
			setup: func(env *testEnv) {},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid direction")
			},
		},
		{
			name:  "newest_first_ordering",
			args:  []string{"logs", "--format", "json"},
			setup: seedNRecentChecks(4),
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				var checks []tui.CheckView
				require.NoError(t, json.Unmarshal([]byte(stdout), &checks))
				require.Len(t, checks, 4)
				for i := 1; i < len(checks); i++ {
					assert.False(t, checks[i].Timestamp.After(checks[i-1].Timestamp))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setup(env)
			stdout, _, err := env.run(tt.args...)
			tt.assert(t, stdout, err)
		})
	}
}

func TestLogs_Formats(t *testing.T) {
	env := newTestEnv(t)
	seedNRecentChecks(3)(env)

	t.Run("jsonl", func(t *testing.T) {
		stdout, _, err := env.run("logs", "--format", "jsonl")
		require.NoError(t, err)
		assertValidJSONL(t, stdout)
	})

	t.Run("csv", func(t *testing.T) {
		stdout, _, err := env.run("logs", "--format", "csv")
		require.NoError(t, err)
		assertValidCSV(3)(t, stdout)
	})

	t.Run("table", func(t *testing.T) {
		stdout, _, err := env.run("logs")
		require.NoError(t, err)
		assert.Contains(t, stdout, "inbound")
	})
}
