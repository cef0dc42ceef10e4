package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailgate/mailgate/tui"
)

func TestStats(t *testing.T) {
	t.Run("empty_database", func(t *testing.T) {
		env := newTestEnv(t)
		stdout, _, err := env.run("stats", "--format", "json")
		require.NoError(t, err)

		var view tui.StatsView
		require.NoError(t, json.Unmarshal([]byte(stdout), &view))
		assert.Equal(t, 0, view.TotalChecks)
	})

	t.Run("mixed_checks", func(t *testing.T) {
		env := newTestEnv(t)
		seedMixedChecks(env)

		stdout, _, err := env.run("stats", "--format", "json")
		require.NoError(t, err)

		var view tui.StatsView
		require.NoError(t, json.Unmarshal([]byte(stdout), &view))
		assert.Equal(t, 3, view.TotalChecks)
		assert.Equal(t, 1, view.Blocked)
		assert.Equal(t, 1, view.RequiresReview)
		assert.Equal(t, 1, view.ByBand["critical"])
		assert.Equal(t, 1, view.ByBand["medium"])
		assert.Equal(t, 2, view.ByDirection["inbound"])
		assert.Equal(t, 1, view.ByDirection["output"])
	})

	t.Run("table_output", func(t *testing.T) {
		env := newTestEnv(t)
		seedMixedChecks(env)

		stdout, _, err := env.run("stats")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Total")
		assert.Contains(t, stdout, "critical")
	})
}
