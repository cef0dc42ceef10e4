package cli_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailgate/mailgate/storage"
)

func TestRetention(t *testing.T) {
	t.Run("status_enabled", func(t *testing.T) {
		env := newTestEnv(t)
		seedOldChecks(5)(env)

		stdout, _, err := env.run("retention", "status")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Enabled")
		assert.Contains(t, stdout, "90")
		assert.Contains(t, stdout, "Checks to Clean: 5")
	})

	t.Run("status_disabled", func(t *testing.T) {
		env := newTestEnvWithConfig(t, retentionConfig(t, 0))

		stdout, _, err := env.run("retention", "status")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Disabled")
	})

	t.Run("cleanup_dry_run", func(t *testing.T) {
		env := newTestEnv(t)
		seedOldAndRecentChecks(env)

		stdout, _, err := env.run("retention", "cleanup", "--dry-run")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Would delete 5")

		store, cleanup := env.openStore()
		defer cleanup()
		count, err := store.CountChecks(context.Background(), &storage.Filter{})
		require.NoError(t, err)
		assert.Equal(t, 8, count)
	})

	t.Run("cleanup_deletes_old_only", func(t *testing.T) {
		env := newTestEnv(t)
		seedOldAndRecentChecks(env)

		stdout, _, err := env.run("retention", "cleanup")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Deleted 5")

		store, cleanup := env.openStore()
		defer cleanup()
		count, err := store.CountChecks(context.Background(), &storage.Filter{})
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

// retentionConfig builds a config YAML with the given retention_days. The
// database path is not known until the env exists, so this uses its own
// temp dir.
func retentionConfig(t *testing.T, days int) string {
	t.Helper()
	return fmt.Sprintf(`storage:
  path: %s/test.db
  retention_days: %d
display:
  colors: never
`, t.TempDir(), days)
}
