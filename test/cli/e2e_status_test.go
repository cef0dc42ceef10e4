package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Run("empty_database", func(t *testing.T) {
		env := newTestEnv(t)

		stdout, _, err := env.run("status")
		require.NoError(t, err)
		assert.Contains(t, stdout, "mailgate")
		assert.Contains(t, stdout, "Classifier")
		assert.Contains(t, stdout, "disabled")
	})

	t.Run("with_checks", func(t *testing.T) {
		env := newTestEnv(t)
		seedNRecentChecks(3)(env)

		stdout, _, err := env.run("status")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Checks")
		assert.Contains(t, stdout, "Oldest")
		assert.Contains(t, stdout, "Retention")
	})
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mailgate")
	assert.Contains(t, stdout, "commit:")
}
