package cli_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

func TestShow(t *testing.T) {
	env := newTestEnv(t)
	seedMixedChecks(env)

	var blockedID string
	env.seedStore(func(ctx context.Context, store storage.Store) {
		recs, err := store.QueryChecks(ctx, &storage.Filter{BlockedOnly: true})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		blockedID = recs[0].CheckID
	})

	t.Run("full_id", func(t *testing.T) {
		stdout, _, err := env.run("show", blockedID, "--format", "json")
		require.NoError(t, err)

		var view tui.CheckDetailView
		require.NoError(t, json.Unmarshal([]byte(stdout), &view))
		assert.Equal(t, blockedID, view.ID)
		assert.True(t, view.Blocked)
		assert.NotEmpty(t, view.BlockReason)
		assert.Contains(t, view.PatternKinds, "instruction_override")
	})

	t.Run("prefix", func(t *testing.T) {
		stdout, _, err := env.run("show", blockedID[:len(blockedID)-2], "--format", "json")
		require.NoError(t, err)

		var view tui.CheckDetailView
		require.NoError(t, json.Unmarshal([]byte(stdout), &view))
		assert.Equal(t, blockedID, view.ID)
	})

	t.Run("suffix", func(t *testing.T) {
		suffix := blockedID[len(blockedID)-8:]
		stdout, _, err := env.run("show", suffix, "--format", "json")
		require.NoError(t, err)

		var view tui.CheckDetailView
		require.NoError(t, json.Unmarshal([]byte(stdout), &view))
		assert.Equal(t, blockedID, view.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		_, _, err := env.run("show", "chk_19700101T000000_deadbeef")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "check not found")
	})

	t.Run("table_output", func(t *testing.T) {
		stdout, _, err := env.run("show", blockedID)
		require.NoError(t, err)
		assert.Contains(t, stdout, "blocked")
		assert.Contains(t, stdout, "instruction_override")
	})
}

func TestShow_AmbiguousPrefix(t *testing.T) {
	env := newTestEnv(t)
	env.seedStore(func(ctx context.Context, store storage.Store) {
		a := seedRecord(1, 0)
		a.CheckID = "chk_20250115T093000_aaaa0001"
		require.NoError(t, store.SaveCheck(ctx, a))

		b := seedRecord(2, 0)
		b.CheckID = "chk_20250115T093000_aaaa0002"
		require.NoError(t, store.SaveCheck(ctx, b))
	})

	_, _, err := env.run("show", "chk_20250115T093000_aaaa")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}
