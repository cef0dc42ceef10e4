package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	err = store.Init(ctx)
	require.NoError(t, err)

	cleanup := func() {
		err := store.Close()
		require.NoError(t, err)
	}

	return store, cleanup
}

// newTestRecord builds a record with sensible defaults for tests.
func newTestRecord(checkID string, ts time.Time) *Record {
	return &Record{
		ID:          uuid.New(),
		CheckID:     checkID,
		Timestamp:   ts,
		Direction:   DirectionInbound,
		Passed:      true,
		RiskScore:   0.05,
		RiskBand:    "safe",
		Sender:      "sender@example.com",
		Subject:     "Order status",
		ContentHash: "abc123",
	}
}

func TestSQLiteStore_SaveAndGetCheck(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	rec := &Record{
		ID:             uuid.New(),
		CheckID:        "chk_20260824T120000_deadbeef",
		Timestamp:      now,
		DurationMs:     12,
		Direction:      DirectionInbound,
		Passed:         false,
		Blocked:        true,
		RequiresReview: false,
		RiskScore:      0.8,
		RiskBand:       "critical",
		BlockReason:    "sanitizer risk 0.80 at or above auto-block threshold",
		Sender:         "attacker@example.com",
		Subject:        "Urgent",
		ContentHash:    "deadbeefcafe",
		PatternKinds:   []string{"instruction_override", "exfiltration_phrase"},
		Technique:      "instruction_override",
		Detail:         map[string]interface{}{"pattern_count": float64(3)},
	}

	err := store.SaveCheck(ctx, rec)
	require.NoError(t, err)

	retrieved, err := store.GetCheck(ctx, rec.CheckID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)

	assert.Equal(t, rec.ID, retrieved.ID)
	assert.Equal(t, rec.CheckID, retrieved.CheckID)
	assert.Equal(t, now.Unix(), retrieved.Timestamp.Unix())
	assert.Equal(t, int64(12), retrieved.DurationMs)
	assert.Equal(t, DirectionInbound, retrieved.Direction)
	assert.False(t, retrieved.Passed)
	assert.True(t, retrieved.Blocked)
	assert.Equal(t, 0.8, retrieved.RiskScore)
	assert.Equal(t, "critical", retrieved.RiskBand)
	assert.Equal(t, rec.BlockReason, retrieved.BlockReason)
	assert.Equal(t, []string{"instruction_override", "exfiltration_phrase"}, retrieved.PatternKinds)
	assert.Equal(t, "instruction_override", retrieved.Technique)
	assert.Equal(t, float64(3), retrieved.Detail["pattern_count"])
}

func TestSQLiteStore_GetCheckNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	retrieved, err := store.GetCheck(context.Background(), "chk_does_not_exist")
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestSQLiteStore_DuplicateCheckID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	rec := newTestRecord("chk_dup", now)
	require.NoError(t, store.SaveCheck(ctx, rec))

	dup := newTestRecord("chk_dup", now)
	err := store.SaveCheck(ctx, dup)
	assert.Error(t, err)
}

func TestSQLiteStore_GetCheckByPrefix(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.SaveCheck(ctx, newTestRecord("chk_20260824T120000_aaaa1111", now)))
	require.NoError(t, store.SaveCheck(ctx, newTestRecord("chk_20260824T120001_bbbb2222", now)))

	retrieved, err := store.GetCheckByPrefix(ctx, "chk_20260824T120000")
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, "chk_20260824T120000_aaaa1111", retrieved.CheckID)

	// Ambiguous prefix matching both records is an error.
	_, err = store.GetCheckByPrefix(ctx, "chk_2026")
	assert.Error(t, err)

	// No match returns nil without error.
	retrieved, err = store.GetCheckByPrefix(ctx, "chk_1999")
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestSQLiteStore_QueryChecksFilters(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	inbound := newTestRecord("chk_in_1", base)
	inbound.RiskBand = "safe"
	require.NoError(t, store.SaveCheck(ctx, inbound))

	blocked := newTestRecord("chk_in_2", base.Add(time.Minute))
	blocked.Passed = false
	blocked.Blocked = true
	blocked.RiskScore = 0.9
	blocked.RiskBand = "critical"
	require.NoError(t, store.SaveCheck(ctx, blocked))

	output := newTestRecord("chk_out_1", base.Add(2*time.Minute))
	output.Direction = DirectionOutput
	output.RequiresReview = true
	output.RiskBand = "medium"
	require.NoError(t, store.SaveCheck(ctx, output))

	// Direction filter
	recs, err := store.QueryChecks(ctx, &Filter{Direction: DirectionOutput})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "chk_out_1", recs[0].CheckID)

	// Blocked filter
	recs, err = store.QueryChecks(ctx, &Filter{BlockedOnly: true})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "chk_in_2", recs[0].CheckID)

	// Review filter
	recs, err = store.QueryChecks(ctx, &Filter{ReviewOnly: true})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "chk_out_1", recs[0].CheckID)

	// Band filter
	recs, err = store.QueryChecks(ctx, &Filter{RiskBands: []string{"critical", "medium"}})
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	// Since filter
	since := base.Add(30 * time.Second)
	recs, err = store.QueryChecks(ctx, &Filter{Since: &since})
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	// Newest first ordering
	recs, err = store.QueryChecks(ctx, &Filter{})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "chk_out_1", recs[0].CheckID)
	assert.Equal(t, "chk_in_1", recs[2].CheckID)
}

func TestSQLiteStore_QueryChecksLimitOffset(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		rec := newTestRecord(fmt.Sprintf("chk_%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.SaveCheck(ctx, rec))
	}

	recs, err := store.QueryChecks(ctx, &Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "chk_4", recs[0].CheckID)

	recs, err = store.QueryChecks(ctx, &Filter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "chk_2", recs[0].CheckID)
}

func TestSQLiteStore_CountChecks(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, store.SaveCheck(ctx, newTestRecord("chk_a", base)))
	blocked := newTestRecord("chk_b", base)
	blocked.Blocked = true
	require.NoError(t, store.SaveCheck(ctx, blocked))

	count, err := store.CountChecks(ctx, &Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.CountChecks(ctx, &Filter{BlockedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStore_DeleteChecksBefore(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.SaveCheck(ctx, newTestRecord("chk_old", now.Add(-48*time.Hour))))
	require.NoError(t, store.SaveCheck(ctx, newTestRecord("chk_new", now)))

	cutoff := now.Add(-24 * time.Hour)

	count, err := store.CountChecksBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	deleted, err := store.DeleteChecksBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := store.CountChecks(ctx, &Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	rec, err := store.GetCheck(ctx, "chk_new")
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestSQLiteStore_QueryChecksAfter(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)

	for i := 0; i < 3; i++ {
		rec := newTestRecord(fmt.Sprintf("chk_%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.SaveCheck(ctx, rec))
	}

	recs, err := store.QueryChecksAfter(ctx, base, uuid.Nil, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "chk_1", recs[0].CheckID)
	assert.Equal(t, "chk_2", recs[1].CheckID)
}

func TestSQLiteStore_QueryChecksAfter_CompoundCursor(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Second)

	// Three records share one timestamp; IDs chosen so ordering is fixed.
	ids := []uuid.UUID{
		uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		uuid.MustParse("00000000-0000-0000-0000-000000000003"),
	}
	for i, id := range ids {
		rec := newTestRecord(fmt.Sprintf("chk_same_%d", i), ts)
		rec.ID = id
		require.NoError(t, store.SaveCheck(ctx, rec))
	}

	// Resuming from the first ID must return the remaining two, not skip
	// the whole timestamp.
	recs, err := store.QueryChecksAfter(ctx, ts, ids[0], 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, ids[1], recs[0].ID)
	assert.Equal(t, ids[2], recs[1].ID)
}

func TestSQLiteStore_GetStats(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	safe := newTestRecord("chk_safe", base)
	safe.RiskScore = 0.0
	require.NoError(t, store.SaveCheck(ctx, safe))

	blocked := newTestRecord("chk_blocked", base.Add(time.Minute))
	blocked.Passed = false
	blocked.Blocked = true
	blocked.RiskScore = 1.0
	blocked.RiskBand = "critical"
	require.NoError(t, store.SaveCheck(ctx, blocked))

	output := newTestRecord("chk_reply", base.Add(2*time.Minute))
	output.Direction = DirectionOutput
	output.RequiresReview = true
	output.RiskScore = 0.5
	output.RiskBand = "high"
	require.NoError(t, store.SaveCheck(ctx, output))

	stats, err := store.GetStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 3, stats.TotalChecks)
	assert.Equal(t, 2, stats.Passed)
	assert.Equal(t, 1, stats.Blocked)
	assert.Equal(t, 1, stats.RequiresReview)
	assert.Equal(t, 1, stats.ByBand["safe"])
	assert.Equal(t, 1, stats.ByBand["critical"])
	assert.Equal(t, 1, stats.ByBand["high"])
	assert.Equal(t, 2, stats.ByDirection["inbound"])
	assert.Equal(t, 1, stats.ByDirection["output"])
	assert.InDelta(t, 0.5, stats.AvgRiskScore, 0.001)
	assert.False(t, stats.OldestCheck.IsZero())
	assert.True(t, stats.NewestCheck.After(stats.OldestCheck))
}

func TestSQLiteStore_GetDatabaseInfo(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.SaveCheck(ctx, newTestRecord("chk_info", time.Now().UTC())))

	info, err := store.GetDatabaseInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, 1, info.CheckCount)
	assert.NotEmpty(t, info.Path)
	assert.False(t, info.OldestCheck.IsZero())
}

func TestDirection_IsValid(t *testing.T) {
	assert.True(t, DirectionInbound.IsValid())
	assert.True(t, DirectionOutput.IsValid())
	assert.False(t, Direction("sideways").IsValid())
}
