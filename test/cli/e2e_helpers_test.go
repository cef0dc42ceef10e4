package cli_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailgate/mailgate/cli"
	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

type testEnv struct {
	t          *testing.T
	tmpDir     string
	dbPath     string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, "")
}

func newTestEnvWithConfig(t *testing.T, configYAML string) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	configPath := filepath.Join(tmpDir, "config.yaml")

	if configYAML == "" {
		configYAML = fmt.Sprintf(`storage:
  path: %s
  retention_days: 90
display:
  colors: never
`, dbPath)
	}

	err := os.WriteFile(configPath, []byte(configYAML), 0o600)
	require.NoError(t, err)

	return &testEnv{
		t:          t,
		tmpDir:     tmpDir,
		dbPath:     dbPath,
		configPath: configPath,
	}
}

func (env *testEnv) run(args ...string) (stdout, stderr string, err error) {
	env.t.Helper()
	return env.runWithStdin("", args...)
}

func (env *testEnv) runWithStdin(stdin string, args ...string) (stdout, stderr string, err error) {
	env.t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetIn(strings.NewReader(stdin))

	fullArgs := append([]string{"--config", env.configPath, "--no-color"}, args...)
	rootCmd.SetArgs(fullArgs)
	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func (env *testEnv) openStore() (storage.Store, func()) {
	env.t.Helper()

	store, err := storage.NewSQLiteStore(env.dbPath)
	require.NoError(env.t, err)
	err = store.Init(context.Background())
	require.NoError(env.t, err)

	return store, func() {
		err := store.Close()
		require.NoError(env.t, err)
	}
}

func (env *testEnv) seedStore(fn func(ctx context.Context, store storage.Store)) {
	env.t.Helper()

	store, cleanup := env.openStore()
	defer cleanup()

	fn(context.Background(), store)
}

// seedRecord returns a check record with sensible defaults that a seed
// function can tweak before saving.
func seedRecord(i int, age time.Duration) *storage.Record {
	return &storage.Record{
		CheckID:     fmt.Sprintf("chk_20250115T0930%02d_aa%06d", i%60, i),
		Timestamp:   time.Now().UTC().Add(-age),
		DurationMs:  12,
		Direction:   storage.DirectionInbound,
		Passed:      true,
		RiskScore:   0.05,
		RiskBand:    "safe",
		Sender:      "alice@example.com",
		Subject:     fmt.Sprintf("Order %d", i),
		ContentHash: fmt.Sprintf("hash%d", i),
	}
}

// seedNRecentChecks returns a seed function that creates n passed inbound
// checks with recent timestamps.
func seedNRecentChecks(n int) func(env *testEnv) {
	return func(env *testEnv) {
		env.seedStore(func(ctx context.Context, store storage.Store) {
			for i := 0; i < n; i++ {
				rec := seedRecord(i, time.Duration(n-i)*time.Minute)
				require.NoError(env.t, store.SaveCheck(ctx, rec))
			}
		})
	}
}

// seedMixedChecks seeds a passed inbound check, a blocked inbound check
// and an output check requiring review.
func seedMixedChecks(env *testEnv) {
	env.seedStore(func(ctx context.Context, store storage.Store) {
		passed := seedRecord(1, 30*time.Minute)
		require.NoError(env.t, store.SaveCheck(ctx, passed))

		blocked := seedRecord(2, 20*time.Minute)
		blocked.Passed = false
		blocked.Blocked = true
		blocked.RiskScore = 0.9
		blocked.RiskBand = "critical"
		blocked.BlockReason = "sanitizer risk score at or above auto-block threshold"
		blocked.PatternKinds = []string{"instruction_override"}
		blocked.Technique = "instruction_override"
		require.NoError(env.t, store.SaveCheck(ctx, blocked))

		review := seedRecord(3, 10*time.Minute)
		review.Direction = storage.DirectionOutput
		review.RequiresReview = true
		review.RiskScore = 0.3
		review.RiskBand = "medium"
		review.Sender = ""
		review.Subject = ""
		review.ViolationKinds = []string{"external_url_inclusion"}
		require.NoError(env.t, store.SaveCheck(ctx, review))
	})
}

// seedOldChecks seeds checks older than the default retention cutoff (90 days).
func seedOldChecks(n int) func(env *testEnv) {
	return func(env *testEnv) {
		env.seedStore(func(ctx context.Context, store storage.Store) {
			for i := 0; i < n; i++ {
				rec := seedRecord(i, time.Duration(100+i)*24*time.Hour)
				require.NoError(env.t, store.SaveCheck(ctx, rec))
			}
		})
	}
}

// seedOldAndRecentChecks seeds checks on both sides of the retention cutoff.
func seedOldAndRecentChecks(env *testEnv) {
	seedOldChecks(5)(env)

	env.seedStore(func(ctx context.Context, store storage.Store) {
		for i := 100; i < 103; i++ {
			rec := seedRecord(i, time.Duration(103-i)*time.Minute)
			require.NoError(env.t, store.SaveCheck(ctx, rec))
		}
	})
}

// --- Assertion helpers ---

func assertCheckCount(n int) func(*testing.T, string, error) {
	return func(t *testing.T, stdout string, err error) {
		t.Helper()
		assert.NoError(t, err)
		var checks []tui.CheckView
		require.NoError(t, json.Unmarshal([]byte(stdout), &checks))
		assert.Len(t, checks, n)
	}
}

func assertAllChecksDirection(direction string) func(*testing.T, string, error) {
	return func(t *testing.T, stdout string, err error) {
		t.Helper()
		assert.NoError(t, err)
		var checks []tui.CheckView
		require.NoError(t, json.Unmarshal([]byte(stdout), &checks))
		assert.NotEmpty(t, checks)
		for _, c := range checks {
			assert.Equal(t, direction, c.Direction)
		}
	}
}

func assertOutputContains(substr string) func(*testing.T, string, error) {
	return func(t *testing.T, stdout string, err error) {
		t.Helper()
		assert.NoError(t, err)
		assert.Contains(t, stdout, substr)
	}
}

func assertValidJSONL(t *testing.T, stdout string) {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.NotEmpty(t, lines)
	for _, line := range lines {
		var obj json.RawMessage
		assert.NoError(t, json.Unmarshal([]byte(line), &obj), "invalid JSONL line: %s", line)
	}
}

func assertValidCSV(expectedRows int) func(*testing.T, string) {
	return func(t *testing.T, stdout string) {
		t.Helper()
		r := csv.NewReader(strings.NewReader(stdout))
		records, err := r.ReadAll()
		assert.NoError(t, err)
		// +1 for header row
		assert.Len(t, records, expectedRows+1)
	}
}
