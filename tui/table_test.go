package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tablePresenterFor(w *bytes.Buffer) *TablePresenter {
	return NewTablePresenter(PresenterOptions{
		Writer:        w,
		UseColors:     false,
		TerminalWidth: 100,
	})
}

func TestTablePresenter_RenderChecks(t *testing.T) {
	var buf bytes.Buffer
	p := tablePresenterFor(&buf)

	err := p.RenderChecks([]*CheckView{
		{
			ID:        "chk_20250115T093000_aa000001",
			ShortID:   "aa000001",
			Timestamp: time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC),
			Direction: "inbound",
			RiskScore: 0.05,
			RiskBand:  "safe",
			Passed:    true,
			Sender:    "alice@example.com",
			Subject:   "Order 1",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "aa000001")
	assert.Contains(t, buf.String(), "1 results")
}

func TestTablePresenter_SurfacesWriteError(t *testing.T) {
	fw := &failWriter{failAfter: 0}
	p := NewTablePresenter(PresenterOptions{Writer: fw, TerminalWidth: 100})

	err := p.RenderChecks([]*CheckView{{ID: "chk_x", ShortID: "x"}})
	require.Error(t, err)

	err = p.RenderStats(&StatsView{TotalChecks: 1})
	require.Error(t, err)

	err = p.RenderMessage("hello")
	require.Error(t, err)
}

func TestTablePresenter_StopsAfterWriteError(t *testing.T) {
	// Every write after the first failure must be skipped, not attempted.
	fw := &failWriter{failAfter: 0}
	p := NewTablePresenter(PresenterOptions{Writer: fw, TerminalWidth: 100})

	err := p.RenderStats(&StatsView{TotalChecks: 3, Passed: 2, Blocked: 1})
	require.Error(t, err)
	assert.Zero(t, fw.written)
}
