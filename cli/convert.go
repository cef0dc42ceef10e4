package cli

import (
	"strings"

	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

// shortCheckID returns the random suffix of a check ID. The timestamp
// portion is shared by every check in the same second, so the suffix is
// the distinctive part.
func shortCheckID(checkID string) string {
	if i := strings.LastIndex(checkID, "_"); i >= 0 && i < len(checkID)-1 {
		return checkID[i+1:]
	}
	return checkID
}

// recordToView converts a storage record to its list display view.
func recordToView(rec *storage.Record) *tui.CheckView {
	return &tui.CheckView{
		ID:             rec.CheckID,
		ShortID:        shortCheckID(rec.CheckID),
		Timestamp:      rec.Timestamp,
		Direction:      string(rec.Direction),
		RiskScore:      rec.RiskScore,
		RiskBand:       rec.RiskBand,
		Passed:         rec.Passed,
		Blocked:        rec.Blocked,
		RequiresReview: rec.RequiresReview,
		Sender:         rec.Sender,
		Subject:        rec.Subject,
		Technique:      rec.Technique,
		PatternCount:   len(rec.PatternKinds),
		DurationMs:     rec.DurationMs,
	}
}

// recordToDetailView converts a storage record to its detail display view.
func recordToDetailView(rec *storage.Record) *tui.CheckDetailView {
	return &tui.CheckDetailView{
		CheckView:      *recordToView(rec),
		BlockReason:    rec.BlockReason,
		ContentHash:    rec.ContentHash,
		PatternKinds:   rec.PatternKinds,
		ViolationKinds: rec.ViolationKinds,
		Prompt:         rec.Prompt,
	}
}

// statsToView converts aggregated storage statistics to their display view.
func statsToView(stats *storage.Stats) *tui.StatsView {
	return &tui.StatsView{
		TotalChecks:    stats.TotalChecks,
		Passed:         stats.Passed,
		Blocked:        stats.Blocked,
		RequiresReview: stats.RequiresReview,
		ByBand:         stats.ByBand,
		ByDirection:    stats.ByDirection,
		AvgRiskScore:   stats.AvgRiskScore,
		OldestCheck:    stats.OldestCheck,
		NewestCheck:    stats.NewestCheck,
	}
}
