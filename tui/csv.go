package tui

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVPresenter renders output as CSV.
type CSVPresenter struct {
	w      io.Writer
	writer *csv.Writer
}

// NewCSVPresenter creates a new CSV presenter.
func NewCSVPresenter(opts PresenterOptions) *CSVPresenter {
	return &CSVPresenter{
		w:      opts.Writer,
		writer: csv.NewWriter(opts.Writer),
	}
}

// RenderStatus renders the tool status as CSV.
func (p *CSVPresenter) RenderStatus(status *StatusView) error {
	p.writer.Write([]string{"type", "name", "value"})

	p.writer.Write([]string{"version", "mailgate", status.Version})

	p.writer.Write([]string{"database", "location", status.Database.Location})
	p.writer.Write([]string{"database", "checks", fmt.Sprintf("%d", status.Database.CheckCount)})

	enabled := "false"
	if status.Classifier.Enabled {
		enabled = "true"
	}
	p.writer.Write([]string{"classifier", "enabled", enabled})

	p.writer.Write([]string{"config", "retention_days", fmt.Sprintf("%d", status.Config.RetentionDays)})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderChecks renders a list of check records as CSV.
func (p *CSVPresenter) RenderChecks(checks []*CheckView) error {
	p.writer.Write([]string{
		"id", "timestamp", "direction", "risk_score", "risk_band",
		"passed", "blocked", "requires_review", "sender", "subject",
		"technique", "pattern_count", "duration_ms",
	})

	for _, c := range checks {
		p.writer.Write([]string{
			c.ID,
			FormatTime(c.Timestamp),
			c.Direction,
			FormatRisk(c.RiskScore),
			c.RiskBand,
			fmt.Sprintf("%t", c.Passed),
			fmt.Sprintf("%t", c.Blocked),
			fmt.Sprintf("%t", c.RequiresReview),
			c.Sender,
			c.Subject,
			c.Technique,
			fmt.Sprintf("%d", c.PatternCount),
			fmt.Sprintf("%d", c.DurationMs),
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderCheckDetail renders full details of a single check as CSV.
func (p *CSVPresenter) RenderCheckDetail(check *CheckDetailView) error {
	p.writer.Write([]string{
		"id", "timestamp", "direction", "risk_score", "risk_band",
		"passed", "blocked", "requires_review", "block_reason",
		"sender", "subject", "technique", "content_hash",
		"pattern_kinds", "violation_kinds",
	})

	p.writer.Write([]string{
		check.ID,
		FormatTime(check.Timestamp),
		check.Direction,
		FormatRisk(check.RiskScore),
		check.RiskBand,
		fmt.Sprintf("%t", check.Passed),
		fmt.Sprintf("%t", check.Blocked),
		fmt.Sprintf("%t", check.RequiresReview),
		check.BlockReason,
		check.Sender,
		check.Subject,
		check.Technique,
		check.ContentHash,
		strings.Join(check.PatternKinds, ";"),
		strings.Join(check.ViolationKinds, ";"),
	})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderOutputCheck renders an output validation result as CSV.
func (p *CSVPresenter) RenderOutputCheck(check *OutputCheckView) error {
	p.writer.Write([]string{"id", "timestamp", "risk_score", "passed", "requires_review", "violations"})

	kinds := make([]string, len(check.Violations))
	for i, v := range check.Violations {
		kinds[i] = v.Kind
	}

	p.writer.Write([]string{
		check.ID,
		FormatTime(check.Timestamp),
		FormatRisk(check.RiskScore),
		fmt.Sprintf("%t", check.Passed),
		fmt.Sprintf("%t", check.RequiresReview),
		strings.Join(kinds, ";"),
	})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderStats renders aggregated check statistics as CSV.
func (p *CSVPresenter) RenderStats(stats *StatsView) error {
	p.writer.Write([]string{"metric", "value"})

	p.writer.Write([]string{"total_checks", fmt.Sprintf("%d", stats.TotalChecks)})
	p.writer.Write([]string{"passed", fmt.Sprintf("%d", stats.Passed)})
	p.writer.Write([]string{"blocked", fmt.Sprintf("%d", stats.Blocked)})
	p.writer.Write([]string{"requires_review", fmt.Sprintf("%d", stats.RequiresReview)})
	p.writer.Write([]string{"avg_risk_score", FormatRisk(stats.AvgRiskScore)})

	for _, band := range []string{"safe", "low", "medium", "high", "critical"} {
		if count, ok := stats.ByBand[band]; ok {
			p.writer.Write([]string{"band_" + band, fmt.Sprintf("%d", count)})
		}
	}
	for _, dir := range []string{"inbound", "output"} {
		if count, ok := stats.ByDirection[dir]; ok {
			p.writer.Write([]string{"direction_" + dir, fmt.Sprintf("%d", count)})
		}
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderConfig renders the configuration as CSV.
func (p *CSVPresenter) RenderConfig(config *ConfigView) error {
	p.writer.Write([]string{"key", "value"})
	p.renderConfigMap(config.Values, "")
	p.writer.Flush()
	return p.writer.Error()
}

func (p *CSVPresenter) renderConfigMap(m map[string]interface{}, prefix string) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			p.renderConfigMap(v, fullKey)
		default:
			p.writer.Write([]string{fullKey, fmt.Sprintf("%v", value)})
		}
	}
}

// RenderDiff renders a diff view as CSV (content as single field).
func (p *CSVPresenter) RenderDiff(diff *DiffView) error {
	p.writer.Write([]string{"check_id", "timestamp", "content"})

	content := diff.Content
	if !diff.Available {
		content = diff.Message
	}

	p.writer.Write([]string{
		diff.CheckID,
		FormatTime(diff.Timestamp),
		content,
	})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderError renders an error message as CSV.
func (p *CSVPresenter) RenderError(err error) error {
	p.writer.Write([]string{"error"})
	p.writer.Write([]string{err.Error()})
	p.writer.Flush()
	return p.writer.Error()
}

// RenderMessage renders a simple message as CSV.
func (p *CSVPresenter) RenderMessage(message string) error {
	p.writer.Write([]string{"message"})
	p.writer.Write([]string{message})
	p.writer.Flush()
	return p.writer.Error()
}

// Ensure CSVPresenter implements Presenter
var _ Presenter = (*CSVPresenter)(nil)
