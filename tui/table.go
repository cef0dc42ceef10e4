package tui

import (
	"fmt"
	"io"
	"strings"
)

// TablePresenter renders output in table format.
type TablePresenter struct {
	w         io.Writer
	color     *Colorizer
	termWidth int
	verbose   bool
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = GetTerminalWidth()
	}
	return &TablePresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		termWidth: termWidth,
		verbose:   opts.Verbose,
	}
}

// RenderStatus renders the tool status.
func (p *TablePresenter) RenderStatus(status *StatusView) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s\n\n", p.color.Header("mailgate "+status.Version))

	// Database section
	tw.printf("%s\n", p.color.Header("Database"))
	tw.printf("  %-14s %s\n", "Location", p.color.Path(status.Database.Location))
	tw.printf("  %-14s %s\n", "Size", status.Database.SizeHuman)
	tw.printf("  %-14s %s\n", "Checks", p.color.Number(FormatNumber(status.Database.CheckCount)))
	if !status.Database.OldestCheck.IsZero() {
		tw.printf("  %-14s %s\n", "Oldest", FormatTime(status.Database.OldestCheck))
		tw.printf("  %-14s %s\n", "Latest", FormatTime(status.Database.NewestCheck))
	}
	tw.println()

	// Classifier section
	tw.printf("%s\n", p.color.Header("Classifier"))
	if status.Classifier.Enabled {
		tw.printf("  %-14s %s\n", "Status", p.color.Success("enabled"))
		tw.printf("  %-14s %s\n", "Endpoint", status.Classifier.Endpoint)
		if status.Classifier.Model != "" {
			tw.printf("  %-14s %s\n", "Model", status.Classifier.Model)
		}
	} else {
		tw.printf("  %-14s %s\n", "Status", p.color.Dim("disabled (pattern checks only)"))
	}
	tw.println()

	// Config section
	tw.printf("%s\n", p.color.Header("Config"))
	tw.printf("  %-14s %s\n", "Location", p.color.Path(status.Config.Location))
	tw.printf("  %-14s %d days\n", "Retention", status.Config.RetentionDays)
	if status.Config.ChecksToClean > 0 {
		tw.printf("  %-14s %d checks older than %s\n", "To clean",
			status.Config.ChecksToClean, FormatDate(status.Config.RetentionCutoff))
	}

	return tw.Err()
}

// checksColumnWidths holds the calculated widths for the checks table columns.
type checksColumnWidths struct {
	time      int
	id        int
	direction int
	band      int
	risk      int
	subject   int
	verdict   int
	total     int
}

// calculateChecksColumnWidths computes column widths based on terminal width.
// Fixed columns: Time(11), ID(9), Dir(8), Band(9), Risk(5), Verdict(8)
// Flexible column: Subject (absorbs remaining space)
func (p *TablePresenter) calculateChecksColumnWidths() checksColumnWidths {
	const (
		timeWidth      = 11
		idWidth        = 9
		directionWidth = 8
		bandWidth      = 9
		riskWidth      = 5
		verdictWidth   = 8
		minSubject     = 15
		maxSubject     = 60
		spacing        = 6 // spaces between columns
	)

	fixedWidth := timeWidth + idWidth + directionWidth + bandWidth + riskWidth + verdictWidth + spacing
	availableForSubject := p.termWidth - fixedWidth

	subjectWidth := availableForSubject
	if subjectWidth < minSubject {
		subjectWidth = minSubject
	}
	if subjectWidth > maxSubject {
		subjectWidth = maxSubject
	}

	return checksColumnWidths{
		time:      timeWidth,
		id:        idWidth,
		direction: directionWidth,
		band:      bandWidth,
		risk:      riskWidth,
		subject:   subjectWidth,
		verdict:   verdictWidth,
		total:     fixedWidth + subjectWidth,
	}
}

// RenderChecks renders a list of check records.
func (p *TablePresenter) RenderChecks(checks []*CheckView) error {
	tw := &tableWriter{w: p.w}

	if len(checks) == 0 {
		tw.println("No checks found.")
		return tw.Err()
	}

	cols := p.calculateChecksColumnWidths()

	tw.printf("Checks (%d)\n", len(checks))
	tw.println(HorizontalLine(cols.total))

	headerFmt := fmt.Sprintf("%%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%s\n",
		cols.time, cols.id, cols.direction, cols.band, cols.risk, cols.subject)
	tw.printf(headerFmt, "Time", "ID", "Dir", "Band", "Risk", "Subject", "Verdict")
	tw.println(HorizontalLine(cols.total))

	rowFmt := fmt.Sprintf("%%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%s\n",
		cols.time, cols.id, cols.direction, cols.band+p.color.padding(), cols.risk, cols.subject)

	for _, c := range checks {
		subject := TruncateString(c.Subject, cols.subject)

		tw.printf(rowFmt,
			FormatTimeShort(c.Timestamp),
			c.ShortID,
			c.Direction,
			p.color.Band(c.RiskBand),
			FormatRisk(c.RiskScore),
			subject,
			FormatVerdict(c.Passed, c.Blocked, c.RequiresReview))
	}

	tw.println(HorizontalLine(cols.total))
	tw.printf("%d results\n", len(checks))

	return tw.Err()
}

// padding returns the extra width ANSI codes add to one colored cell.
func (c *Colorizer) padding() int {
	if !c.enabled {
		return 0
	}
	return len(Red) + len(Reset)
}

// RenderCheckDetail renders full details of a single check.
func (p *TablePresenter) RenderCheckDetail(check *CheckDetailView) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s\n", p.color.Header("Check Details"))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	tw.printf("%-16s %s\n", "Check ID", check.ID)
	tw.printf("%-16s %s\n", "Time", FormatTime(check.Timestamp))
	tw.printf("%-16s %s\n", "Direction", check.Direction)
	tw.printf("%-16s %s (%s)\n", "Risk", FormatRisk(check.RiskScore), p.color.Band(check.RiskBand))
	tw.printf("%-16s %s\n", "Verdict",
		FormatVerdict(check.Passed, check.Blocked, check.RequiresReview))
	if check.BlockReason != "" {
		tw.printf("%-16s %s\n", "Block reason", p.color.Error(check.BlockReason))
	}
	if check.Sender != "" {
		tw.printf("%-16s %s\n", "From", p.color.Sender(check.Sender))
	}
	if check.Subject != "" {
		tw.printf("%-16s %s\n", "Subject", check.Subject)
	}
	if check.Technique != "" {
		tw.printf("%-16s %s\n", "Technique", check.Technique)
	}
	if check.ContentHash != "" {
		tw.printf("%-16s %s\n", "Content hash", p.color.Dim(check.ContentHash))
	}
	if check.DurationMs > 0 {
		tw.printf("%-16s %dms\n", "Duration", check.DurationMs)
	}
	tw.println()

	if len(check.PatternKinds) > 0 {
		tw.printf("%s\n", p.color.Header("Flagged Patterns"))
		for _, kind := range check.PatternKinds {
			tw.printf("  - %s\n", kind)
		}
		tw.println()
	}

	if len(check.ViolationKinds) > 0 {
		tw.printf("%s\n", p.color.Header("Violations"))
		for _, kind := range check.ViolationKinds {
			tw.printf("  - %s\n", kind)
		}
		tw.println()
	}

	if p.verbose && check.Prompt != "" {
		tw.printf("%s\n", p.color.Header("Generated Prompt"))
		tw.println(HorizontalLine(p.termWidth))
		tw.println(check.Prompt)
	}

	return tw.Err()
}

// RenderOutputCheck renders an output validation result.
func (p *TablePresenter) RenderOutputCheck(check *OutputCheckView) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s\n", p.color.Header("Output Check"))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	tw.printf("%-16s %s\n", "Check ID", check.ID)
	tw.printf("%-16s %s\n", "Time", FormatTime(check.Timestamp))
	tw.printf("%-16s %s\n", "Risk", FormatRisk(check.RiskScore))

	verdict := p.color.Success("passed")
	if !check.Passed {
		verdict = p.color.Error("failed")
	} else if check.RequiresReview {
		verdict = p.color.Warning("passed (review)")
	}
	tw.printf("%-16s %s\n", "Verdict", verdict)
	tw.println()

	if len(check.Violations) > 0 {
		tw.printf("%s\n", p.color.Header("Violations"))
		for _, v := range check.Violations {
			sevStr := v.Severity
			switch v.Severity {
			case "critical", "high":
				sevStr = p.color.Error(v.Severity)
			case "medium":
				sevStr = p.color.Warning(v.Severity)
			default:
				sevStr = p.color.Dim(v.Severity)
			}
			tw.printf("  %-10s %s  %s\n", sevStr, v.Kind, p.color.Dim(v.Description))
		}
		tw.println()
	}

	if check.SafeContent != "" {
		tw.printf("%s\n", p.color.Header("Safe Content"))
		tw.println(HorizontalLine(p.termWidth))
		tw.println(check.SafeContent)
	}

	return tw.Err()
}

// RenderStats renders aggregated check statistics.
func (p *TablePresenter) RenderStats(stats *StatsView) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s\n", p.color.Header("Statistics"))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	tw.printf("%-16s %s\n", "Total checks", p.color.Number(FormatNumber(stats.TotalChecks)))
	tw.printf("%-16s %s\n", "Passed", p.color.Number(FormatNumber(stats.Passed)))
	tw.printf("%-16s %s\n", "Blocked", p.color.Number(FormatNumber(stats.Blocked)))
	tw.printf("%-16s %s\n", "Needs review", p.color.Number(FormatNumber(stats.RequiresReview)))
	tw.printf("%-16s %s\n", "Avg risk", FormatRisk(stats.AvgRiskScore))
	if !stats.OldestCheck.IsZero() {
		tw.printf("%-16s %s to %s\n", "Window",
			FormatDate(stats.OldestCheck), FormatDate(stats.NewestCheck))
	}
	tw.println()

	if len(stats.ByBand) > 0 {
		tw.printf("%s\n", p.color.Header("By Risk Band"))
		for _, band := range []string{"safe", "low", "medium", "high", "critical"} {
			if count, ok := stats.ByBand[band]; ok {
				tw.printf("  %-12s %s\n", p.color.Band(band), FormatNumber(count))
			}
		}
		tw.println()
	}

	if len(stats.ByDirection) > 0 {
		tw.printf("%s\n", p.color.Header("By Direction"))
		for _, dir := range []string{"inbound", "output"} {
			if count, ok := stats.ByDirection[dir]; ok {
				tw.printf("  %-12s %s\n", dir, FormatNumber(count))
			}
		}
	}

	return tw.Err()
}

// RenderConfig renders the configuration.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s\n", p.color.Header("Configuration"))
	tw.printf("Location: %s\n", p.color.Path(config.Location))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	p.renderConfigMap(tw, config.Values, "")

	return tw.Err()
}

func (p *TablePresenter) renderConfigMap(tw *tableWriter, m map[string]interface{}, prefix string) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			p.renderConfigMap(tw, v, fullKey)
		default:
			tw.printf("  %-34s %v\n", fullKey, value)
		}
	}
}

// RenderDiff renders a sanitizer diff view.
func (p *TablePresenter) RenderDiff(diff *DiffView) error {
	tw := &tableWriter{w: p.w}

	if !diff.Available {
		tw.println(diff.Message)
		return tw.Err()
	}

	tw.printf("%-10s %s\n", "Check:", diff.CheckID)
	tw.printf("%-10s %s\n", "Time:", FormatTime(diff.Timestamp))
	tw.println()

	// Render diff content with colors
	for _, line := range strings.Split(diff.Content, "\n") {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			tw.println(p.color.DiffHeader(line))
		} else if strings.HasPrefix(line, "+") {
			tw.println(p.color.DiffAdd(line))
		} else if strings.HasPrefix(line, "-") {
			tw.println(p.color.DiffRemove(line))
		} else if strings.HasPrefix(line, "@@") {
			tw.println(p.color.Cyan(line))
		} else {
			tw.println(line)
		}
	}

	return tw.Err()
}

// RenderError renders an error message.
func (p *TablePresenter) RenderError(err error) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s %s\n", p.color.Error("Error:"), err.Error())
	return tw.Err()
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	tw := &tableWriter{w: p.w}
	tw.println(message)
	return tw.Err()
}

// Ensure TablePresenter implements Presenter
var _ Presenter = (*TablePresenter)(nil)
