package watch

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

const (
	colTimeWidth  = 8 // "15:04:05"
	colIconWidth  = 1 // single symbol
	colDirWidth   = 7 // "inbound" padded
	colIDWidth    = 4 // short check ID suffix
	colRiskWidth  = 4 // "0.75"
	colSpacing    = 6 // spaces between fixed columns
	colMinSubject = 15
	colMaxSubject = 100
)

type verdict int

const (
	verdictPassed verdict = iota
	verdictBlocked
	verdictReview
	verdictFailed
)

func verdictFor(rec *storage.Record) verdict {
	switch {
	case rec.Blocked:
		return verdictBlocked
	case rec.RequiresReview:
		return verdictReview
	case rec.Passed:
		return verdictPassed
	default:
		return verdictFailed
	}
}

func (v verdict) String() string {
	switch v {
	case verdictBlocked:
		return "blocked"
	case verdictReview:
		return "review"
	case verdictPassed:
		return "passed"
	default:
		return "failed"
	}
}

func fixedColumnsWidth() int {
	return colTimeWidth + colIconWidth + colDirWidth + colIDWidth + colRiskWidth + colSpacing
}

func subjectWidth(streamWidth int) int {
	avail := streamWidth - fixedColumnsWidth()
	if avail < colMinSubject {
		return colMinSubject
	}
	if avail > colMaxSubject {
		return colMaxSubject
	}
	return avail
}

func formatCheck(rec *storage.Record, width int) string {
	bs := bandStyleFor(rec.RiskBand)
	iconStyle := lipgloss.NewStyle().Foreground(bs.color)

	sw := subjectWidth(width)

	ts := checkTimeStyle.Render(tui.FormatTimeShort(rec.Timestamp))
	icon := iconStyle.Render(bs.symbol)
	dir := directionBadge(string(rec.Direction))
	shortID := lipgloss.NewStyle().Foreground(colorDim).Render(checkShortID(rec.CheckID))
	risk := iconStyle.Render(tui.FormatRisk(rec.RiskScore))

	subject := rec.Subject
	if subject == "" {
		subject = rec.Sender
	}
	subject = tui.TruncateString(subject, sw)

	v := verdictFor(rec)
	var verdictSuffix string
	if v != verdictPassed {
		verdictSuffix = " " + verdictStyle(v).Render(v.String())
	}

	return fmt.Sprintf("%s %s %-9s %s %s %s%s",
		ts, icon, dir, shortID, risk, subject, verdictSuffix)
}

// checkShortID returns the trailing uuid fragment of a check ID, which is
// the only part that varies within one second.
func checkShortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}
