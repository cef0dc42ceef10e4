package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/mailgate/mailgate/storage"
)

const sidebarWidth = 22

type statsModel struct {
	totalChecks int
	byBand      map[string]int
	byVerdict   map[verdict]int
	directions  map[string]bool
	recentTimes []time.Time
}

func newStatsModel() statsModel {
	return statsModel{
		byBand:     make(map[string]int),
		byVerdict:  make(map[verdict]int),
		directions: make(map[string]bool),
	}
}

func (s *statsModel) record(rec *storage.Record) {
	s.totalChecks++
	s.byBand[rec.RiskBand]++
	s.byVerdict[verdictFor(rec)]++
	s.directions[string(rec.Direction)] = true
	s.recentTimes = append(s.recentTimes, rec.Timestamp)
	if len(s.recentTimes) > 120 {
		s.recentTimes = s.recentTimes[1:]
	}
}

func (s *statsModel) checksPerMinute() int {
	if len(s.recentTimes) < 2 {
		return 0
	}
	first := s.recentTimes[0]
	last := s.recentTimes[len(s.recentTimes)-1]
	dur := last.Sub(first)
	if dur < time.Second {
		return 0
	}
	return int(float64(len(s.recentTimes)) / dur.Minutes())
}

func (s statsModel) view(height int) string {
	var b strings.Builder

	b.WriteString(sidebarHeaderStyle.Render("Stats"))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf(" Checks: %s\n", sidebarValueStyle.Render(fmt.Sprintf("%d", s.totalChecks))))
	b.WriteString(fmt.Sprintf(" Rate:   %s\n", sidebarValueStyle.Render(fmt.Sprintf("%d/min", s.checksPerMinute()))))
	b.WriteByte('\n')

	b.WriteString(sidebarHeaderStyle.Render("By Band"))
	b.WriteByte('\n')
	for _, band := range []string{"safe", "low", "medium", "high", "critical"} {
		if count, ok := s.byBand[band]; ok && count > 0 {
			bs := bandStyleFor(band)
			label := fmt.Sprintf(" %s %-8s", bs.symbol, band)
			b.WriteString(fmt.Sprintf("%s %s\n",
				sidebarLabelStyle.Render(label),
				sidebarValueStyle.Render(fmt.Sprintf("%d", count))))
		}
	}
	b.WriteByte('\n')

	b.WriteString(sidebarHeaderStyle.Render("By Verdict"))
	b.WriteByte('\n')
	for _, v := range []verdict{verdictPassed, verdictBlocked, verdictReview} {
		if count, ok := s.byVerdict[v]; ok && count > 0 {
			styled := verdictStyle(v).Render(fmt.Sprintf("%-8s", v.String()))
			b.WriteString(fmt.Sprintf(" %s %s\n", styled, sidebarValueStyle.Render(fmt.Sprintf("%d", count))))
		}
	}
	b.WriteByte('\n')

	b.WriteString(sidebarHeaderStyle.Render("Directions"))
	b.WriteByte('\n')
	for name := range s.directions {
		b.WriteString(fmt.Sprintf(" %s\n", directionBadge(name)))
	}

	return sidebarStyle.Width(sidebarWidth).Height(height).Render(b.String())
}
