package watch

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorRed    = lipgloss.Color("#E74C3C")
	colorAmber  = lipgloss.Color("#F0AD4E")
	colorViolet = lipgloss.Color("#9B59B6")
	colorTeal   = lipgloss.Color("#1ABC9C")
	colorOrange = lipgloss.Color("#E67E22")
	colorWhite  = lipgloss.Color("#ECF0F1")
	colorDim    = lipgloss.Color("#7F8C8D")
	colorBg     = lipgloss.Color("#1E1E2E")

	headerStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorDim).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorDim).
			Padding(0, 1)

	sidebarLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	sidebarValueStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	sidebarHeaderStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				Underline(true)

	checkTimeStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	pauseIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorAmber).
				Bold(true)

	scrollLockStyle = lipgloss.NewStyle().
			Foreground(colorViolet).
			Bold(true)

	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorViolet).
				Padding(1, 2).
				Foreground(colorWhite)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)

type bandStyle struct {
	symbol string
	color  lipgloss.Color
}

var bandStyles = map[string]bandStyle{
	"safe":     {symbol: ".", color: colorGreen},
	"low":      {symbol: "-", color: colorTeal},
	"medium":   {symbol: "!", color: colorAmber},
	"high":     {symbol: "*", color: colorOrange},
	"critical": {symbol: "x", color: colorRed},
}

func bandStyleFor(band string) bandStyle {
	if s, ok := bandStyles[band]; ok {
		return s
	}
	return bandStyle{symbol: "?", color: colorDim}
}

func verdictStyle(rec verdict) lipgloss.Style {
	switch rec {
	case verdictPassed:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case verdictBlocked:
		return lipgloss.NewStyle().Foreground(colorRed)
	case verdictReview:
		return lipgloss.NewStyle().Foreground(colorAmber)
	default:
		return lipgloss.NewStyle().Foreground(colorDim)
	}
}

func directionBadge(direction string) string {
	switch direction {
	case "inbound":
		return lipgloss.NewStyle().Foreground(colorBlue).Bold(true).Render("inbound")
	case "output":
		return lipgloss.NewStyle().Foreground(colorViolet).Bold(true).Render("output")
	default:
		return lipgloss.NewStyle().Foreground(colorDim).Render(direction)
	}
}
