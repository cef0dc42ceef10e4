package watch

import (
	"fmt"
	"time"
)

type headerModel struct {
	directionFilter string
	blockedCount    int
}

func newHeaderModel(directionFilter string) headerModel {
	return headerModel{directionFilter: directionFilter}
}

func (h headerModel) view(width int) string {
	title := "mailgate watch"

	direction := "all"
	if h.directionFilter != "" {
		direction = h.directionFilter
	}

	clock := time.Now().Format("15:04:05")
	blocked := fmt.Sprintf("%d blocked", h.blockedCount)

	content := fmt.Sprintf(" %s | %s | %s | %s", title, direction, blocked, clock)
	return headerStyle.Width(width).Render(content)
}
