package watch

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mailgate/mailgate/storage"
)

func pollChecks(store storage.Store, after time.Time, afterID uuid.UUID, direction string, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		recs, err := store.QueryChecksAfter(ctx, after, afterID, limit)
		if err != nil {
			return pollErrorMsg{err: err}
		}

		msg := newChecksMsg{}
		if len(recs) > 0 {
			newest := recs[len(recs)-1]
			msg.cursorAt = newest.Timestamp
			msg.cursorID = newest.ID
		}

		if direction != "" {
			recs = filterByDirection(recs, direction)
		}

		msg.checks = recs
		return msg
	}
}

func loadInitialChecks(store storage.Store, since time.Time, direction string, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		filter := &storage.Filter{
			Since: &since,
			Limit: limit,
		}
		if direction != "" {
			filter.Direction = storage.Direction(direction)
		}

		recs, err := store.QueryChecks(ctx, filter)
		if err != nil {
			return pollErrorMsg{err: err}
		}

		// QueryChecks returns newest first; the stream wants ascending order.
		for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
			recs[i], recs[j] = recs[j], recs[i]
		}

		msg := newChecksMsg{checks: recs}
		if len(recs) > 0 {
			newest := recs[len(recs)-1]
			msg.cursorAt = newest.Timestamp
			msg.cursorID = newest.ID
		}
		return msg
	}
}

func schedulePoll(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func filterByDirection(recs []*storage.Record, direction string) []*storage.Record {
	filtered := make([]*storage.Record, 0, len(recs))
	for _, r := range recs {
		if string(r.Direction) == direction {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
