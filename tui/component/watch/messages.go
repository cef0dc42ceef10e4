package watch

import (
	"time"

	"github.com/google/uuid"
	"github.com/mailgate/mailgate/storage"
)

// newChecksMsg delivers freshly fetched records. The cursor fields track
// the newest record fetched before direction filtering, so polling
// advances past records the filter drops.
type newChecksMsg struct {
	checks   []*storage.Record
	cursorAt time.Time
	cursorID uuid.UUID
}

type pollErrorMsg struct {
	err error
}

type tickMsg time.Time
