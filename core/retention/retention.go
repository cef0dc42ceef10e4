// Package retention provides the data retention policy for stored checks.
package retention

import (
	"time"
)

// Policy defines the data retention settings.
type Policy struct {
	// RetentionDays is the number of days to keep check records (0 = never delete).
	RetentionDays int
	// KeepBlocked indicates whether blocked checks are exempt from deletion.
	KeepBlocked bool
}

// NewPolicy creates a new Policy with the given retention days.
func NewPolicy(days int) *Policy {
	return &Policy{
		RetentionDays: days,
		KeepBlocked:   false,
	}
}

// DefaultPolicy returns the default retention policy (90 days).
func DefaultPolicy() *Policy {
	return NewPolicy(90)
}

// CutoffTime returns the time before which records should be deleted.
// Returns zero time if retention is disabled (RetentionDays == 0).
func (p *Policy) CutoffTime() time.Time {
	if p.RetentionDays == 0 {
		return time.Time{}
	}
	return time.Now().AddDate(0, 0, -p.RetentionDays)
}

// IsEnabled returns true if retention is enabled.
func (p *Policy) IsEnabled() bool {
	return p.RetentionDays > 0
}

// ShouldDelete returns true if a record with the given timestamp should be deleted.
func (p *Policy) ShouldDelete(recordTime time.Time) bool {
	if !p.IsEnabled() {
		return false
	}
	cutoff := p.CutoffTime()
	return recordTime.Before(cutoff)
}
