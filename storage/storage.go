// Package storage provides database storage interfaces and implementations.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Direction identifies which side of the gate a check ran on.
type Direction string

const (
	// DirectionInbound marks a check of an incoming email.
	DirectionInbound Direction = "inbound"
	// DirectionOutput marks a check of a generated reply.
	DirectionOutput Direction = "output"
)

// IsValid returns true if the direction is a known value.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionInbound, DirectionOutput:
		return true
	default:
		return false
	}
}

// Record is the persisted form of a single check.
type Record struct {
	ID             uuid.UUID
	CheckID        string
	Timestamp      time.Time
	DurationMs     int64
	Direction      Direction
	Passed         bool
	Blocked        bool
	RequiresReview bool
	RiskScore      float64
	RiskBand       string
	BlockReason    string
	Sender         string
	Subject        string
	ContentHash    string
	PatternKinds   []string
	ViolationKinds []string
	Technique      string
	Detail         map[string]interface{}
	Prompt         string
}

// Filter provides filtering for check queries.
type Filter struct {
	Since       *time.Time
	Until       *time.Time
	Direction   Direction
	RiskBands   []string
	BlockedOnly bool
	ReviewOnly  bool
	Limit       int
	Offset      int
}

// Stats holds aggregated counts over stored checks.
type Stats struct {
	TotalChecks    int
	Passed         int
	Blocked        int
	RequiresReview int
	ByBand         map[string]int
	ByDirection    map[string]int
	AvgRiskScore   float64
	OldestCheck    time.Time
	NewestCheck    time.Time
}

// NewStats returns an empty Stats with maps initialized.
func NewStats() *Stats {
	return &Stats{
		ByBand:      make(map[string]int),
		ByDirection: make(map[string]int),
	}
}

// Add folds one record into the aggregate.
func (s *Stats) Add(rec *Record) {
	s.TotalChecks++
	if rec.Passed {
		s.Passed++
	}
	if rec.Blocked {
		s.Blocked++
	}
	if rec.RequiresReview {
		s.RequiresReview++
	}
	s.ByBand[rec.RiskBand]++
	s.ByDirection[string(rec.Direction)]++

	// Running mean keeps a single pass over the rows.
	s.AvgRiskScore += (rec.RiskScore - s.AvgRiskScore) / float64(s.TotalChecks)

	if s.OldestCheck.IsZero() || rec.Timestamp.Before(s.OldestCheck) {
		s.OldestCheck = rec.Timestamp
	}
	if rec.Timestamp.After(s.NewestCheck) {
		s.NewestCheck = rec.Timestamp
	}
}

// CheckStore defines the interface for storing and querying check records.
type CheckStore interface {
	// SaveCheck persists a new check record.
	SaveCheck(ctx context.Context, rec *Record) error

	// GetCheck retrieves a record by its check ID.
	GetCheck(ctx context.Context, checkID string) (*Record, error)

	// GetCheckByPrefix retrieves a record by check ID prefix.
	GetCheckByPrefix(ctx context.Context, prefix string) (*Record, error)

	// QueryChecks retrieves records matching the given filter.
	QueryChecks(ctx context.Context, filter *Filter) ([]*Record, error)

	// CountChecks returns the count of records matching the given filter.
	CountChecks(ctx context.Context, filter *Filter) (int, error)

	// DeleteChecksBefore deletes records older than the given time.
	DeleteChecksBefore(ctx context.Context, before time.Time) (int, error)

	// CountChecksBefore returns the count of records older than the given time.
	CountChecksBefore(ctx context.Context, before time.Time) (int, error)

	// QueryChecksAfter retrieves records after the given time, ordered ascending.
	// When afterID is non-nil, a compound cursor (timestamp, id) is used so that
	// records sharing the same timestamp as after are only included when their ID
	// is greater than afterID. This prevents skipping records at batch boundaries.
	QueryChecksAfter(ctx context.Context, after time.Time, afterID uuid.UUID, limit int) ([]*Record, error)

	// GetStats retrieves aggregated statistics over stored checks.
	GetStats(ctx context.Context) (*Stats, error)
}

// Store combines all storage interfaces.
type Store interface {
	CheckStore

	// Init initializes the database schema.
	Init(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}

// DatabaseInfo contains information about the database.
type DatabaseInfo struct {
	Path        string
	SizeBytes   int64
	CheckCount  int
	OldestCheck time.Time
	NewestCheck time.Time
}
