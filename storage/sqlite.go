package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mailgate/mailgate/storage/ent"
	"github.com/mailgate/mailgate/storage/ent/checkrecord"
	"github.com/mailgate/mailgate/storage/ent/predicate"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite via ent.
type SQLiteStore struct {
	client *ent.Client
	db     *sql.DB
	path   string
}

// NewSQLiteStore creates a new SQLite store at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	// Ensure parent directory exists
	if err := os.MkdirAll(getDir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with modernc.org/sqlite driver
	// Use _pragma=foreign_keys(1) for modernc.org/sqlite
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create ent driver from sql.DB
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	return &SQLiteStore{
		client: client,
		db:     db,
		path:   path,
	}, nil
}

// Init initializes the database schema.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if err := s.client.Schema.Create(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.client.Close(); err != nil {
		return err
	}
	return s.db.Close()
}

// SaveCheck persists a new check record.
func (s *SQLiteStore) SaveCheck(ctx context.Context, rec *Record) error {
	create := s.client.CheckRecord.Create().
		SetID(rec.ID).
		SetCheckID(rec.CheckID).
		SetTimestamp(rec.Timestamp).
		SetDirection(checkrecord.Direction(rec.Direction)).
		SetPassed(rec.Passed).
		SetBlocked(rec.Blocked).
		SetRequiresReview(rec.RequiresReview).
		SetRiskScore(rec.RiskScore).
		SetRiskBand(checkrecord.RiskBand(rec.RiskBand))

	// Set optional fields
	if rec.DurationMs > 0 {
		create.SetDurationMs(rec.DurationMs)
	}
	if rec.BlockReason != "" {
		create.SetBlockReason(rec.BlockReason)
	}
	if rec.Sender != "" {
		create.SetSender(rec.Sender)
	}
	if rec.Subject != "" {
		create.SetSubject(rec.Subject)
	}
	if rec.ContentHash != "" {
		create.SetContentHash(rec.ContentHash)
	}
	if len(rec.PatternKinds) > 0 {
		create.SetPatternKinds(rec.PatternKinds)
	}
	if len(rec.ViolationKinds) > 0 {
		create.SetViolationKinds(rec.ViolationKinds)
	}
	if rec.Technique != "" {
		create.SetTechnique(rec.Technique)
	}
	if rec.Detail != nil {
		create.SetDetail(rec.Detail)
	}
	if rec.Prompt != "" {
		create.SetPrompt(rec.Prompt)
	}

	_, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save check: %w", err)
	}

	return nil
}

// GetCheck retrieves a record by its check ID.
func (s *SQLiteStore) GetCheck(ctx context.Context, checkID string) (*Record, error) {
	entRec, err := s.client.CheckRecord.Query().
		Where(checkrecord.CheckIDEQ(checkID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get check: %w", err)
	}

	return entToRecord(entRec), nil
}

// GetCheckByPrefix retrieves a record by check ID prefix.
func (s *SQLiteStore) GetCheckByPrefix(ctx context.Context, prefix string) (*Record, error) {
	recs, err := s.client.CheckRecord.Query().
		Where(func(sel *entsql.Selector) {
			sel.Where(entsql.Like(checkrecord.FieldCheckID, prefix+"%"))
		}).
		Limit(2).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get check by prefix: %w", err)
	}

	if len(recs) == 0 {
		return nil, nil
	}
	if len(recs) > 1 {
		return nil, fmt.Errorf("check ID prefix %q is ambiguous", prefix)
	}

	return entToRecord(recs[0]), nil
}

// QueryChecks retrieves records matching the given filter.
func (s *SQLiteStore) QueryChecks(ctx context.Context, filter *Filter) ([]*Record, error) {
	query := s.client.CheckRecord.Query()

	// Apply predicates from filter
	predicates := buildCheckPredicates(filter)
	if len(predicates) > 0 {
		query.Where(predicates...)
	}

	// Apply ordering (newest first)
	query.Order(checkrecord.ByTimestamp(entsql.OrderDesc()))

	// Apply limit and offset
	if filter.Limit > 0 {
		query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query.Offset(filter.Offset)
	}

	entRecs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}

	result := make([]*Record, len(entRecs))
	for i, r := range entRecs {
		result[i] = entToRecord(r)
	}

	return result, nil
}

// CountChecks returns the count of records matching the given filter.
func (s *SQLiteStore) CountChecks(ctx context.Context, filter *Filter) (int, error) {
	query := s.client.CheckRecord.Query()

	predicates := buildCheckPredicates(filter)
	if len(predicates) > 0 {
		query.Where(predicates...)
	}

	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count checks: %w", err)
	}

	return count, nil
}

// DeleteChecksBefore deletes records older than the given time.
func (s *SQLiteStore) DeleteChecksBefore(ctx context.Context, before time.Time) (int, error) {
	deleted, err := s.client.CheckRecord.Delete().
		Where(checkrecord.TimestampLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete checks: %w", err)
	}

	return deleted, nil
}

// CountChecksBefore returns the count of records older than the given time.
func (s *SQLiteStore) CountChecksBefore(ctx context.Context, before time.Time) (int, error) {
	count, err := s.client.CheckRecord.Query().
		Where(checkrecord.TimestampLT(before)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count checks: %w", err)
	}

	return count, nil
}

// QueryChecksAfter retrieves records after the given time, ordered ascending.
// A zero afterID disables the compound cursor and uses a plain timestamp bound.
func (s *SQLiteStore) QueryChecksAfter(ctx context.Context, after time.Time, afterID uuid.UUID, limit int) ([]*Record, error) {
	query := s.client.CheckRecord.Query()

	if afterID != uuid.Nil {
		// Compound cursor: strictly-newer rows, plus same-timestamp rows
		// with a greater ID so batch boundaries never skip records.
		query.Where(checkrecord.Or(
			checkrecord.TimestampGT(after),
			checkrecord.And(
				checkrecord.TimestampEQ(after),
				checkrecord.IDGT(afterID),
			),
		))
	} else {
		query.Where(checkrecord.TimestampGT(after))
	}

	query.Order(checkrecord.ByTimestamp(), checkrecord.ByID())

	if limit > 0 {
		query.Limit(limit)
	}

	entRecs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks after: %w", err)
	}

	result := make([]*Record, len(entRecs))
	for i, r := range entRecs {
		result[i] = entToRecord(r)
	}

	return result, nil
}

// GetStats retrieves aggregated statistics over stored checks.
func (s *SQLiteStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := NewStats()

	// Get all records for aggregation
	recs, err := s.client.CheckRecord.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks for stats: %w", err)
	}

	for _, entRec := range recs {
		stats.Add(entToRecord(entRec))
	}

	return stats, nil
}

// GetDatabaseInfo returns information about the database.
func (s *SQLiteStore) GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error) {
	info := &DatabaseInfo{
		Path: s.path,
	}

	// Get file size
	if stat, err := os.Stat(s.path); err == nil {
		info.SizeBytes = stat.Size()
	}

	// Get check count
	count, err := s.client.CheckRecord.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count checks: %w", err)
	}
	info.CheckCount = count

	// Get oldest check timestamp
	oldest, err := s.client.CheckRecord.Query().
		Order(checkrecord.ByTimestamp()).
		First(ctx)
	if err == nil {
		info.OldestCheck = oldest.Timestamp
	}

	// Get newest check timestamp
	newest, err := s.client.CheckRecord.Query().
		Order(checkrecord.ByTimestamp(entsql.OrderDesc())).
		First(ctx)
	if err == nil {
		info.NewestCheck = newest.Timestamp
	}

	return info, nil
}

// getDir returns the directory portion of a path.
func getDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[:i]
		}
	}
	return "."
}

// entToRecord converts an ent CheckRecord to a domain Record.
func entToRecord(e *ent.CheckRecord) *Record {
	rec := &Record{
		ID:             e.ID,
		CheckID:        e.CheckID,
		Timestamp:      e.Timestamp,
		Direction:      Direction(e.Direction),
		Passed:         e.Passed,
		Blocked:        e.Blocked,
		RequiresReview: e.RequiresReview,
		RiskScore:      e.RiskScore,
		RiskBand:       string(e.RiskBand),
		BlockReason:    e.BlockReason,
		Sender:         e.Sender,
		Subject:        e.Subject,
		ContentHash:    e.ContentHash,
		PatternKinds:   e.PatternKinds,
		ViolationKinds: e.ViolationKinds,
		Technique:      e.Technique,
		Detail:         e.Detail,
		Prompt:         e.Prompt,
	}

	if e.DurationMs != nil {
		rec.DurationMs = *e.DurationMs
	}

	return rec
}

// buildCheckPredicates builds ent predicates from a Filter.
func buildCheckPredicates(filter *Filter) []predicate.CheckRecord {
	var predicates []predicate.CheckRecord

	if filter.Since != nil {
		predicates = append(predicates, checkrecord.TimestampGTE(*filter.Since))
	}
	if filter.Until != nil {
		predicates = append(predicates, checkrecord.TimestampLTE(*filter.Until))
	}
	if filter.Direction != "" {
		predicates = append(predicates, checkrecord.DirectionEQ(checkrecord.Direction(filter.Direction)))
	}
	if len(filter.RiskBands) > 0 {
		bands := make([]checkrecord.RiskBand, len(filter.RiskBands))
		for i, b := range filter.RiskBands {
			bands[i] = checkrecord.RiskBand(b)
		}
		predicates = append(predicates, checkrecord.RiskBandIn(bands...))
	}
	if filter.BlockedOnly {
		predicates = append(predicates, checkrecord.BlockedEQ(true))
	}
	if filter.ReviewOnly {
		predicates = append(predicates, checkrecord.RequiresReviewEQ(true))
	}

	return predicates
}

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)
