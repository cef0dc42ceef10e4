// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mailgate/mailgate/storage/ent/checkrecord"
	"github.com/mailgate/mailgate/storage/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckRecord = "CheckRecord"
)

// CheckRecordMutation represents an operation that mutates the CheckRecord nodes in the graph.
type CheckRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	check_id              *string
	timestamp             *time.Time
	duration_ms           *int64
	addduration_ms        *int64
	direction             *checkrecord.Direction
	passed                *bool
	blocked               *bool
	requires_review       *bool
	risk_score            *float64
	addrisk_score         *float64
	risk_band             *checkrecord.RiskBand
	block_reason          *string
	sender                *string
	subject               *string
	content_hash          *string
	pattern_kinds         *[]string
	appendpattern_kinds   []string
	violation_kinds       *[]string
	appendviolation_kinds []string
	technique             *string
	detail                *map[string]interface{}
	prompt                *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*CheckRecord, error)
	predicates            []predicate.CheckRecord
}

var _ ent.Mutation = (*CheckRecordMutation)(nil)

// checkrecordOption allows management of the mutation configuration using functional options.
type checkrecordOption func(*CheckRecordMutation)

// newCheckRecordMutation creates new mutation for the CheckRecord entity.
func newCheckRecordMutation(c config, op Op, opts ...checkrecordOption) *CheckRecordMutation {
	m := &CheckRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckRecordID sets the ID field of the mutation.
func withCheckRecordID(id uuid.UUID) checkrecordOption {
	return func(m *CheckRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CheckRecord
		)
		m.oldValue = func(ctx context.Context) (*CheckRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CheckRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckRecord sets the old CheckRecord of the mutation.
func withCheckRecord(node *CheckRecord) checkrecordOption {
	return func(m *CheckRecordMutation) {
		m.oldValue = func(context.Context) (*CheckRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CheckRecord entities.
func (m *CheckRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CheckRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCheckID sets the "check_id" field.
func (m *CheckRecordMutation) SetCheckID(s string) {
	m.check_id = &s
}

// CheckID returns the value of the "check_id" field in the mutation.
func (m *CheckRecordMutation) CheckID() (r string, exists bool) {
	v := m.check_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckID returns the old "check_id" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldCheckID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckID: %w", err)
	}
	return oldValue.CheckID, nil
}

// ResetCheckID resets all changes to the "check_id" field.
func (m *CheckRecordMutation) ResetCheckID() {
	m.check_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CheckRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CheckRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CheckRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *CheckRecordMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *CheckRecordMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *CheckRecordMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *CheckRecordMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *CheckRecordMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[checkrecord.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *CheckRecordMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *CheckRecordMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, checkrecord.FieldDurationMs)
}

// SetDirection sets the "direction" field.
func (m *CheckRecordMutation) SetDirection(c checkrecord.Direction) {
	m.direction = &c
}

// Direction returns the value of the "direction" field in the mutation.
func (m *CheckRecordMutation) Direction() (r checkrecord.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldDirection(ctx context.Context) (v checkrecord.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *CheckRecordMutation) ResetDirection() {
	m.direction = nil
}

// SetPassed sets the "passed" field.
func (m *CheckRecordMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *CheckRecordMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *CheckRecordMutation) ResetPassed() {
	m.passed = nil
}

// SetBlocked sets the "blocked" field.
func (m *CheckRecordMutation) SetBlocked(b bool) {
	m.blocked = &b
}

// Blocked returns the value of the "blocked" field in the mutation.
func (m *CheckRecordMutation) Blocked() (r bool, exists bool) {
	v := m.blocked
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocked returns the old "blocked" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldBlocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocked: %w", err)
	}
	return oldValue.Blocked, nil
}

// ResetBlocked resets all changes to the "blocked" field.
func (m *CheckRecordMutation) ResetBlocked() {
	m.blocked = nil
}

// SetRequiresReview sets the "requires_review" field.
func (m *CheckRecordMutation) SetRequiresReview(b bool) {
	m.requires_review = &b
}

// RequiresReview returns the value of the "requires_review" field in the mutation.
func (m *CheckRecordMutation) RequiresReview() (r bool, exists bool) {
	v := m.requires_review
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresReview returns the old "requires_review" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldRequiresReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresReview: %w", err)
	}
	return oldValue.RequiresReview, nil
}

// ResetRequiresReview resets all changes to the "requires_review" field.
func (m *CheckRecordMutation) ResetRequiresReview() {
	m.requires_review = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *CheckRecordMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *CheckRecordMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *CheckRecordMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *CheckRecordMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *CheckRecordMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetRiskBand sets the "risk_band" field.
func (m *CheckRecordMutation) SetRiskBand(cb checkrecord.RiskBand) {
	m.risk_band = &cb
}

// RiskBand returns the value of the "risk_band" field in the mutation.
func (m *CheckRecordMutation) RiskBand() (r checkrecord.RiskBand, exists bool) {
	v := m.risk_band
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskBand returns the old "risk_band" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldRiskBand(ctx context.Context) (v checkrecord.RiskBand, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskBand: %w", err)
	}
	return oldValue.RiskBand, nil
}

// ResetRiskBand resets all changes to the "risk_band" field.
func (m *CheckRecordMutation) ResetRiskBand() {
	m.risk_band = nil
}

// SetBlockReason sets the "block_reason" field.
func (m *CheckRecordMutation) SetBlockReason(s string) {
	m.block_reason = &s
}

// BlockReason returns the value of the "block_reason" field in the mutation.
func (m *CheckRecordMutation) BlockReason() (r string, exists bool) {
	v := m.block_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockReason returns the old "block_reason" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldBlockReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockReason: %w", err)
	}
	return oldValue.BlockReason, nil
}

// ClearBlockReason clears the value of the "block_reason" field.
func (m *CheckRecordMutation) ClearBlockReason() {
	m.block_reason = nil
	m.clearedFields[checkrecord.FieldBlockReason] = struct{}{}
}

// BlockReasonCleared returns if the "block_reason" field was cleared in this mutation.
func (m *CheckRecordMutation) BlockReasonCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldBlockReason]
	return ok
}

// ResetBlockReason resets all changes to the "block_reason" field.
func (m *CheckRecordMutation) ResetBlockReason() {
	m.block_reason = nil
	delete(m.clearedFields, checkrecord.FieldBlockReason)
}

// SetSender sets the "sender" field.
func (m *CheckRecordMutation) SetSender(s string) {
	m.sender = &s
}

// Sender returns the value of the "sender" field in the mutation.
func (m *CheckRecordMutation) Sender() (r string, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ClearSender clears the value of the "sender" field.
func (m *CheckRecordMutation) ClearSender() {
	m.sender = nil
	m.clearedFields[checkrecord.FieldSender] = struct{}{}
}

// SenderCleared returns if the "sender" field was cleared in this mutation.
func (m *CheckRecordMutation) SenderCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldSender]
	return ok
}

// ResetSender resets all changes to the "sender" field.
func (m *CheckRecordMutation) ResetSender() {
	m.sender = nil
	delete(m.clearedFields, checkrecord.FieldSender)
}

// SetSubject sets the "subject" field.
func (m *CheckRecordMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *CheckRecordMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *CheckRecordMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[checkrecord.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *CheckRecordMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *CheckRecordMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, checkrecord.FieldSubject)
}

// SetContentHash sets the "content_hash" field.
func (m *CheckRecordMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *CheckRecordMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *CheckRecordMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[checkrecord.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *CheckRecordMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *CheckRecordMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, checkrecord.FieldContentHash)
}

// SetPatternKinds sets the "pattern_kinds" field.
func (m *CheckRecordMutation) SetPatternKinds(s []string) {
	m.pattern_kinds = &s
	m.appendpattern_kinds = nil
}

// PatternKinds returns the value of the "pattern_kinds" field in the mutation.
func (m *CheckRecordMutation) PatternKinds() (r []string, exists bool) {
	v := m.pattern_kinds
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternKinds returns the old "pattern_kinds" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldPatternKinds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternKinds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternKinds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternKinds: %w", err)
	}
	return oldValue.PatternKinds, nil
}

// AppendPatternKinds adds s to the "pattern_kinds" field.
func (m *CheckRecordMutation) AppendPatternKinds(s []string) {
	m.appendpattern_kinds = append(m.appendpattern_kinds, s...)
}

// AppendedPatternKinds returns the list of values that were appended to the "pattern_kinds" field in this mutation.
func (m *CheckRecordMutation) AppendedPatternKinds() ([]string, bool) {
	if len(m.appendpattern_kinds) == 0 {
		return nil, false
	}
	return m.appendpattern_kinds, true
}

// ClearPatternKinds clears the value of the "pattern_kinds" field.
func (m *CheckRecordMutation) ClearPatternKinds() {
	m.pattern_kinds = nil
	m.appendpattern_kinds = nil
	m.clearedFields[checkrecord.FieldPatternKinds] = struct{}{}
}

// PatternKindsCleared returns if the "pattern_kinds" field was cleared in this mutation.
func (m *CheckRecordMutation) PatternKindsCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldPatternKinds]
	return ok
}

// ResetPatternKinds resets all changes to the "pattern_kinds" field.
func (m *CheckRecordMutation) ResetPatternKinds() {
	m.pattern_kinds = nil
	m.appendpattern_kinds = nil
	delete(m.clearedFields, checkrecord.FieldPatternKinds)
}

// SetViolationKinds sets the "violation_kinds" field.
func (m *CheckRecordMutation) SetViolationKinds(s []string) {
	m.violation_kinds = &s
	m.appendviolation_kinds = nil
}

// ViolationKinds returns the value of the "violation_kinds" field in the mutation.
func (m *CheckRecordMutation) ViolationKinds() (r []string, exists bool) {
	v := m.violation_kinds
	if v == nil {
		return
	}
	return *v, true
}

// OldViolationKinds returns the old "violation_kinds" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldViolationKinds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViolationKinds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViolationKinds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViolationKinds: %w", err)
	}
	return oldValue.ViolationKinds, nil
}

// AppendViolationKinds adds s to the "violation_kinds" field.
func (m *CheckRecordMutation) AppendViolationKinds(s []string) {
	m.appendviolation_kinds = append(m.appendviolation_kinds, s...)
}

// AppendedViolationKinds returns the list of values that were appended to the "violation_kinds" field in this mutation.
func (m *CheckRecordMutation) AppendedViolationKinds() ([]string, bool) {
	if len(m.appendviolation_kinds) == 0 {
		return nil, false
	}
	return m.appendviolation_kinds, true
}

// ClearViolationKinds clears the value of the "violation_kinds" field.
func (m *CheckRecordMutation) ClearViolationKinds() {
	m.violation_kinds = nil
	m.appendviolation_kinds = nil
	m.clearedFields[checkrecord.FieldViolationKinds] = struct{}{}
}

// ViolationKindsCleared returns if the "violation_kinds" field was cleared in this mutation.
func (m *CheckRecordMutation) ViolationKindsCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldViolationKinds]
	return ok
}

// ResetViolationKinds resets all changes to the "violation_kinds" field.
func (m *CheckRecordMutation) ResetViolationKinds() {
	m.violation_kinds = nil
	m.appendviolation_kinds = nil
	delete(m.clearedFields, checkrecord.FieldViolationKinds)
}

// SetTechnique sets the "technique" field.
func (m *CheckRecordMutation) SetTechnique(s string) {
	m.technique = &s
}

// Technique returns the value of the "technique" field in the mutation.
func (m *CheckRecordMutation) Technique() (r string, exists bool) {
	v := m.technique
	if v == nil {
		return
	}
	return *v, true
}

// OldTechnique returns the old "technique" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldTechnique(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechnique is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechnique requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechnique: %w", err)
	}
	return oldValue.Technique, nil
}

// ClearTechnique clears the value of the "technique" field.
func (m *CheckRecordMutation) ClearTechnique() {
	m.technique = nil
	m.clearedFields[checkrecord.FieldTechnique] = struct{}{}
}

// TechniqueCleared returns if the "technique" field was cleared in this mutation.
func (m *CheckRecordMutation) TechniqueCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldTechnique]
	return ok
}

// ResetTechnique resets all changes to the "technique" field.
func (m *CheckRecordMutation) ResetTechnique() {
	m.technique = nil
	delete(m.clearedFields, checkrecord.FieldTechnique)
}

// SetDetail sets the "detail" field.
func (m *CheckRecordMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *CheckRecordMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *CheckRecordMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[checkrecord.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *CheckRecordMutation) DetailCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *CheckRecordMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, checkrecord.FieldDetail)
}

// SetPrompt sets the "prompt" field.
func (m *CheckRecordMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *CheckRecordMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the CheckRecord entity.
// If the CheckRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRecordMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *CheckRecordMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[checkrecord.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *CheckRecordMutation) PromptCleared() bool {
	_, ok := m.clearedFields[checkrecord.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *CheckRecordMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, checkrecord.FieldPrompt)
}

// Where appends a list predicates to the CheckRecordMutation builder.
func (m *CheckRecordMutation) Where(ps ...predicate.CheckRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CheckRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CheckRecord).
func (m *CheckRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckRecordMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.check_id != nil {
		fields = append(fields, checkrecord.FieldCheckID)
	}
	if m.timestamp != nil {
		fields = append(fields, checkrecord.FieldTimestamp)
	}
	if m.duration_ms != nil {
		fields = append(fields, checkrecord.FieldDurationMs)
	}
	if m.direction != nil {
		fields = append(fields, checkrecord.FieldDirection)
	}
	if m.passed != nil {
		fields = append(fields, checkrecord.FieldPassed)
	}
	if m.blocked != nil {
		fields = append(fields, checkrecord.FieldBlocked)
	}
	if m.requires_review != nil {
		fields = append(fields, checkrecord.FieldRequiresReview)
	}
	if m.risk_score != nil {
		fields = append(fields, checkrecord.FieldRiskScore)
	}
	if m.risk_band != nil {
		fields = append(fields, checkrecord.FieldRiskBand)
	}
	if m.block_reason != nil {
		fields = append(fields, checkrecord.FieldBlockReason)
	}
	if m.sender != nil {
		fields = append(fields, checkrecord.FieldSender)
	}
	if m.subject != nil {
		fields = append(fields, checkrecord.FieldSubject)
	}
	if m.content_hash != nil {
		fields = append(fields, checkrecord.FieldContentHash)
	}
	if m.pattern_kinds != nil {
		fields = append(fields, checkrecord.FieldPatternKinds)
	}
	if m.violation_kinds != nil {
		fields = append(fields, checkrecord.FieldViolationKinds)
	}
	if m.technique != nil {
		fields = append(fields, checkrecord.FieldTechnique)
	}
	if m.detail != nil {
		fields = append(fields, checkrecord.FieldDetail)
	}
	if m.prompt != nil {
		fields = append(fields, checkrecord.FieldPrompt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkrecord.FieldCheckID:
		return m.CheckID()
	case checkrecord.FieldTimestamp:
		return m.Timestamp()
	case checkrecord.FieldDurationMs:
		return m.DurationMs()
	case checkrecord.FieldDirection:
		return m.Direction()
	case checkrecord.FieldPassed:
		return m.Passed()
	case checkrecord.FieldBlocked:
		return m.Blocked()
	case checkrecord.FieldRequiresReview:
		return m.RequiresReview()
	case checkrecord.FieldRiskScore:
		return m.RiskScore()
	case checkrecord.FieldRiskBand:
		return m.RiskBand()
	case checkrecord.FieldBlockReason:
		return m.BlockReason()
	case checkrecord.FieldSender:
		return m.Sender()
	case checkrecord.FieldSubject:
		return m.Subject()
	case checkrecord.FieldContentHash:
		return m.ContentHash()
	case checkrecord.FieldPatternKinds:
		return m.PatternKinds()
	case checkrecord.FieldViolationKinds:
		return m.ViolationKinds()
	case checkrecord.FieldTechnique:
		return m.Technique()
	case checkrecord.FieldDetail:
		return m.Detail()
	case checkrecord.FieldPrompt:
		return m.Prompt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkrecord.FieldCheckID:
		return m.OldCheckID(ctx)
	case checkrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case checkrecord.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case checkrecord.FieldDirection:
		return m.OldDirection(ctx)
	case checkrecord.FieldPassed:
		return m.OldPassed(ctx)
	case checkrecord.FieldBlocked:
		return m.OldBlocked(ctx)
	case checkrecord.FieldRequiresReview:
		return m.OldRequiresReview(ctx)
	case checkrecord.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case checkrecord.FieldRiskBand:
		return m.OldRiskBand(ctx)
	case checkrecord.FieldBlockReason:
		return m.OldBlockReason(ctx)
	case checkrecord.FieldSender:
		return m.OldSender(ctx)
	case checkrecord.FieldSubject:
		return m.OldSubject(ctx)
	case checkrecord.FieldContentHash:
		return m.OldContentHash(ctx)
	case checkrecord.FieldPatternKinds:
		return m.OldPatternKinds(ctx)
	case checkrecord.FieldViolationKinds:
		return m.OldViolationKinds(ctx)
	case checkrecord.FieldTechnique:
		return m.OldTechnique(ctx)
	case checkrecord.FieldDetail:
		return m.OldDetail(ctx)
	case checkrecord.FieldPrompt:
		return m.OldPrompt(ctx)
	}
	return nil, fmt.Errorf("unknown CheckRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkrecord.FieldCheckID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckID(v)
		return nil
	case checkrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case checkrecord.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case checkrecord.FieldDirection:
		v, ok := value.(checkrecord.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case checkrecord.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case checkrecord.FieldBlocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocked(v)
		return nil
	case checkrecord.FieldRequiresReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresReview(v)
		return nil
	case checkrecord.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case checkrecord.FieldRiskBand:
		v, ok := value.(checkrecord.RiskBand)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskBand(v)
		return nil
	case checkrecord.FieldBlockReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockReason(v)
		return nil
	case checkrecord.FieldSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case checkrecord.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case checkrecord.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case checkrecord.FieldPatternKinds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternKinds(v)
		return nil
	case checkrecord.FieldViolationKinds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViolationKinds(v)
		return nil
	case checkrecord.FieldTechnique:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechnique(v)
		return nil
	case checkrecord.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case checkrecord.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	}
	return fmt.Errorf("unknown CheckRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckRecordMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, checkrecord.FieldDurationMs)
	}
	if m.addrisk_score != nil {
		fields = append(fields, checkrecord.FieldRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkrecord.FieldDurationMs:
		return m.AddedDurationMs()
	case checkrecord.FieldRiskScore:
		return m.AddedRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkrecord.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case checkrecord.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown CheckRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkrecord.FieldDurationMs) {
		fields = append(fields, checkrecord.FieldDurationMs)
	}
	if m.FieldCleared(checkrecord.FieldBlockReason) {
		fields = append(fields, checkrecord.FieldBlockReason)
	}
	if m.FieldCleared(checkrecord.FieldSender) {
		fields = append(fields, checkrecord.FieldSender)
	}
	if m.FieldCleared(checkrecord.FieldSubject) {
		fields = append(fields, checkrecord.FieldSubject)
	}
	if m.FieldCleared(checkrecord.FieldContentHash) {
		fields = append(fields, checkrecord.FieldContentHash)
	}
	if m.FieldCleared(checkrecord.FieldPatternKinds) {
		fields = append(fields, checkrecord.FieldPatternKinds)
	}
	if m.FieldCleared(checkrecord.FieldViolationKinds) {
		fields = append(fields, checkrecord.FieldViolationKinds)
	}
	if m.FieldCleared(checkrecord.FieldTechnique) {
		fields = append(fields, checkrecord.FieldTechnique)
	}
	if m.FieldCleared(checkrecord.FieldDetail) {
		fields = append(fields, checkrecord.FieldDetail)
	}
	if m.FieldCleared(checkrecord.FieldPrompt) {
		fields = append(fields, checkrecord.FieldPrompt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckRecordMutation) ClearField(name string) error {
	switch name {
	case checkrecord.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case checkrecord.FieldBlockReason:
		m.ClearBlockReason()
		return nil
	case checkrecord.FieldSender:
		m.ClearSender()
		return nil
	case checkrecord.FieldSubject:
		m.ClearSubject()
		return nil
	case checkrecord.FieldContentHash:
		m.ClearContentHash()
		return nil
	case checkrecord.FieldPatternKinds:
		m.ClearPatternKinds()
		return nil
	case checkrecord.FieldViolationKinds:
		m.ClearViolationKinds()
		return nil
	case checkrecord.FieldTechnique:
		m.ClearTechnique()
		return nil
	case checkrecord.FieldDetail:
		m.ClearDetail()
		return nil
	case checkrecord.FieldPrompt:
		m.ClearPrompt()
		return nil
	}
	return fmt.Errorf("unknown CheckRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckRecordMutation) ResetField(name string) error {
	switch name {
	case checkrecord.FieldCheckID:
		m.ResetCheckID()
		return nil
	case checkrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case checkrecord.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case checkrecord.FieldDirection:
		m.ResetDirection()
		return nil
	case checkrecord.FieldPassed:
		m.ResetPassed()
		return nil
	case checkrecord.FieldBlocked:
		m.ResetBlocked()
		return nil
	case checkrecord.FieldRequiresReview:
		m.ResetRequiresReview()
		return nil
	case checkrecord.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case checkrecord.FieldRiskBand:
		m.ResetRiskBand()
		return nil
	case checkrecord.FieldBlockReason:
		m.ResetBlockReason()
		return nil
	case checkrecord.FieldSender:
		m.ResetSender()
		return nil
	case checkrecord.FieldSubject:
		m.ResetSubject()
		return nil
	case checkrecord.FieldContentHash:
		m.ResetContentHash()
		return nil
	case checkrecord.FieldPatternKinds:
		m.ResetPatternKinds()
		return nil
	case checkrecord.FieldViolationKinds:
		m.ResetViolationKinds()
		return nil
	case checkrecord.FieldTechnique:
		m.ResetTechnique()
		return nil
	case checkrecord.FieldDetail:
		m.ResetDetail()
		return nil
	case checkrecord.FieldPrompt:
		m.ResetPrompt()
		return nil
	}
	return fmt.Errorf("unknown CheckRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CheckRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CheckRecord edge %s", name)
}
