// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mailgate/mailgate/storage/ent/checkrecord"
)

// CheckRecordCreate is the builder for creating a CheckRecord entity.
type CheckRecordCreate struct {
	config
	mutation *CheckRecordMutation
	hooks    []Hook
}

// SetCheckID sets the "check_id" field.
func (_c *CheckRecordCreate) SetCheckID(v string) *CheckRecordCreate {
	_c.mutation.SetCheckID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CheckRecordCreate) SetTimestamp(v time.Time) *CheckRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableTimestamp(v *time.Time) *CheckRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *CheckRecordCreate) SetDurationMs(v int64) *CheckRecordCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableDurationMs(v *int64) *CheckRecordCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetDirection sets the "direction" field.
func (_c *CheckRecordCreate) SetDirection(v checkrecord.Direction) *CheckRecordCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *CheckRecordCreate) SetPassed(v bool) *CheckRecordCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillablePassed(v *bool) *CheckRecordCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetBlocked sets the "blocked" field.
func (_c *CheckRecordCreate) SetBlocked(v bool) *CheckRecordCreate {
	_c.mutation.SetBlocked(v)
	return _c
}

// SetNillableBlocked sets the "blocked" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableBlocked(v *bool) *CheckRecordCreate {
	if v != nil {
		_c.SetBlocked(*v)
	}
	return _c
}

// SetRequiresReview sets the "requires_review" field.
func (_c *CheckRecordCreate) SetRequiresReview(v bool) *CheckRecordCreate {
	_c.mutation.SetRequiresReview(v)
	return _c
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableRequiresReview(v *bool) *CheckRecordCreate {
	if v != nil {
		_c.SetRequiresReview(*v)
	}
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *CheckRecordCreate) SetRiskScore(v float64) *CheckRecordCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableRiskScore(v *float64) *CheckRecordCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetRiskBand sets the "risk_band" field.
func (_c *CheckRecordCreate) SetRiskBand(v checkrecord.RiskBand) *CheckRecordCreate {
	_c.mutation.SetRiskBand(v)
	return _c
}

// SetNillableRiskBand sets the "risk_band" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableRiskBand(v *checkrecord.RiskBand) *CheckRecordCreate {
	if v != nil {
		_c.SetRiskBand(*v)
	}
	return _c
}

// SetBlockReason sets the "block_reason" field.
func (_c *CheckRecordCreate) SetBlockReason(v string) *CheckRecordCreate {
	_c.mutation.SetBlockReason(v)
	return _c
}

// SetNillableBlockReason sets the "block_reason" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableBlockReason(v *string) *CheckRecordCreate {
	if v != nil {
		_c.SetBlockReason(*v)
	}
	return _c
}

// SetSender sets the "sender" field.
func (_c *CheckRecordCreate) SetSender(v string) *CheckRecordCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableSender(v *string) *CheckRecordCreate {
	if v != nil {
		_c.SetSender(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *CheckRecordCreate) SetSubject(v string) *CheckRecordCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableSubject(v *string) *CheckRecordCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *CheckRecordCreate) SetContentHash(v string) *CheckRecordCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableContentHash(v *string) *CheckRecordCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetPatternKinds sets the "pattern_kinds" field.
func (_c *CheckRecordCreate) SetPatternKinds(v []string) *CheckRecordCreate {
	_c.mutation.SetPatternKinds(v)
	return _c
}

// SetViolationKinds sets the "violation_kinds" field.
func (_c *CheckRecordCreate) SetViolationKinds(v []string) *CheckRecordCreate {
	_c.mutation.SetViolationKinds(v)
	return _c
}

// SetTechnique sets the "technique" field.
func (_c *CheckRecordCreate) SetTechnique(v string) *CheckRecordCreate {
	_c.mutation.SetTechnique(v)
	return _c
}

// SetNillableTechnique sets the "technique" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableTechnique(v *string) *CheckRecordCreate {
	if v != nil {
		_c.SetTechnique(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *CheckRecordCreate) SetDetail(v map[string]interface{}) *CheckRecordCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *CheckRecordCreate) SetPrompt(v string) *CheckRecordCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillablePrompt(v *string) *CheckRecordCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckRecordCreate) SetID(v uuid.UUID) *CheckRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CheckRecordCreate) SetNillableID(v *uuid.UUID) *CheckRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CheckRecordMutation object of the builder.
func (_c *CheckRecordCreate) Mutation() *CheckRecordMutation {
	return _c.mutation
}

// Save creates the CheckRecord in the database.
func (_c *CheckRecordCreate) Save(ctx context.Context) (*CheckRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckRecordCreate) SaveX(ctx context.Context) *CheckRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := checkrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Passed(); !ok {
		v := checkrecord.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.Blocked(); !ok {
		v := checkrecord.DefaultBlocked
		_c.mutation.SetBlocked(v)
	}
	if _, ok := _c.mutation.RequiresReview(); !ok {
		v := checkrecord.DefaultRequiresReview
		_c.mutation.SetRequiresReview(v)
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := checkrecord.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.RiskBand(); !ok {
		v := checkrecord.DefaultRiskBand
		_c.mutation.SetRiskBand(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := checkrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckRecordCreate) check() error {
	if _, ok := _c.mutation.CheckID(); !ok {
		return &ValidationError{Name: "check_id", err: errors.New(`ent: missing required field "CheckRecord.check_id"`)}
	}
	if v, ok := _c.mutation.CheckID(); ok {
		if err := checkrecord.CheckIDValidator(v); err != nil {
			return &ValidationError{Name: "check_id", err: fmt.Errorf(`ent: validator failed for field "CheckRecord.check_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CheckRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "CheckRecord.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := checkrecord.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CheckRecord.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "CheckRecord.passed"`)}
	}
	if _, ok := _c.mutation.Blocked(); !ok {
		return &ValidationError{Name: "blocked", err: errors.New(`ent: missing required field "CheckRecord.blocked"`)}
	}
	if _, ok := _c.mutation.RequiresReview(); !ok {
		return &ValidationError{Name: "requires_review", err: errors.New(`ent: missing required field "CheckRecord.requires_review"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "CheckRecord.risk_score"`)}
	}
	if _, ok := _c.mutation.RiskBand(); !ok {
		return &ValidationError{Name: "risk_band", err: errors.New(`ent: missing required field "CheckRecord.risk_band"`)}
	}
	if v, ok := _c.mutation.RiskBand(); ok {
		if err := checkrecord.RiskBandValidator(v); err != nil {
			return &ValidationError{Name: "risk_band", err: fmt.Errorf(`ent: validator failed for field "CheckRecord.risk_band": %w`, err)}
		}
	}
	return nil
}

func (_c *CheckRecordCreate) sqlSave(ctx context.Context) (*CheckRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckRecordCreate) createSpec() (*CheckRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkrecord.Table, sqlgraph.NewFieldSpec(checkrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CheckID(); ok {
		_spec.SetField(checkrecord.FieldCheckID, field.TypeString, value)
		_node.CheckID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(checkrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(checkrecord.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(checkrecord.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(checkrecord.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Blocked(); ok {
		_spec.SetField(checkrecord.FieldBlocked, field.TypeBool, value)
		_node.Blocked = value
	}
	if value, ok := _c.mutation.RequiresReview(); ok {
		_spec.SetField(checkrecord.FieldRequiresReview, field.TypeBool, value)
		_node.RequiresReview = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(checkrecord.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.RiskBand(); ok {
		_spec.SetField(checkrecord.FieldRiskBand, field.TypeEnum, value)
		_node.RiskBand = value
	}
	if value, ok := _c.mutation.BlockReason(); ok {
		_spec.SetField(checkrecord.FieldBlockReason, field.TypeString, value)
		_node.BlockReason = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(checkrecord.FieldSender, field.TypeString, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(checkrecord.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(checkrecord.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.PatternKinds(); ok {
		_spec.SetField(checkrecord.FieldPatternKinds, field.TypeJSON, value)
		_node.PatternKinds = value
	}
	if value, ok := _c.mutation.ViolationKinds(); ok {
		_spec.SetField(checkrecord.FieldViolationKinds, field.TypeJSON, value)
		_node.ViolationKinds = value
	}
	if value, ok := _c.mutation.Technique(); ok {
		_spec.SetField(checkrecord.FieldTechnique, field.TypeString, value)
		_node.Technique = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(checkrecord.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(checkrecord.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	return _node, _spec
}

// CheckRecordCreateBulk is the builder for creating many CheckRecord entities in bulk.
type CheckRecordCreateBulk struct {
	config
	err      error
	builders []*CheckRecordCreate
}

// Save creates the CheckRecord entities in the database.
func (_c *CheckRecordCreateBulk) Save(ctx context.Context) ([]*CheckRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CheckRecordCreateBulk) SaveX(ctx context.Context) []*CheckRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
