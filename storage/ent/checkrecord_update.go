// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mailgate/mailgate/storage/ent/checkrecord"
	"github.com/mailgate/mailgate/storage/ent/predicate"
)

// CheckRecordUpdate is the builder for updating CheckRecord entities.
type CheckRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CheckRecordMutation
}

// Where appends a list predicates to the CheckRecordUpdate builder.
func (_u *CheckRecordUpdate) Where(ps ...predicate.CheckRecord) *CheckRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *CheckRecordUpdate) SetDurationMs(v int64) *CheckRecordUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableDurationMs(v *int64) *CheckRecordUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *CheckRecordUpdate) AddDurationMs(v int64) *CheckRecordUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *CheckRecordUpdate) ClearDurationMs() *CheckRecordUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CheckRecordUpdate) SetDirection(v checkrecord.Direction) *CheckRecordUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableDirection(v *checkrecord.Direction) *CheckRecordUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *CheckRecordUpdate) SetPassed(v bool) *CheckRecordUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillablePassed(v *bool) *CheckRecordUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetBlocked sets the "blocked" field.
func (_u *CheckRecordUpdate) SetBlocked(v bool) *CheckRecordUpdate {
	_u.mutation.SetBlocked(v)
	return _u
}

// SetNillableBlocked sets the "blocked" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableBlocked(v *bool) *CheckRecordUpdate {
	if v != nil {
		_u.SetBlocked(*v)
	}
	return _u
}

// SetRequiresReview sets the "requires_review" field.
func (_u *CheckRecordUpdate) SetRequiresReview(v bool) *CheckRecordUpdate {
	_u.mutation.SetRequiresReview(v)
	return _u
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableRequiresReview(v *bool) *CheckRecordUpdate {
	if v != nil {
		_u.SetRequiresReview(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *CheckRecordUpdate) SetRiskScore(v float64) *CheckRecordUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableRiskScore(v *float64) *CheckRecordUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *CheckRecordUpdate) AddRiskScore(v float64) *CheckRecordUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskBand sets the "risk_band" field.
func (_u *CheckRecordUpdate) SetRiskBand(v checkrecord.RiskBand) *CheckRecordUpdate {
	_u.mutation.SetRiskBand(v)
	return _u
}

// SetNillableRiskBand sets the "risk_band" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableRiskBand(v *checkrecord.RiskBand) *CheckRecordUpdate {
	if v != nil {
		_u.SetRiskBand(*v)
	}
	return _u
}

// SetBlockReason sets the "block_reason" field.
func (_u *CheckRecordUpdate) SetBlockReason(v string) *CheckRecordUpdate {
	_u.mutation.SetBlockReason(v)
	return _u
}

// SetNillableBlockReason sets the "block_reason" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableBlockReason(v *string) *CheckRecordUpdate {
	if v != nil {
		_u.SetBlockReason(*v)
	}
	return _u
}

// ClearBlockReason clears the value of the "block_reason" field.
func (_u *CheckRecordUpdate) ClearBlockReason() *CheckRecordUpdate {
	_u.mutation.ClearBlockReason()
	return _u
}

// SetSender sets the "sender" field.
func (_u *CheckRecordUpdate) SetSender(v string) *CheckRecordUpdate {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableSender(v *string) *CheckRecordUpdate {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// ClearSender clears the value of the "sender" field.
func (_u *CheckRecordUpdate) ClearSender() *CheckRecordUpdate {
	_u.mutation.ClearSender()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CheckRecordUpdate) SetSubject(v string) *CheckRecordUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableSubject(v *string) *CheckRecordUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *CheckRecordUpdate) ClearSubject() *CheckRecordUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *CheckRecordUpdate) SetContentHash(v string) *CheckRecordUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableContentHash(v *string) *CheckRecordUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *CheckRecordUpdate) ClearContentHash() *CheckRecordUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetPatternKinds sets the "pattern_kinds" field.
func (_u *CheckRecordUpdate) SetPatternKinds(v []string) *CheckRecordUpdate {
	_u.mutation.SetPatternKinds(v)
	return _u
}

// AppendPatternKinds appends value to the "pattern_kinds" field.
func (_u *CheckRecordUpdate) AppendPatternKinds(v []string) *CheckRecordUpdate {
	_u.mutation.AppendPatternKinds(v)
	return _u
}

// ClearPatternKinds clears the value of the "pattern_kinds" field.
func (_u *CheckRecordUpdate) ClearPatternKinds() *CheckRecordUpdate {
	_u.mutation.ClearPatternKinds()
	return _u
}

// SetViolationKinds sets the "violation_kinds" field.
func (_u *CheckRecordUpdate) SetViolationKinds(v []string) *CheckRecordUpdate {
	_u.mutation.SetViolationKinds(v)
	return _u
}

// AppendViolationKinds appends value to the "violation_kinds" field.
func (_u *CheckRecordUpdate) AppendViolationKinds(v []string) *CheckRecordUpdate {
	_u.mutation.AppendViolationKinds(v)
	return _u
}

// ClearViolationKinds clears the value of the "violation_kinds" field.
func (_u *CheckRecordUpdate) ClearViolationKinds() *CheckRecordUpdate {
	_u.mutation.ClearViolationKinds()
	return _u
}

// SetTechnique sets the "technique" field.
func (_u *CheckRecordUpdate) SetTechnique(v string) *CheckRecordUpdate {
	_u.mutation.SetTechnique(v)
	return _u
}

// SetNillableTechnique sets the "technique" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillableTechnique(v *string) *CheckRecordUpdate {
	if v != nil {
		_u.SetTechnique(*v)
	}
	return _u
}

// ClearTechnique clears the value of the "technique" field.
func (_u *CheckRecordUpdate) ClearTechnique() *CheckRecordUpdate {
	_u.mutation.ClearTechnique()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CheckRecordUpdate) SetDetail(v map[string]interface{}) *CheckRecordUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CheckRecordUpdate) ClearDetail() *CheckRecordUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CheckRecordUpdate) SetPrompt(v string) *CheckRecordUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CheckRecordUpdate) SetNillablePrompt(v *string) *CheckRecordUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *CheckRecordUpdate) ClearPrompt() *CheckRecordUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// Mutation returns the CheckRecordMutation object of the builder.
func (_u *CheckRecordUpdate) Mutation() *CheckRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckRecordUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := checkrecord.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CheckRecord.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskBand(); ok {
		if err := checkrecord.RiskBandValidator(v); err != nil {
			return &ValidationError{Name: "risk_band", err: fmt.Errorf(`ent: validator failed for field "CheckRecord.risk_band": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkrecord.Table, checkrecord.Columns, sqlgraph.NewFieldSpec(checkrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(checkrecord.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(checkrecord.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(checkrecord.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(checkrecord.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(checkrecord.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Blocked(); ok {
		_spec.SetField(checkrecord.FieldBlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiresReview(); ok {
		_spec.SetField(checkrecord.FieldRequiresReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(checkrecord.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(checkrecord.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskBand(); ok {
		_spec.SetField(checkrecord.FieldRiskBand, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BlockReason(); ok {
		_spec.SetField(checkrecord.FieldBlockReason, field.TypeString, value)
	}
	if _u.mutation.BlockReasonCleared() {
		_spec.ClearField(checkrecord.FieldBlockReason, field.TypeString)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(checkrecord.FieldSender, field.TypeString, value)
	}
	if _u.mutation.SenderCleared() {
		_spec.ClearField(checkrecord.FieldSender, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(checkrecord.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(checkrecord.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(checkrecord.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(checkrecord.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.PatternKinds(); ok {
		_spec.SetField(checkrecord.FieldPatternKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPatternKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkrecord.FieldPatternKinds, value)
		})
	}
	if _u.mutation.PatternKindsCleared() {
		_spec.ClearField(checkrecord.FieldPatternKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ViolationKinds(); ok {
		_spec.SetField(checkrecord.FieldViolationKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedViolationKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkrecord.FieldViolationKinds, value)
		})
	}
	if _u.mutation.ViolationKindsCleared() {
		_spec.ClearField(checkrecord.FieldViolationKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Technique(); ok {
		_spec.SetField(checkrecord.FieldTechnique, field.TypeString, value)
	}
	if _u.mutation.TechniqueCleared() {
		_spec.ClearField(checkrecord.FieldTechnique, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(checkrecord.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(checkrecord.FieldDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(checkrecord.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(checkrecord.FieldPrompt, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckRecordUpdateOne is the builder for updating a single CheckRecord entity.
type CheckRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckRecordMutation
}

// SetDurationMs sets the "duration_ms" field.
func (_u *CheckRecordUpdateOne) SetDurationMs(v int64) *CheckRecordUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableDurationMs(v *int64) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *CheckRecordUpdateOne) AddDurationMs(v int64) *CheckRecordUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *CheckRecordUpdateOne) ClearDurationMs() *CheckRecordUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CheckRecordUpdateOne) SetDirection(v checkrecord.Direction) *CheckRecordUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableDirection(v *checkrecord.Direction) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *CheckRecordUpdateOne) SetPassed(v bool) *CheckRecordUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillablePassed(v *bool) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetBlocked sets the "blocked" field.
func (_u *CheckRecordUpdateOne) SetBlocked(v bool) *CheckRecordUpdateOne {
	_u.mutation.SetBlocked(v)
	return _u
}

// SetNillableBlocked sets the "blocked" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableBlocked(v *bool) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetBlocked(*v)
	}
	return _u
}

// SetRequiresReview sets the "requires_review" field.
func (_u *CheckRecordUpdateOne) SetRequiresReview(v bool) *CheckRecordUpdateOne {
	_u.mutation.SetRequiresReview(v)
	return _u
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableRequiresReview(v *bool) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetRequiresReview(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *CheckRecordUpdateOne) SetRiskScore(v float64) *CheckRecordUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableRiskScore(v *float64) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *CheckRecordUpdateOne) AddRiskScore(v float64) *CheckRecordUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskBand sets the "risk_band" field.
func (_u *CheckRecordUpdateOne) SetRiskBand(v checkrecord.RiskBand) *CheckRecordUpdateOne {
	_u.mutation.SetRiskBand(v)
	return _u
}

// SetNillableRiskBand sets the "risk_band" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableRiskBand(v *checkrecord.RiskBand) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetRiskBand(*v)
	}
	return _u
}

// SetBlockReason sets the "block_reason" field.
func (_u *CheckRecordUpdateOne) SetBlockReason(v string) *CheckRecordUpdateOne {
	_u.mutation.SetBlockReason(v)
	return _u
}

// SetNillableBlockReason sets the "block_reason" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableBlockReason(v *string) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetBlockReason(*v)
	}
	return _u
}

// ClearBlockReason clears the value of the "block_reason" field.
func (_u *CheckRecordUpdateOne) ClearBlockReason() *CheckRecordUpdateOne {
	_u.mutation.ClearBlockReason()
	return _u
}

// SetSender sets the "sender" field.
func (_u *CheckRecordUpdateOne) SetSender(v string) *CheckRecordUpdateOne {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableSender(v *string) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// ClearSender clears the value of the "sender" field.
func (_u *CheckRecordUpdateOne) ClearSender() *CheckRecordUpdateOne {
	_u.mutation.ClearSender()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CheckRecordUpdateOne) SetSubject(v string) *CheckRecordUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableSubject(v *string) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *CheckRecordUpdateOne) ClearSubject() *CheckRecordUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *CheckRecordUpdateOne) SetContentHash(v string) *CheckRecordUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableContentHash(v *string) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *CheckRecordUpdateOne) ClearContentHash() *CheckRecordUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetPatternKinds sets the "pattern_kinds" field.
func (_u *CheckRecordUpdateOne) SetPatternKinds(v []string) *CheckRecordUpdateOne {
	_u.mutation.SetPatternKinds(v)
	return _u
}

// AppendPatternKinds appends value to the "pattern_kinds" field.
func (_u *CheckRecordUpdateOne) AppendPatternKinds(v []string) *CheckRecordUpdateOne {
	_u.mutation.AppendPatternKinds(v)
	return _u
}

// ClearPatternKinds clears the value of the "pattern_kinds" field.
func (_u *CheckRecordUpdateOne) ClearPatternKinds() *CheckRecordUpdateOne {
	_u.mutation.ClearPatternKinds()
	return _u
}

// SetViolationKinds sets the "violation_kinds" field.
func (_u *CheckRecordUpdateOne) SetViolationKinds(v []string) *CheckRecordUpdateOne {
	_u.mutation.SetViolationKinds(v)
	return _u
}

// AppendViolationKinds appends value to the "violation_kinds" field.
func (_u *CheckRecordUpdateOne) AppendViolationKinds(v []string) *CheckRecordUpdateOne {
	_u.mutation.AppendViolationKinds(v)
	return _u
}

// ClearViolationKinds clears the value of the "violation_kinds" field.
func (_u *CheckRecordUpdateOne) ClearViolationKinds() *CheckRecordUpdateOne {
	_u.mutation.ClearViolationKinds()
	return _u
}

// SetTechnique sets the "technique" field.
func (_u *CheckRecordUpdateOne) SetTechnique(v string) *CheckRecordUpdateOne {
	_u.mutation.SetTechnique(v)
	return _u
}

// SetNillableTechnique sets the "technique" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillableTechnique(v *string) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetTechnique(*v)
	}
	return _u
}

// ClearTechnique clears the value of the "technique" field.
func (_u *CheckRecordUpdateOne) ClearTechnique() *CheckRecordUpdateOne {
	_u.mutation.ClearTechnique()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CheckRecordUpdateOne) SetDetail(v map[string]interface{}) *CheckRecordUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CheckRecordUpdateOne) ClearDetail() *CheckRecordUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CheckRecordUpdateOne) SetPrompt(v string) *CheckRecordUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CheckRecordUpdateOne) SetNillablePrompt(v *string) *CheckRecordUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *CheckRecordUpdateOne) ClearPrompt() *CheckRecordUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// Mutation returns the CheckRecordMutation object of the builder.
func (_u *CheckRecordUpdateOne) Mutation() *CheckRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckRecordUpdate builder.
func (_u *CheckRecordUpdateOne) Where(ps ...predicate.CheckRecord) *CheckRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckRecordUpdateOne) Select(field string, fields ...string) *CheckRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckRecord entity.
func (_u *CheckRecordUpdateOne) Save(ctx context.Context) (*CheckRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckRecordUpdateOne) SaveX(ctx context.Context) *CheckRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := checkrecord.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CheckRecord.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskBand(); ok {
		if err := checkrecord.RiskBandValidator(v); err != nil {
			return &ValidationError{Name: "risk_band", err: fmt.Errorf(`ent: validator failed for field "CheckRecord.risk_band": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckRecordUpdateOne) sqlSave(ctx context.Context) (_node *CheckRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkrecord.Table, checkrecord.Columns, sqlgraph.NewFieldSpec(checkrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkrecord.FieldID)
		for _, f := range fields {
			if !checkrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(checkrecord.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(checkrecord.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(checkrecord.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(checkrecord.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(checkrecord.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Blocked(); ok {
		_spec.SetField(checkrecord.FieldBlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiresReview(); ok {
		_spec.SetField(checkrecord.FieldRequiresReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(checkrecord.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(checkrecord.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskBand(); ok {
		_spec.SetField(checkrecord.FieldRiskBand, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BlockReason(); ok {
		_spec.SetField(checkrecord.FieldBlockReason, field.TypeString, value)
	}
	if _u.mutation.BlockReasonCleared() {
		_spec.ClearField(checkrecord.FieldBlockReason, field.TypeString)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(checkrecord.FieldSender, field.TypeString, value)
	}
	if _u.mutation.SenderCleared() {
		_spec.ClearField(checkrecord.FieldSender, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(checkrecord.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(checkrecord.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(checkrecord.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(checkrecord.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.PatternKinds(); ok {
		_spec.SetField(checkrecord.FieldPatternKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPatternKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkrecord.FieldPatternKinds, value)
		})
	}
	if _u.mutation.PatternKindsCleared() {
		_spec.ClearField(checkrecord.FieldPatternKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ViolationKinds(); ok {
		_spec.SetField(checkrecord.FieldViolationKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedViolationKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkrecord.FieldViolationKinds, value)
		})
	}
	if _u.mutation.ViolationKindsCleared() {
		_spec.ClearField(checkrecord.FieldViolationKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Technique(); ok {
		_spec.SetField(checkrecord.FieldTechnique, field.TypeString, value)
	}
	if _u.mutation.TechniqueCleared() {
		_spec.ClearField(checkrecord.FieldTechnique, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(checkrecord.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(checkrecord.FieldDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(checkrecord.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(checkrecord.FieldPrompt, field.TypeString)
	}
	_node = &CheckRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
