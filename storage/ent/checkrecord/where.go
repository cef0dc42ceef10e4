// Code generated by ent, DO NOT EDIT.

package checkrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mailgate/mailgate/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldID, id))
}

// CheckID applies equality check predicate on the "check_id" field. It's identical to CheckIDEQ.
func CheckID(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldCheckID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldTimestamp, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldDurationMs, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldPassed, v))
}

// Blocked applies equality check predicate on the "blocked" field. It's identical to BlockedEQ.
func Blocked(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldBlocked, v))
}

// RequiresReview applies equality check predicate on the "requires_review" field. It's identical to RequiresReviewEQ.
func RequiresReview(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldRequiresReview, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldRiskScore, v))
}

// BlockReason applies equality check predicate on the "block_reason" field. It's identical to BlockReasonEQ.
func BlockReason(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldBlockReason, v))
}

// Sender applies equality check predicate on the "sender" field. It's identical to SenderEQ.
func Sender(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldSender, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldSubject, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldContentHash, v))
}

// Technique applies equality check predicate on the "technique" field. It's identical to TechniqueEQ.
func Technique(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldTechnique, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldPrompt, v))
}

// CheckIDEQ applies the EQ predicate on the "check_id" field.
func CheckIDEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldCheckID, v))
}

// CheckIDNEQ applies the NEQ predicate on the "check_id" field.
func CheckIDNEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldCheckID, v))
}

// CheckIDIn applies the In predicate on the "check_id" field.
func CheckIDIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldCheckID, vs...))
}

// CheckIDNotIn applies the NotIn predicate on the "check_id" field.
func CheckIDNotIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldCheckID, vs...))
}

// CheckIDGT applies the GT predicate on the "check_id" field.
func CheckIDGT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldCheckID, v))
}

// CheckIDGTE applies the GTE predicate on the "check_id" field.
func CheckIDGTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldCheckID, v))
}

// CheckIDLT applies the LT predicate on the "check_id" field.
func CheckIDLT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldCheckID, v))
}

// CheckIDLTE applies the LTE predicate on the "check_id" field.
func CheckIDLTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldCheckID, v))
}

// CheckIDContains applies the Contains predicate on the "check_id" field.
func CheckIDContains(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContains(FieldCheckID, v))
}

// CheckIDHasPrefix applies the HasPrefix predicate on the "check_id" field.
func CheckIDHasPrefix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasPrefix(FieldCheckID, v))
}

// CheckIDHasSuffix applies the HasSuffix predicate on the "check_id" field.
func CheckIDHasSuffix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasSuffix(FieldCheckID, v))
}

// CheckIDEqualFold applies the EqualFold predicate on the "check_id" field.
func CheckIDEqualFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEqualFold(FieldCheckID, v))
}

// CheckIDContainsFold applies the ContainsFold predicate on the "check_id" field.
func CheckIDContainsFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContainsFold(FieldCheckID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldTimestamp, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldDurationMs))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldDirection, vs...))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldPassed, v))
}

// BlockedEQ applies the EQ predicate on the "blocked" field.
func BlockedEQ(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldBlocked, v))
}

// BlockedNEQ applies the NEQ predicate on the "blocked" field.
func BlockedNEQ(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldBlocked, v))
}

// RequiresReviewEQ applies the EQ predicate on the "requires_review" field.
func RequiresReviewEQ(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldRequiresReview, v))
}

// RequiresReviewNEQ applies the NEQ predicate on the "requires_review" field.
func RequiresReviewNEQ(v bool) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldRequiresReview, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldRiskScore, v))
}

// RiskBandEQ applies the EQ predicate on the "risk_band" field.
func RiskBandEQ(v RiskBand) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldRiskBand, v))
}

// RiskBandNEQ applies the NEQ predicate on the "risk_band" field.
func RiskBandNEQ(v RiskBand) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldRiskBand, v))
}

// RiskBandIn applies the In predicate on the "risk_band" field.
func RiskBandIn(vs ...RiskBand) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldRiskBand, vs...))
}

// RiskBandNotIn applies the NotIn predicate on the "risk_band" field.
func RiskBandNotIn(vs ...RiskBand) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldRiskBand, vs...))
}

// BlockReasonEQ applies the EQ predicate on the "block_reason" field.
func BlockReasonEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldBlockReason, v))
}

// BlockReasonNEQ applies the NEQ predicate on the "block_reason" field.
func BlockReasonNEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldBlockReason, v))
}

// BlockReasonIn applies the In predicate on the "block_reason" field.
func BlockReasonIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldBlockReason, vs...))
}

// BlockReasonNotIn applies the NotIn predicate on the "block_reason" field.
func BlockReasonNotIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldBlockReason, vs...))
}

// BlockReasonGT applies the GT predicate on the "block_reason" field.
func BlockReasonGT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldBlockReason, v))
}

// BlockReasonGTE applies the GTE predicate on the "block_reason" field.
func BlockReasonGTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldBlockReason, v))
}

// BlockReasonLT applies the LT predicate on the "block_reason" field.
func BlockReasonLT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldBlockReason, v))
}

// BlockReasonLTE applies the LTE predicate on the "block_reason" field.
func BlockReasonLTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldBlockReason, v))
}

// BlockReasonContains applies the Contains predicate on the "block_reason" field.
func BlockReasonContains(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContains(FieldBlockReason, v))
}

// BlockReasonHasPrefix applies the HasPrefix predicate on the "block_reason" field.
func BlockReasonHasPrefix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasPrefix(FieldBlockReason, v))
}

// BlockReasonHasSuffix applies the HasSuffix predicate on the "block_reason" field.
func BlockReasonHasSuffix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasSuffix(FieldBlockReason, v))
}

// BlockReasonIsNil applies the IsNil predicate on the "block_reason" field.
func BlockReasonIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldBlockReason))
}

// BlockReasonNotNil applies the NotNil predicate on the "block_reason" field.
func BlockReasonNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldBlockReason))
}

// BlockReasonEqualFold applies the EqualFold predicate on the "block_reason" field.
func BlockReasonEqualFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEqualFold(FieldBlockReason, v))
}

// BlockReasonContainsFold applies the ContainsFold predicate on the "block_reason" field.
func BlockReasonContainsFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContainsFold(FieldBlockReason, v))
}

// SenderEQ applies the EQ predicate on the "sender" field.
func SenderEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldSender, v))
}

// SenderNEQ applies the NEQ predicate on the "sender" field.
func SenderNEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldSender, v))
}

// SenderIn applies the In predicate on the "sender" field.
func SenderIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldSender, vs...))
}

// SenderNotIn applies the NotIn predicate on the "sender" field.
func SenderNotIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldSender, vs...))
}

// SenderGT applies the GT predicate on the "sender" field.
func SenderGT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldSender, v))
}

// SenderGTE applies the GTE predicate on the "sender" field.
func SenderGTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldSender, v))
}

// SenderLT applies the LT predicate on the "sender" field.
func SenderLT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldSender, v))
}

// SenderLTE applies the LTE predicate on the "sender" field.
func SenderLTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldSender, v))
}

// SenderContains applies the Contains predicate on the "sender" field.
func SenderContains(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContains(FieldSender, v))
}

// SenderHasPrefix applies the HasPrefix predicate on the "sender" field.
func SenderHasPrefix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasPrefix(FieldSender, v))
}

// SenderHasSuffix applies the HasSuffix predicate on the "sender" field.
func SenderHasSuffix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasSuffix(FieldSender, v))
}

// SenderIsNil applies the IsNil predicate on the "sender" field.
func SenderIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldSender))
}

// SenderNotNil applies the NotNil predicate on the "sender" field.
func SenderNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldSender))
}

// SenderEqualFold applies the EqualFold predicate on the "sender" field.
func SenderEqualFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEqualFold(FieldSender, v))
}

// SenderContainsFold applies the ContainsFold predicate on the "sender" field.
func SenderContainsFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContainsFold(FieldSender, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContainsFold(FieldSubject, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContainsFold(FieldContentHash, v))
}

// PatternKindsIsNil applies the IsNil predicate on the "pattern_kinds" field.
func PatternKindsIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldPatternKinds))
}

// PatternKindsNotNil applies the NotNil predicate on the "pattern_kinds" field.
func PatternKindsNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldPatternKinds))
}

// ViolationKindsIsNil applies the IsNil predicate on the "violation_kinds" field.
func ViolationKindsIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldViolationKinds))
}

// ViolationKindsNotNil applies the NotNil predicate on the "violation_kinds" field.
func ViolationKindsNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldViolationKinds))
}

// TechniqueEQ applies the EQ predicate on the "technique" field.
func TechniqueEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldTechnique, v))
}

// TechniqueNEQ applies the NEQ predicate on the "technique" field.
func TechniqueNEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldTechnique, v))
}

// TechniqueIn applies the In predicate on the "technique" field.
func TechniqueIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldTechnique, vs...))
}

// TechniqueNotIn applies the NotIn predicate on the "technique" field.
func TechniqueNotIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldTechnique, vs...))
}

// TechniqueGT applies the GT predicate on the "technique" field.
func TechniqueGT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldTechnique, v))
}

// TechniqueGTE applies the GTE predicate on the "technique" field.
func TechniqueGTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldTechnique, v))
}

// TechniqueLT applies the LT predicate on the "technique" field.
func TechniqueLT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldTechnique, v))
}

// TechniqueLTE applies the LTE predicate on the "technique" field.
func TechniqueLTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldTechnique, v))
}

// TechniqueContains applies the Contains predicate on the "technique" field.
func TechniqueContains(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContains(FieldTechnique, v))
}

// TechniqueHasPrefix applies the HasPrefix predicate on the "technique" field.
func TechniqueHasPrefix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasPrefix(FieldTechnique, v))
}

// TechniqueHasSuffix applies the HasSuffix predicate on the "technique" field.
func TechniqueHasSuffix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasSuffix(FieldTechnique, v))
}

// TechniqueIsNil applies the IsNil predicate on the "technique" field.
func TechniqueIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldTechnique))
}

// TechniqueNotNil applies the NotNil predicate on the "technique" field.
func TechniqueNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldTechnique))
}

// TechniqueEqualFold applies the EqualFold predicate on the "technique" field.
func TechniqueEqualFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEqualFold(FieldTechnique, v))
}

// TechniqueContainsFold applies the ContainsFold predicate on the "technique" field.
func TechniqueContainsFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContainsFold(FieldTechnique, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldDetail))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptIsNil applies the IsNil predicate on the "prompt" field.
func PromptIsNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldIsNull(FieldPrompt))
}

// PromptNotNil applies the NotNil predicate on the "prompt" field.
func PromptNotNil() predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldNotNull(FieldPrompt))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.CheckRecord {
	return predicate.CheckRecord(sql.FieldContainsFold(FieldPrompt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckRecord) predicate.CheckRecord {
	return predicate.CheckRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckRecord) predicate.CheckRecord {
	return predicate.CheckRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckRecord) predicate.CheckRecord {
	return predicate.CheckRecord(sql.NotPredicates(p))
}
