// Code generated by ent, DO NOT EDIT.

package checkrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the checkrecord type in the database.
	Label = "check_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCheckID holds the string denoting the check_id field in the database.
	FieldCheckID = "check_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldBlocked holds the string denoting the blocked field in the database.
	FieldBlocked = "blocked"
	// FieldRequiresReview holds the string denoting the requires_review field in the database.
	FieldRequiresReview = "requires_review"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldRiskBand holds the string denoting the risk_band field in the database.
	FieldRiskBand = "risk_band"
	// FieldBlockReason holds the string denoting the block_reason field in the database.
	FieldBlockReason = "block_reason"
	// FieldSender holds the string denoting the sender field in the database.
	FieldSender = "sender"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldPatternKinds holds the string denoting the pattern_kinds field in the database.
	FieldPatternKinds = "pattern_kinds"
	// FieldViolationKinds holds the string denoting the violation_kinds field in the database.
	FieldViolationKinds = "violation_kinds"
	// FieldTechnique holds the string denoting the technique field in the database.
	FieldTechnique = "technique"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// Table holds the table name of the checkrecord in the database.
	Table = "check_records"
)

// Columns holds all SQL columns for checkrecord fields.
var Columns = []string{
	FieldID,
	FieldCheckID,
	FieldTimestamp,
	FieldDurationMs,
	FieldDirection,
	FieldPassed,
	FieldBlocked,
	FieldRequiresReview,
	FieldRiskScore,
	FieldRiskBand,
	FieldBlockReason,
	FieldSender,
	FieldSubject,
	FieldContentHash,
	FieldPatternKinds,
	FieldViolationKinds,
	FieldTechnique,
	FieldDetail,
	FieldPrompt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CheckIDValidator is a validator for the "check_id" field. It is called by the builders before save.
	CheckIDValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed bool
	// DefaultBlocked holds the default value on creation for the "blocked" field.
	DefaultBlocked bool
	// DefaultRequiresReview holds the default value on creation for the "requires_review" field.
	DefaultRequiresReview bool
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Direction defines the type for the "direction" enum field.
type Direction string

// Direction values.
const (
	DirectionInbound Direction = "inbound"
	DirectionOutput  Direction = "output"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionInbound, DirectionOutput:
		return nil
	default:
		return fmt.Errorf("checkrecord: invalid enum value for direction field: %q", d)
	}
}

// RiskBand defines the type for the "risk_band" enum field.
type RiskBand string

// RiskBandSafe is the default value of the RiskBand enum.
const DefaultRiskBand = RiskBandSafe

// RiskBand values.
const (
	RiskBandSafe     RiskBand = "safe"
	RiskBandLow      RiskBand = "low"
	RiskBandMedium   RiskBand = "medium"
	RiskBandHigh     RiskBand = "high"
	RiskBandCritical RiskBand = "critical"
)

func (rb RiskBand) String() string {
	return string(rb)
}

// RiskBandValidator is a validator for the "risk_band" field enum values. It is called by the builders before save.
func RiskBandValidator(rb RiskBand) error {
	switch rb {
	case RiskBandSafe, RiskBandLow, RiskBandMedium, RiskBandHigh, RiskBandCritical:
		return nil
	default:
		return fmt.Errorf("checkrecord: invalid enum value for risk_band field: %q", rb)
	}
}

// OrderOption defines the ordering options for the CheckRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCheckID orders the results by the check_id field.
func ByCheckID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByBlocked orders the results by the blocked field.
func ByBlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlocked, opts...).ToFunc()
}

// ByRequiresReview orders the results by the requires_review field.
func ByRequiresReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresReview, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByRiskBand orders the results by the risk_band field.
func ByRiskBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskBand, opts...).ToFunc()
}

// ByBlockReason orders the results by the block_reason field.
func ByBlockReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockReason, opts...).ToFunc()
}

// BySender orders the results by the sender field.
func BySender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSender, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByTechnique orders the results by the technique field.
func ByTechnique(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechnique, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}
