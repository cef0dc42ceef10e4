// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mailgate/mailgate/storage/ent/checkrecord"
)

// CheckRecord is the model entity for the CheckRecord schema.
type CheckRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CheckID holds the value of the "check_id" field.
	CheckID string `json:"check_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction checkrecord.Direction `json:"direction,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Blocked holds the value of the "blocked" field.
	Blocked bool `json:"blocked,omitempty"`
	// RequiresReview holds the value of the "requires_review" field.
	RequiresReview bool `json:"requires_review,omitempty"`
	// RiskScore holds the value of the "risk_score" field.
	RiskScore float64 `json:"risk_score,omitempty"`
	// RiskBand holds the value of the "risk_band" field.
	RiskBand checkrecord.RiskBand `json:"risk_band,omitempty"`
	// BlockReason holds the value of the "block_reason" field.
	BlockReason string `json:"block_reason,omitempty"`
	// Sender holds the value of the "sender" field.
	Sender string `json:"sender,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// PatternKinds holds the value of the "pattern_kinds" field.
	PatternKinds []string `json:"pattern_kinds,omitempty"`
	// ViolationKinds holds the value of the "violation_kinds" field.
	ViolationKinds []string `json:"violation_kinds,omitempty"`
	// Technique holds the value of the "technique" field.
	Technique string `json:"technique,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail map[string]interface{} `json:"detail,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt       string `json:"prompt,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkrecord.FieldPatternKinds, checkrecord.FieldViolationKinds, checkrecord.FieldDetail:
			values[i] = new([]byte)
		case checkrecord.FieldPassed, checkrecord.FieldBlocked, checkrecord.FieldRequiresReview:
			values[i] = new(sql.NullBool)
		case checkrecord.FieldRiskScore:
			values[i] = new(sql.NullFloat64)
		case checkrecord.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case checkrecord.FieldCheckID, checkrecord.FieldDirection, checkrecord.FieldRiskBand, checkrecord.FieldBlockReason, checkrecord.FieldSender, checkrecord.FieldSubject, checkrecord.FieldContentHash, checkrecord.FieldTechnique, checkrecord.FieldPrompt:
			values[i] = new(sql.NullString)
		case checkrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case checkrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckRecord fields.
func (_m *CheckRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case checkrecord.FieldCheckID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field check_id", values[i])
			} else if value.Valid {
				_m.CheckID = value.String
			}
		case checkrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case checkrecord.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		case checkrecord.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = checkrecord.Direction(value.String)
			}
		case checkrecord.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case checkrecord.FieldBlocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field blocked", values[i])
			} else if value.Valid {
				_m.Blocked = value.Bool
			}
		case checkrecord.FieldRequiresReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_review", values[i])
			} else if value.Valid {
				_m.RequiresReview = value.Bool
			}
		case checkrecord.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case checkrecord.FieldRiskBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_band", values[i])
			} else if value.Valid {
				_m.RiskBand = checkrecord.RiskBand(value.String)
			}
		case checkrecord.FieldBlockReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field block_reason", values[i])
			} else if value.Valid {
				_m.BlockReason = value.String
			}
		case checkrecord.FieldSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender", values[i])
			} else if value.Valid {
				_m.Sender = value.String
			}
		case checkrecord.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case checkrecord.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case checkrecord.FieldPatternKinds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_kinds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PatternKinds); err != nil {
					return fmt.Errorf("unmarshal field pattern_kinds: %w", err)
				}
			}
		case checkrecord.FieldViolationKinds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field violation_kinds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ViolationKinds); err != nil {
					return fmt.Errorf("unmarshal field violation_kinds: %w", err)
				}
			}
		case checkrecord.FieldTechnique:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field technique", values[i])
			} else if value.Valid {
				_m.Technique = value.String
			}
		case checkrecord.FieldDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Detail); err != nil {
					return fmt.Errorf("unmarshal field detail: %w", err)
				}
			}
		case checkrecord.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CheckRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CheckRecord.
// Note that you need to call CheckRecord.Unwrap() before calling this method if this CheckRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckRecord) Update() *CheckRecordUpdateOne {
	return NewCheckRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckRecord) Unwrap() *CheckRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CheckRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CheckRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("check_id=")
	builder.WriteString(_m.CheckID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Direction))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("blocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Blocked))
	builder.WriteString(", ")
	builder.WriteString("requires_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresReview))
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("risk_band=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskBand))
	builder.WriteString(", ")
	builder.WriteString("block_reason=")
	builder.WriteString(_m.BlockReason)
	builder.WriteString(", ")
	builder.WriteString("sender=")
	builder.WriteString(_m.Sender)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("pattern_kinds=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatternKinds))
	builder.WriteString(", ")
	builder.WriteString("violation_kinds=")
	builder.WriteString(fmt.Sprintf("%v", _m.ViolationKinds))
	builder.WriteString(", ")
	builder.WriteString("technique=")
	builder.WriteString(_m.Technique)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.Detail))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteByte(')')
	return builder.String()
}

// CheckRecords is a parsable slice of CheckRecord.
type CheckRecords []*CheckRecord
