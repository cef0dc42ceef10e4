// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mailgate/mailgate/storage/ent/checkrecord"
	"github.com/mailgate/mailgate/storage/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkrecordFields := schema.CheckRecord{}.Fields()
	_ = checkrecordFields
	// checkrecordDescCheckID is the schema descriptor for check_id field.
	checkrecordDescCheckID := checkrecordFields[1].Descriptor()
	// checkrecord.CheckIDValidator is a validator for the "check_id" field. It is called by the builders before save.
	checkrecord.CheckIDValidator = checkrecordDescCheckID.Validators[0].(func(string) error)
	// checkrecordDescTimestamp is the schema descriptor for timestamp field.
	checkrecordDescTimestamp := checkrecordFields[2].Descriptor()
	// checkrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkrecord.DefaultTimestamp = checkrecordDescTimestamp.Default.(func() time.Time)
	// checkrecordDescPassed is the schema descriptor for passed field.
	checkrecordDescPassed := checkrecordFields[5].Descriptor()
	// checkrecord.DefaultPassed holds the default value on creation for the passed field.
	checkrecord.DefaultPassed = checkrecordDescPassed.Default.(bool)
	// checkrecordDescBlocked is the schema descriptor for blocked field.
	checkrecordDescBlocked := checkrecordFields[6].Descriptor()
	// checkrecord.DefaultBlocked holds the default value on creation for the blocked field.
	checkrecord.DefaultBlocked = checkrecordDescBlocked.Default.(bool)
	// checkrecordDescRequiresReview is the schema descriptor for requires_review field.
	checkrecordDescRequiresReview := checkrecordFields[7].Descriptor()
	// checkrecord.DefaultRequiresReview holds the default value on creation for the requires_review field.
	checkrecord.DefaultRequiresReview = checkrecordDescRequiresReview.Default.(bool)
	// checkrecordDescRiskScore is the schema descriptor for risk_score field.
	checkrecordDescRiskScore := checkrecordFields[8].Descriptor()
	// checkrecord.DefaultRiskScore holds the default value on creation for the risk_score field.
	checkrecord.DefaultRiskScore = checkrecordDescRiskScore.Default.(float64)
	// checkrecordDescID is the schema descriptor for id field.
	checkrecordDescID := checkrecordFields[0].Descriptor()
	// checkrecord.DefaultID holds the default value on creation for the id field.
	checkrecord.DefaultID = checkrecordDescID.Default.(func() uuid.UUID)
}
