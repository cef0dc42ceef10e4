// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckRecordsColumns holds the columns for the "check_records" table.
	CheckRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "check_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "output"}},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "blocked", Type: field.TypeBool, Default: false},
		{Name: "requires_review", Type: field.TypeBool, Default: false},
		{Name: "risk_score", Type: field.TypeFloat64, Default: 0},
		{Name: "risk_band", Type: field.TypeEnum, Enums: []string{"safe", "low", "medium", "high", "critical"}, Default: "safe"},
		{Name: "block_reason", Type: field.TypeString, Nullable: true},
		{Name: "sender", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "pattern_kinds", Type: field.TypeJSON, Nullable: true},
		{Name: "violation_kinds", Type: field.TypeJSON, Nullable: true},
		{Name: "technique", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"sqlite3": "text"}},
	}
	// CheckRecordsTable holds the schema information for the "check_records" table.
	CheckRecordsTable = &schema.Table{
		Name:       "check_records",
		Columns:    CheckRecordsColumns,
		PrimaryKey: []*schema.Column{CheckRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckRecordsColumns[2]},
			},
			{
				Name:    "checkrecord_check_id",
				Unique:  false,
				Columns: []*schema.Column{CheckRecordsColumns[1]},
			},
			{
				Name:    "checkrecord_direction",
				Unique:  false,
				Columns: []*schema.Column{CheckRecordsColumns[4]},
			},
			{
				Name:    "checkrecord_risk_band",
				Unique:  false,
				Columns: []*schema.Column{CheckRecordsColumns[9]},
			},
			{
				Name:    "checkrecord_blocked",
				Unique:  false,
				Columns: []*schema.Column{CheckRecordsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckRecordsTable,
	}
)

func init() {
}
