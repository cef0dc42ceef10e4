package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CheckRecord holds the schema definition for the CheckRecord entity.
// One row is written per inbound or output check, successful or not.
type CheckRecord struct {
	ent.Schema
}

// Fields of the CheckRecord.
func (CheckRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("check_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.Enum("direction").
			Values("inbound", "output"),
		field.Bool("passed").
			Default(false),
		field.Bool("blocked").
			Default(false),
		field.Bool("requires_review").
			Default(false),
		field.Float("risk_score").
			Default(0),
		field.Enum("risk_band").
			Values("safe", "low", "medium", "high", "critical").
			Default("safe"),
		field.String("block_reason").
			Optional(),
		field.String("sender").
			Optional(),
		field.String("subject").
			Optional(),
		field.String("content_hash").
			Optional(),
		field.JSON("pattern_kinds", []string{}).
			Optional(),
		field.JSON("violation_kinds", []string{}).
			Optional(),
		field.String("technique").
			Optional(),
		field.JSON("detail", map[string]interface{}{}).
			Optional(),
		field.Text("prompt").
			Optional().
			SchemaType(map[string]string{
				dialect.SQLite: "text",
			}),
	}
}

// Indexes of the CheckRecord.
func (CheckRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("check_id"),
		index.Fields("direction"),
		index.Fields("risk_band"),
		index.Fields("blocked"),
	}
}
