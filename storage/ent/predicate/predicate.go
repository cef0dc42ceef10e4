// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CheckRecord is the predicate function for checkrecord builders.
type CheckRecord func(*sql.Selector)
