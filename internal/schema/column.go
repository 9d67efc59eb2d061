package schema

import (
	"reflect"

	GORMSchema "gorm.io/gorm/schema"
)

// Column represents a gorm field backed by a database column
type Column struct {
	*GORMSchema.Field
}

// value returns the struct field of c inside the struct rv.
func (c *Column) value(rv reflect.Value) reflect.Value {
	return rv.FieldByIndex(c.StructField.Index)
}
