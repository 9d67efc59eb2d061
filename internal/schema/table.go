package schema

import (
	"fmt"
	"reflect"
	"sync"

	GORMSchema "gorm.io/gorm/schema"
)

var cacheStore = &sync.Map{}

// Table represents a gorm model
type Table struct {
	*GORMSchema.Schema
	Columns []*Column
}

func (t *Table) TableName() string {
	return t.Table
}

// ColumnNames returns the database column names in struct field order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.DBName)
	}
	return names
}

// CreateTableFromModel parses model, which may be a struct, a pointer to a
// struct, or a (pointer to a) slice of structs.
func CreateTableFromModel(model interface{}) (*Table, error) {
	modelSchema, err := GORMSchema.Parse(model, cacheStore, GORMSchema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	columns := make([]*Column, 0, len(modelSchema.DBNames))

	for _, name := range modelSchema.DBNames {
		column := &Column{
			Field: modelSchema.FieldsByDBName[name],
		}
		columns = append(columns, column)
	}

	return &Table{Schema: modelSchema, Columns: columns}, nil
}

// Encode turns one model value into a Record keyed by column name.
func (t *Table) Encode(model any) (Record, error) {
	rv := reflect.Indirect(reflect.ValueOf(model))
	if rv.Kind() != reflect.Struct || rv.Type() != t.ModelType {
		return nil, fmt.Errorf("encode %s: unexpected model type %T", t.Table, model)
	}

	rec := make(Record, 0, len(t.Columns))
	for _, c := range t.Columns {
		fv := c.value(rv)
		var v any
		if fv.Kind() == reflect.Ptr {
			if !fv.IsNil() {
				v = fv.Elem().Interface()
			}
		} else {
			v = fv.Interface()
		}
		rec = append(rec, Field{Name: c.DBName, Value: v})
	}
	return rec, nil
}

// EncodeSlice turns a slice (or pointer to a slice) of models into a
// Collection named after the table.
func (t *Table) EncodeSlice(rows any) (Collection, error) {
	sv := reflect.Indirect(reflect.ValueOf(rows))
	if sv.Kind() != reflect.Slice {
		return Collection{}, fmt.Errorf("encode %s: expected slice, got %T", t.Table, rows)
	}

	out := Collection{Name: t.Table, Header: t.ColumnNames(), Records: make([]Record, 0, sv.Len())}
	for i := 0; i < sv.Len(); i++ {
		rec, err := t.Encode(sv.Index(i).Interface())
		if err != nil {
			return Collection{}, err
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// Decode assigns the fields of rec onto dst, a pointer to the model struct.
// Record fields without a matching column are ignored; columns missing from
// the record keep their zero value.
func (t *Table) Decode(rec Record, dst any) error {
	pv := reflect.ValueOf(dst)
	if pv.Kind() != reflect.Ptr || pv.Elem().Type() != t.ModelType {
		return fmt.Errorf("decode %s: expected *%s, got %T", t.Table, t.ModelType.Name(), dst)
	}
	rv := pv.Elem()

	for _, c := range t.Columns {
		v, ok := rec.Get(c.DBName)
		if !ok {
			continue
		}
		if err := assign(c.value(rv), v); err != nil {
			return fmt.Errorf("decode %s.%s: %w", t.Table, c.DBName, err)
		}
	}
	return nil
}

// DecodeSlice appends one decoded model per record to the slice rows points at.
func (t *Table) DecodeSlice(records []Record, rows any) error {
	pv := reflect.ValueOf(rows)
	if pv.Kind() != reflect.Ptr || pv.Elem().Kind() != reflect.Slice || pv.Elem().Type().Elem() != t.ModelType {
		return fmt.Errorf("decode %s: expected *[]%s, got %T", t.Table, t.ModelType.Name(), rows)
	}
	sv := pv.Elem()

	for i, rec := range records {
		item := reflect.New(t.ModelType)
		if err := t.Decode(rec, item.Interface()); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		sv.Set(reflect.Append(sv, item.Elem()))
	}
	return nil
}
