package store

import (
	"sort"
	"strings"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
)

// TableDrift lists the differences between a model and its table in the
// database.
type TableDrift struct {
	Table         string
	Missing       bool
	Unknown       bool
	ColumnsToAdd  []string
	ColumnsToDrop []string
}

func (d TableDrift) IsEmpty() bool {
	return !d.Missing && !d.Unknown && len(d.ColumnsToAdd) == 0 && len(d.ColumnsToDrop) == 0
}

type tabler interface {
	TableName() string
}

// registeredTables returns the table names of every registered model.
func registeredTables() map[string]bool {
	names := make(map[string]bool, len(models.ModelTypeRegistry))
	for _, model := range models.ModelTypeRegistry {
		if t, ok := model.(tabler); ok {
			names[t.TableName()] = true
		}
	}
	return names
}

// Drift compares every model with the live schema and returns the tables
// that differ, in dependency order, followed by tables no model maps to.
func (s *DB) Drift() ([]TableDrift, error) {
	migrator := s.db.Migrator()

	var out []TableDrift
	for _, name := range models.TableNames() {
		t, err := tableFor(name)
		if err != nil {
			return nil, err
		}

		if !migrator.HasTable(name) {
			out = append(out, TableDrift{Table: name, Missing: true})
			continue
		}

		columnTypes, err := migrator.ColumnTypes(name)
		if err != nil {
			return nil, errs.IO("store", err)
		}
		current := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			current[strings.ToLower(ct.Name())] = true
		}
		target := make(map[string]bool)
		for _, col := range t.ColumnNames() {
			target[strings.ToLower(col)] = true
		}

		diff := TableDrift{Table: name}
		for col := range target {
			if !current[col] {
				diff.ColumnsToAdd = append(diff.ColumnsToAdd, col)
			}
		}
		for col := range current {
			if !target[col] {
				diff.ColumnsToDrop = append(diff.ColumnsToDrop, col)
			}
		}
		sort.Strings(diff.ColumnsToAdd)
		sort.Strings(diff.ColumnsToDrop)

		if !diff.IsEmpty() {
			out = append(out, diff)
		}
	}

	tables, err := migrator.GetTables()
	if err != nil {
		return nil, errs.IO("store", err)
	}
	known := registeredTables()
	known[MigrationRecord{}.TableName()] = true
	sort.Strings(tables)
	for _, name := range tables {
		if !known[strings.ToLower(name)] && !strings.HasPrefix(name, "sqlite_") {
			out = append(out, TableDrift{Table: name, Unknown: true})
		}
	}
	return out, nil
}
