// Package store keeps generated tables in a SQL database through gorm. A
// postgres DSN selects PostgreSQL; anything else is a SQLite file path.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/schema"
)

// Store is the table-level contract the report and data-entry code depend on.
type Store interface {
	Insert(ctx context.Context, table string, rec schema.Record) error
	SelectAll(ctx context.Context, table string) ([]schema.Record, error)
}

type DB struct {
	db *gorm.DB
}

var _ Store = (*DB)(nil)

// IsPostgres reports whether dsn addresses a PostgreSQL server.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func dialector(dsn string) gorm.Dialector {
	if IsPostgres(dsn) {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// Open connects to dsn. debug logs every statement.
func Open(dsn string, debug bool) (*DB, error) {
	if dsn == "" {
		return nil, errs.InvalidArgument("store", "empty database url")
	}

	level := logger.Warn
	if debug {
		level = logger.Info
	}
	db, err := gorm.Open(dialector(dsn), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, errs.IO("store", err)
	}
	return &DB{db: db}, nil
}

// New wraps an existing gorm connection.
func New(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (s *DB) Gorm() *gorm.DB {
	return s.db
}

func (s *DB) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// tableFor resolves a table name to its model metadata.
func tableFor(name string) (*schema.Table, error) {
	var ds models.Dataset
	t, ok := ds.Table(name)
	if !ok {
		return nil, errs.InvalidArgument("store", "unknown table %s", name)
	}
	return schema.CreateTableFromModel(t.Rows)
}

// Insert decodes rec into the table's model and inserts it.
func (s *DB) Insert(ctx context.Context, table string, rec schema.Record) error {
	t, err := tableFor(table)
	if err != nil {
		return err
	}
	row := reflect.New(t.ModelType).Interface()
	if err := t.Decode(rec, row); err != nil {
		return errs.Wrap(errs.KindInvalidArgument, "store", err)
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return errs.IO("store", fmt.Errorf("insert into %s: %w", table, err))
	}
	return nil
}

// SelectAll returns every row of table ordered by primary key. Columns keep
// the order the database reports them in; values are raw driver values.
func (s *DB) SelectAll(ctx context.Context, table string) ([]schema.Record, error) {
	t, err := tableFor(table)
	if err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Table(t.TableName())
	if pk := t.PrioritizedPrimaryField; pk != nil {
		q = q.Order(pk.DBName)
	}
	rows, err := q.Rows()
	if err != nil {
		return nil, errs.IO("store", fmt.Errorf("select from %s: %w", table, err))
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, errs.IO("store", fmt.Errorf("scan %s: %w", table, err))
	}
	return records, nil
}

func scanRecords(rows *sql.Rows) ([]schema.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []schema.Record
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for rows.Next() {
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(schema.Record, 0, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			rec = append(rec, schema.Field{Name: col, Value: v})
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of rows in table.
func (s *DB) Count(ctx context.Context, table string) (int64, error) {
	t, err := tableFor(table)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.WithContext(ctx).Table(t.TableName()).Count(&n).Error; err != nil {
		return 0, errs.IO("store", fmt.Errorf("count %s: %w", table, err))
	}
	return n, nil
}
