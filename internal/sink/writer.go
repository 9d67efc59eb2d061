// Package sink persists named collections as one CSV file per collection and
// reads them back.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/log"
	"github.com/beesaferoot/property-seed/internal/schema"
)

const Ext = ".csv"

// Writer writes collections under Dir as <name>.csv.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Path returns the file a collection with the given name is written to.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.Dir, name+Ext)
}

// WriteAll writes each collection in order. Files already written stay in
// place when a later one fails.
func (w *Writer) WriteAll(collections []schema.Collection) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return errs.IO("sink", err)
	}
	for _, c := range collections {
		if err := w.Write(c); err != nil {
			return err
		}
	}
	return nil
}

// Write replaces <Dir>/<name>.csv with the collection. The file is written
// to a temporary sibling first and renamed into place, so readers never see
// a partial table.
func (w *Writer) Write(c schema.Collection) error {
	if c.Name == "" {
		return errs.InvalidArgument("sink", "collection has no name")
	}

	tmp, err := os.CreateTemp(w.Dir, "."+c.Name+".*.tmp")
	if err != nil {
		return errs.IO("sink", err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp, c); err != nil {
		tmp.Close()
		return errs.IO("sink", fmt.Errorf("write %s: %w", c.Name, err))
	}
	if err := tmp.Close(); err != nil {
		return errs.IO("sink", err)
	}

	path := w.Path(c.Name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errs.IO("sink", err)
	}

	log.GetLogger().WithFields(logrus.Fields{
		"Table": c.Name,
		"Rows":  len(c.Records),
		"Path":  path,
	}).Info("table written")
	return nil
}

func encode(f *os.File, c schema.Collection) error {
	columns := c.Columns()
	cw := csv.NewWriter(f)
	if err := cw.Write(columns); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for _, rec := range c.Records {
		for i, col := range columns {
			v, _ := rec.Get(col)
			row[i] = schema.FormatValue(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
