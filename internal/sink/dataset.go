package sink

import (
	"errors"
	"os"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/schema"
)

// Collections encodes every table of ds, in dependency order.
func Collections(ds *models.Dataset) ([]schema.Collection, error) {
	tables := ds.Tables()
	out := make([]schema.Collection, 0, len(tables))
	for _, t := range tables {
		table, err := schema.CreateTableFromModel(t.Rows)
		if err != nil {
			return nil, err
		}
		c, err := table.EncodeSlice(t.Rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Dataset decodes collections back into typed tables. Collections are
// matched by name; unknown names are rejected.
func Dataset(collections []schema.Collection) (*models.Dataset, error) {
	ds := &models.Dataset{}
	for _, c := range collections {
		t, ok := ds.Table(c.Name)
		if !ok {
			return nil, errs.InvalidArgument("sink", "unknown table %s", c.Name)
		}
		table, err := schema.CreateTableFromModel(t.Rows)
		if err != nil {
			return nil, err
		}
		if err := table.DecodeSlice(c.Records, t.Rows); err != nil {
			return nil, errs.Wrap(errs.KindDataIntegrity, "sink", err)
		}
	}
	return ds, nil
}

// WriteDataset writes one CSV per table of ds under dir.
func WriteDataset(dir string, ds *models.Dataset) error {
	collections, err := Collections(ds)
	if err != nil {
		return err
	}
	return NewWriter(dir).WriteAll(collections)
}

// ReadDataset reads every table file under dir. A missing file is an
// IOError.
func ReadDataset(dir string) (*models.Dataset, error) {
	w := NewWriter(dir)
	names := models.TableNames()
	collections := make([]schema.Collection, 0, len(names))
	for _, name := range names {
		c, err := ReadFile(w.Path(name))
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return Dataset(collections)
}

// Exists reports whether dir holds a file for every table.
func Exists(dir string) bool {
	w := NewWriter(dir)
	for _, name := range models.TableNames() {
		if _, err := os.Stat(w.Path(name)); errors.Is(err, os.ErrNotExist) {
			return false
		}
	}
	return true
}
