package sink

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/schema"
)

// ReadFile parses a CSV written by Writer, or any header-first CSV, into a
// collection named after the file. A leading byte order mark is dropped and
// UTF-16 input is decoded. Every value is kept as a string.
func ReadFile(path string) (schema.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return schema.Collection{}, errs.IO("sink", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), Ext)
	c, err := Read(name, f)
	if err != nil {
		return schema.Collection{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read parses CSV from r. Short rows are padded with empty values.
func Read(name string, r io.Reader) (schema.Collection, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return schema.Collection{Name: name}, nil
	}
	if err != nil {
		return schema.Collection{}, errs.Wrap(errs.KindIO, "sink", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	c := schema.Collection{Name: name, Header: header}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return schema.Collection{}, errs.Wrap(errs.KindIO, "sink", err)
		}
		if len(row) > len(header) {
			return schema.Collection{}, errs.DataIntegrity("sink", "%s line %d has %d fields, header has %d", name, line, len(row), len(header))
		}

		rec := make(schema.Record, 0, len(header))
		for i, h := range header {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			rec = append(rec, schema.Field{Name: h, Value: v})
		}
		c.Records = append(c.Records, rec)
	}
	return c, nil
}
