package sink

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/generator"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
	"github.com/beesaferoot/property-seed/internal/schema"
)

func formatted(t *testing.T, ds *models.Dataset) map[string][][]string {
	t.Helper()
	collections, err := Collections(ds)
	require.NoError(t, err)

	out := map[string][][]string{}
	for _, c := range collections {
		cols := c.Columns()
		rows := [][]string{cols}
		for _, rec := range c.Records {
			row := make([]string, len(cols))
			for i, col := range cols {
				v, _ := rec.Get(col)
				row[i] = schema.FormatValue(v)
			}
			rows = append(rows, row)
		}
		out[c.Name] = rows
	}
	return out
}

func TestDatasetRoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ds, err := generator.Generate(generator.Options{Apartments: 8, Brokers: 3, Employees: 5}, random.New(4), now)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, ds))
	assert.True(t, Exists(dir))

	back, err := ReadDataset(dir)
	require.NoError(t, err)

	for _, table := range ds.Tables() {
		other, ok := back.Table(table.Name)
		require.True(t, ok)
		assert.Equal(t, table.Len(), other.Len(), table.Name)
	}
	assert.Equal(t, formatted(t, ds), formatted(t, back))
	assert.NoError(t, generator.Verify(back))
}

func TestWrite_FormatsValues(t *testing.T) {
	dir := t.TempDir()
	c := schema.Collection{Name: "cheques", Records: []schema.Record{
		{
			{Name: "cheque_id", Value: 1},
			{Name: "is_cleared", Value: true},
			{Name: "due_date", Value: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "amount", Value: 12.5},
			{Name: "deposit_date", Value: nil},
		},
	}}
	require.NoError(t, NewWriter(dir).WriteAll([]schema.Collection{c}))

	raw, err := os.ReadFile(filepath.Join(dir, "cheques.csv"))
	require.NoError(t, err)
	assert.Equal(t, "cheque_id,is_cleared,due_date,amount,deposit_date\n1,True,2023-02-01,12.50,\n", string(raw))
}

func TestWrite_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	rows := func(n int) schema.Collection {
		c := schema.Collection{Name: "guests"}
		for i := 1; i <= n; i++ {
			c.Records = append(c.Records, schema.Record{{Name: "guest_id", Value: i}})
		}
		return c
	}

	require.NoError(t, w.WriteAll([]schema.Collection{rows(3)}))
	require.NoError(t, w.WriteAll([]schema.Collection{rows(1)}))

	c, err := ReadFile(w.Path("guests"))
	require.NoError(t, err)
	assert.Len(t, c.Records, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "guests.csv", entries[0].Name())
}

func TestWrite_EmptyCollectionKeepsHeader(t *testing.T) {
	dir := t.TempDir()
	var ds models.Dataset
	require.NoError(t, WriteDataset(dir, &ds))

	c, err := ReadFile(filepath.Join(dir, "rent.csv"))
	require.NoError(t, err)
	assert.Empty(t, c.Records)
	assert.Equal(t, []string{"rent_id", "apartment_id", "guest_id", "amount", "payment_date", "period_start", "period_end", "status"}, c.Columns())
}

func TestWriteAll_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewWriter(blocker).WriteAll([]schema.Collection{{Name: "apartments"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIO))
}

func TestRead_ToleratesBOMAndShortRows(t *testing.T) {
	c, err := Read("payments", strings.NewReader("\ufeffpayment_id,type,reference\n1,DEWA,INV-1\n2,VAT\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"payment_id", "type", "reference"}, c.Columns())
	require.Len(t, c.Records, 2)
	v, _ := c.Records[1].Get("reference")
	assert.Equal(t, "", v)
}

func TestRead_RejectsLongRows(t *testing.T) {
	_, err := Read("payments", strings.NewReader("a,b\n1,2,3\n"))
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))
}

func TestReadDataset_MissingFile(t *testing.T) {
	_, err := ReadDataset(t.TempDir())
	assert.True(t, errors.Is(err, errs.ErrIO))
	assert.False(t, Exists(t.TempDir()))
}

func TestDataset_UnknownTable(t *testing.T) {
	_, err := Dataset([]schema.Collection{{Name: "invoices"}})
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}
