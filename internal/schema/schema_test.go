package schema

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/property-seed/internal/models"
)

func TestCreateTableFromModel_ColumnOrder(t *testing.T) {
	table, err := CreateTableFromModel(models.Apartment{})
	require.NoError(t, err)

	assert.Equal(t, "apartments", table.TableName())
	assert.Equal(t, []string{
		"apartment_id", "building_name", "floor_number", "unit_number",
		"size_sqft", "year_built", "status",
	}, table.ColumnNames())
}

func TestCreateTableFromModel_ExplicitColumns(t *testing.T) {
	owners, err := CreateTableFromModel(&[]models.PropertyOwner{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"owner_id", "apartment_id", "name", "email", "phone", "ownership_percentage",
		"is_primary", "id_type", "id_number", "bank_account",
	}, owners.ColumnNames())

	wps, err := CreateTableFromModel(models.WPSRecord{})
	require.NoError(t, err)
	assert.Equal(t, "wps", wps.TableName())
	assert.Equal(t, []string{"wps_id", "emp_id", "amount", "payment_date", "status", "transaction_ref"}, wps.ColumnNames())
}

func TestEncodeDecode_Cheque(t *testing.T) {
	table, err := CreateTableFromModel(models.Cheque{})
	require.NoError(t, err)

	due := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	cheques := []models.Cheque{
		{ChequeID: 1, ApartmentID: 4, Amount: decimal.RequireFromString("1500.50"), DueDate: due, DepositDate: &due, Status: models.ChequeCleared},
		{ChequeID: 2, ApartmentID: 4, Amount: decimal.RequireFromString("1499.10"), DueDate: due.AddDate(0, 0, 30), Status: models.ChequePending},
	}

	coll, err := table.EncodeSlice(cheques)
	require.NoError(t, err)
	require.Len(t, coll.Records, 2)
	assert.Equal(t, "cheques", coll.Name)
	assert.Equal(t, table.ColumnNames(), coll.Columns())

	v, ok := coll.Records[1].Get("deposit_date")
	assert.True(t, ok)
	assert.Nil(t, v)

	// Stringify every value the way the CSV sink does and decode back.
	var stringly []Record
	for _, rec := range coll.Records {
		var out Record
		for _, f := range rec {
			out.Set(f.Name, FormatValue(f.Value))
		}
		stringly = append(stringly, out)
	}

	var decoded []models.Cheque
	require.NoError(t, table.DecodeSlice(stringly, &decoded))
	require.Len(t, decoded, 2)
	assert.True(t, decoded[0].Amount.Equal(cheques[0].Amount))
	assert.Equal(t, due, decoded[0].DueDate)
	require.NotNil(t, decoded[0].DepositDate)
	assert.Equal(t, due, *decoded[0].DepositDate)
	assert.Nil(t, decoded[1].DepositDate)
	assert.Equal(t, models.ChequePending, decoded[1].Status)
}

func TestDecode_DriverValues(t *testing.T) {
	table, err := CreateTableFromModel(models.ApartmentAmenity{})
	require.NoError(t, err)

	rec := Record{
		{Name: "id", Value: int64(7)},
		{Name: "apartment_id", Value: int64(2)},
		{Name: "amenity_name", Value: []byte("Gym")},
		{Name: "description", Value: "Building Gym"},
		{Name: "is_chargeable", Value: int64(1)},
		{Name: "unknown", Value: "ignored"},
	}

	var amenity models.ApartmentAmenity
	require.NoError(t, table.Decode(rec, &amenity))
	assert.Equal(t, models.ApartmentAmenity{ID: 7, ApartmentID: 2, AmenityName: "Gym", Description: "Building Gym", IsChargeable: true}, amenity)
}

func TestDecode_RejectsWrongTarget(t *testing.T) {
	table, err := CreateTableFromModel(models.Apartment{})
	require.NoError(t, err)

	var guest models.Guest
	assert.Error(t, table.Decode(Record{}, &guest))
	assert.Error(t, table.Decode(Record{{Name: "size_sqft", Value: "big"}}, &models.Apartment{}))
}

func TestFormatValue(t *testing.T) {
	d := time.Date(2024, 2, 29, 13, 5, 0, 0, time.UTC)
	var nilTime *time.Time

	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "", FormatValue(nilTime))
	assert.Equal(t, "2024-02-29", FormatValue(d))
	assert.Equal(t, "True", FormatValue(true))
	assert.Equal(t, "False", FormatValue(false))
	assert.Equal(t, "33.34", FormatValue(decimal.RequireFromString("33.34")))
	assert.Equal(t, "100.00", FormatValue(decimal.NewFromInt(100)))
	assert.Equal(t, "0.10", FormatValue(0.1))
	assert.Equal(t, "42", FormatValue(42))
}

func TestRecordSetGet(t *testing.T) {
	var r Record
	r.Set("a", 1)
	r.Set("b", 2)
	r.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	v, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCollectionColumnsFirstSeenOrder(t *testing.T) {
	c := Collection{Records: []Record{
		{{Name: "x", Value: 1}},
		{{Name: "y", Value: 2}, {Name: "x", Value: 3}, {Name: "z", Value: nil}},
	}}
	assert.Equal(t, []string{"x", "y", "z"}, c.Columns())
}

func TestCollectionHeaderLeadsColumns(t *testing.T) {
	c := Collection{Header: []string{"a", "b"}}
	assert.Equal(t, []string{"a", "b"}, c.Columns())

	c.Records = []Record{{{Name: "c", Value: 1}, {Name: "a", Value: 2}}}
	assert.Equal(t, []string{"a", "b", "c"}, c.Columns())
}
