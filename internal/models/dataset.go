package models

import "reflect"

//go:generate go run ../../tools/gen_models_registry.go .

// Dataset holds one in-memory collection per table.
type Dataset struct {
	Apartments    []Apartment
	Owners        []PropertyOwner
	Registrations []PropertyRegistration
	Brokers       []Broker
	Brokerage     []Brokerage
	Cheques       []Cheque
	Furnishings   []ApartmentFurnishing
	Attributes    []ApartmentAttribute
	Amenities     []ApartmentAmenity
	Guests        []Guest
	Employees     []Employee
	Payments      []Payment
	WPS           []WPSRecord
	Rent          []RentRecord
}

// TableData binds a table name to a pointer to the slice backing it.
type TableData struct {
	Name string
	Rows any
}

// Len returns the number of rows behind Rows.
func (t TableData) Len() int {
	return reflect.ValueOf(t.Rows).Elem().Len()
}

// Tables lists every collection so that referenced tables come before the
// tables referencing them.
func (d *Dataset) Tables() []TableData {
	return []TableData{
		{Name: Apartment{}.TableName(), Rows: &d.Apartments},
		{Name: Broker{}.TableName(), Rows: &d.Brokers},
		{Name: Employee{}.TableName(), Rows: &d.Employees},
		{Name: PropertyOwner{}.TableName(), Rows: &d.Owners},
		{Name: PropertyRegistration{}.TableName(), Rows: &d.Registrations},
		{Name: ApartmentFurnishing{}.TableName(), Rows: &d.Furnishings},
		{Name: ApartmentAttribute{}.TableName(), Rows: &d.Attributes},
		{Name: ApartmentAmenity{}.TableName(), Rows: &d.Amenities},
		{Name: Guest{}.TableName(), Rows: &d.Guests},
		{Name: Payment{}.TableName(), Rows: &d.Payments},
		{Name: Brokerage{}.TableName(), Rows: &d.Brokerage},
		{Name: Cheque{}.TableName(), Rows: &d.Cheques},
		{Name: WPSRecord{}.TableName(), Rows: &d.WPS},
		{Name: RentRecord{}.TableName(), Rows: &d.Rent},
	}
}

// Table returns the collection registered under name.
func (d *Dataset) Table(name string) (TableData, bool) {
	for _, t := range d.Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return TableData{}, false
}

// TableNames lists table names in dependency order.
func TableNames() []string {
	var d Dataset
	tables := d.Tables()
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.Name)
	}
	return names
}
