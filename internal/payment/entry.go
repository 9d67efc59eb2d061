// Package payment records manually entered payments against an apartment.
package payment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/log"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/schema"
	"github.com/beesaferoot/property-seed/internal/store"
)

var (
	Types    = []string{"DEWA", "Chiller", "Municipality", "Service Charges", "VAT", "Brokerage", "Landlord", "Other"}
	Methods  = []string{"Cash", "Cheque", "Bank Transfer", "Credit Card", "Other"}
	Statuses = []string{"Pending", "Paid", "Overdue", "Failed", "Refunded"}
)

// Entry is a payment as typed in by an operator.
type Entry struct {
	ApartmentID int             `validate:"gt=0"`
	Type        string          `validate:"required,paymenttype"`
	Amount      decimal.Decimal `validate:"-"`
	Date        time.Time       `validate:"required"`
	Method      string          `validate:"required,paymentmethod"`
	Status      string          `validate:"required,paymentstatus"`
	Reference   string          `validate:"max=64"`
}

// catalogs maps each custom validation tag to the values it accepts.
var catalogs = map[string][]string{
	"paymenttype":   Types,
	"paymentmethod": Methods,
	"paymentstatus": Statuses,
}

var entryValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	for tag, values := range catalogs {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(values, fl.Field().String())
		})
	}
	return v
}

// Validate reports every invalid field in one InvalidArgument error.
func (e Entry) Validate() error {
	var problems []string
	if err := entryValidate.Struct(e); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errs.Wrap(errs.KindInvalidArgument, "payment", err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	}
	if e.Amount.IsNegative() {
		problems = append(problems, "Amount must not be negative")
	}
	if !e.Amount.Equal(e.Amount.Round(2)) {
		problems = append(problems, "Amount has more than 2 decimal places")
	}
	if len(problems) > 0 {
		return errs.InvalidArgument("payment", "%s", strings.Join(problems, "; "))
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "paymenttype", "paymentmethod", "paymentstatus":
		return fmt.Sprintf("%s %q is not one of %s", fe.Field(), fe.Value(), strings.Join(catalogs[fe.Tag()], ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}

// NewReference returns a fallback invoice reference.
func NewReference() string {
	return "INV-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Submit validates e, checks that its apartment exists, assigns the next
// payment id and inserts it.
func Submit(ctx context.Context, st store.Store, e Entry) (models.Payment, error) {
	if err := e.Validate(); err != nil {
		return models.Payment{}, err
	}

	apartments, err := st.SelectAll(ctx, models.Apartment{}.TableName())
	if err != nil {
		return models.Payment{}, err
	}
	found, err := hasID(apartments, "apartment_id", e.ApartmentID)
	if err != nil {
		return models.Payment{}, err
	}
	if !found {
		return models.Payment{}, errs.InvalidArgument("payment", "apartment %d does not exist", e.ApartmentID)
	}

	rows, err := st.SelectAll(ctx, models.Payment{}.TableName())
	if err != nil {
		return models.Payment{}, err
	}
	next, err := nextID(rows)
	if err != nil {
		return models.Payment{}, err
	}

	reference := strings.TrimSpace(e.Reference)
	if reference == "" {
		reference = NewReference()
	}

	p := models.Payment{
		PaymentID:   next,
		ApartmentID: e.ApartmentID,
		Type:        e.Type,
		Amount:      e.Amount.Round(2),
		Date:        time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC),
		Method:      e.Method,
		Status:      e.Status,
		Reference:   reference,
	}

	table, err := schema.CreateTableFromModel(p)
	if err != nil {
		return models.Payment{}, err
	}
	rec, err := table.Encode(p)
	if err != nil {
		return models.Payment{}, err
	}
	if err := st.Insert(ctx, table.TableName(), rec); err != nil {
		return models.Payment{}, err
	}

	log.GetLogger().WithFields(logrus.Fields{
		"PaymentId":   p.PaymentID,
		"ApartmentId": p.ApartmentID,
		"Amount":      p.Amount.StringFixed(2),
	}).Info("payment recorded")
	return p, nil
}

func nextID(rows []schema.Record) (int, error) {
	highest := int64(0)
	for _, r := range rows {
		v, ok := r.Get("payment_id")
		if !ok {
			return 0, errs.DataIntegrity("payment", "payments row without payment_id")
		}
		id, err := schema.ToInt(v)
		if err != nil {
			return 0, errs.Wrap(errs.KindDataIntegrity, "payment", err)
		}
		if id > highest {
			highest = id
		}
	}
	return int(highest) + 1, nil
}

func hasID(rows []schema.Record, column string, id int) (bool, error) {
	for _, r := range rows {
		v, ok := r.Get(column)
		if !ok {
			return false, errs.DataIntegrity("payment", "row without %s", column)
		}
		got, err := schema.ToInt(v)
		if err != nil {
			return false, errs.Wrap(errs.KindDataIntegrity, "payment", err)
		}
		if got == int64(id) {
			return true, nil
		}
	}
	return false, nil
}
