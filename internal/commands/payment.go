package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/payment"
)

const dateLayout = "2006-01-02"

func PaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage payment records",
	}

	cmd.AddCommand(AddPaymentCmd())

	return cmd
}

func AddPaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a payment against an apartment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apartmentID, _ := cmd.Flags().GetInt("apartment-id")
			typ, _ := cmd.Flags().GetString("type")
			rawAmount, _ := cmd.Flags().GetString("amount")
			rawDate, _ := cmd.Flags().GetString("date")
			method, _ := cmd.Flags().GetString("method")
			status, _ := cmd.Flags().GetString("status")
			reference, _ := cmd.Flags().GetString("reference")
			debug, _ := cmd.Flags().GetBool("debug")

			amount, err := decimal.NewFromString(rawAmount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %v", rawAmount, err)
			}

			date := time.Now().UTC()
			if rawDate != "" {
				date, err = time.Parse(dateLayout, rawDate)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", rawDate)
				}
			}

			entry := payment.Entry{
				ApartmentID: apartmentID,
				Type:        typ,
				Amount:      amount,
				Date:        date,
				Method:      method,
				Status:      status,
				Reference:   reference,
			}
			if err := entry.Validate(); err != nil {
				return err
			}

			db, err := getMigratedDB(debug)
			if err != nil {
				return err
			}
			defer db.Close()

			p, err := payment.Submit(commandContext(cmd), db, entry)
			if err != nil {
				return fmt.Errorf("failed to record payment: %w", err)
			}

			fmt.Printf("Recorded payment %d: %s %s for apartment %d (%s)\n",
				p.PaymentID, p.Type, p.Amount.StringFixed(2), p.ApartmentID, p.Reference)
			return nil
		},
	}

	cmd.Flags().Int("apartment-id", 0, "Apartment the payment belongs to")
	cmd.Flags().String("type", "", "Payment type: "+strings.Join(payment.Types, ", "))
	cmd.Flags().String("amount", "0", "Amount with at most 2 decimal places")
	cmd.Flags().String("date", "", "Payment date as YYYY-MM-DD (defaults to today)")
	cmd.Flags().String("method", "Bank Transfer", "Payment method: "+strings.Join(payment.Methods, ", "))
	cmd.Flags().String("status", "Pending", "Payment status: "+strings.Join(payment.Statuses, ", "))
	cmd.Flags().String("reference", "", "Invoice or receipt reference (generated when empty)")
	cmd.Flags().Bool("debug", false, "Enable debug output")
	_ = cmd.MarkFlagRequired("apartment-id")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
