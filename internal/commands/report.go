package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/log"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/report"
)

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize payment records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupBy, _ := cmd.Flags().GetString("group-by")
			debug, _ := cmd.Flags().GetBool("debug")

			db, err := getMigratedDB(debug)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := db.SelectAll(commandContext(cmd), models.Payment{}.TableName())
			if err != nil {
				return fmt.Errorf("failed to read payments: %w", err)
			}

			summary, err := report.Summarize(records, groupBy)
			if err != nil {
				return err
			}

			if summary.Empty() {
				log.GetLogger().Warn("no payment records found")
				fmt.Println("No payment records found")
				return nil
			}

			fmt.Printf("Payments:       %d\n", summary.Count)
			fmt.Printf("Total amount:   %s\n", summary.Total.StringFixed(2))
			fmt.Printf("Average amount: %s\n", summary.Average.StringFixed(2))

			if len(summary.ByGroup) > 0 {
				fmt.Println()
				printGroups(groupBy, summary.ByGroup)
			}
			fmt.Println()
			printGroups("status", summary.ByStatus)

			return nil
		},
	}

	cmd.AddCommand(FeaturesCmd())

	cmd.Flags().String("group-by", "type", "Payment column to total by")
	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}

func printGroups(title string, groups []report.Group) {
	fmt.Printf("%-20s  %6s  %14s\n", title, "Count", "Total")
	for _, g := range groups {
		fmt.Printf("%-20s  %6d  %14s\n", g.Key, g.Count, g.Total.StringFixed(2))
	}
}
