package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/store"
)

func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status and row counts per table",
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")

			db, err := getDB(debug)
			if err != nil {
				return err
			}
			defer db.Close()

			migrator := store.NewMigrator(db.Gorm())
			records, err := migrator.Applied()
			if err != nil {
				return fmt.Errorf("failed to get applied migrations: %w", err)
			}

			appliedMap := make(map[string]bool)
			for _, record := range records {
				appliedMap[record.Version] = true
			}

			fmt.Printf("%-16s  %-30s  %-8s\n", "Version", "Name", "Status")
			for _, mig := range store.Migrations() {
				status := "Pending"
				if appliedMap[mig.Version] {
					status = "Applied"
				}
				fmt.Printf("%-16s  %-30s  %-8s\n", mig.Version, mig.Name, status)
			}

			fmt.Println()
			fmt.Printf("%-28s  %8s\n", "Table", "Rows")
			for _, name := range models.TableNames() {
				if !db.Gorm().Migrator().HasTable(name) {
					fmt.Printf("%-28s  %8s\n", name, "-")
					continue
				}
				n, err := db.Count(commandContext(cmd), name)
				if err != nil {
					return fmt.Errorf("failed to count %s: %w", name, err)
				}
				fmt.Printf("%-28s  %8d\n", name, n)
			}

			drift, err := db.Drift()
			if err != nil {
				return fmt.Errorf("failed to compare schema: %w", err)
			}
			fmt.Println()
			if len(drift) == 0 {
				fmt.Println("Schema matches models")
				return nil
			}
			fmt.Println("Schema drift:")
			for _, d := range drift {
				switch {
				case d.Missing:
					fmt.Printf("- %s: table missing\n", d.Table)
				case d.Unknown:
					fmt.Printf("- %s: no model maps to this table\n", d.Table)
				default:
					fmt.Printf("- %s: add %v, drop %v\n", d.Table, d.ColumnsToAdd, d.ColumnsToDrop)
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}
