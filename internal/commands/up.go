package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/store"
)

func UpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			debug, _ := cmd.Flags().GetBool("debug")

			db, err := getDB(debug)
			if err != nil {
				return err
			}
			defer db.Close()

			migrator := store.NewMigrator(db.Gorm())

			pending, err := migrator.Pending()
			if err != nil {
				return fmt.Errorf("failed to get pending migrations: %w", err)
			}

			if len(pending) == 0 {
				fmt.Println("No pending migrations.")
				return nil
			}

			if dryRun {
				fmt.Println("Pending migrations:")
				for _, mig := range pending {
					fmt.Printf("- %s (%s)\n", mig.Name, mig.Version)
				}
				return nil
			}

			applied, err := migrator.Up()
			for _, mig := range applied {
				fmt.Printf("Successfully applied migration: %s\n", mig.Name)
			}
			if err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show pending migrations without executing them")
	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}
