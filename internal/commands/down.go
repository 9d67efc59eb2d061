package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/store"
)

func DownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Revert the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")

			db, err := getDB(debug)
			if err != nil {
				return err
			}
			defer db.Close()

			reverted, err := store.NewMigrator(db.Gorm()).Down()
			if err != nil {
				return fmt.Errorf("failed to revert migration: %w", err)
			}

			fmt.Printf("Successfully reverted migration: %s\n", reverted.Name)
			return nil
		},
	}

	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}
