package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/store"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize migration tracking table in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB(false)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.NewMigrator(db.Gorm()).Init(); err != nil {
				return fmt.Errorf("failed to create schema_migrations table: %w", err)
			}

			fmt.Println("Migration system initialized successfully")
			return nil
		},
	}
}
