package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/store"
)

func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show migration history",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB(false)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := store.NewMigrator(db.Gorm()).Applied()
			if err != nil {
				return fmt.Errorf("failed to get migration history: %w", err)
			}

			if len(records) == 0 {
				fmt.Println("No migrations have been applied yet.")
				return nil
			}

			fmt.Printf("%-16s  %-30s  %-24s\n", "Version", "Name", "Applied At")
			for _, record := range records {
				fmt.Printf("%-16s  %-30s  %-24s\n", record.Version, record.Name, record.AppliedAt.Format(time.RFC3339))
			}

			return nil
		},
	}
}
