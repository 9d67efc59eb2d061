package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/generator"
	"github.com/beesaferoot/property-seed/internal/sink"
)

func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a CSV dataset against the dataset invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			dir, err := getOutputDir(dir)
			if err != nil {
				return fmt.Errorf("failed to validate dataset directory: %v", err)
			}

			ds, err := sink.ReadDataset(dir)
			if err != nil {
				return fmt.Errorf("failed to read dataset: %w", err)
			}
			if err := generator.Verify(ds); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Printf("Dataset in %s is valid\n", dir)
			return nil
		},
	}

	cmd.Flags().String("dir", "", "Dataset directory (defaults to OUTPUT_PATH)")

	return cmd
}
