package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/generator"
	"github.com/beesaferoot/property-seed/internal/sink"
)

func LoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a CSV dataset into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			replace, _ := cmd.Flags().GetBool("replace")
			debug, _ := cmd.Flags().GetBool("debug")

			dir, err := getOutputDir(dir)
			if err != nil {
				return fmt.Errorf("failed to validate dataset directory: %v", err)
			}
			if !sink.Exists(dir) {
				return fmt.Errorf("no complete dataset found in %s", dir)
			}

			ds, err := sink.ReadDataset(dir)
			if err != nil {
				return fmt.Errorf("failed to read dataset: %w", err)
			}
			if err := generator.Verify(ds); err != nil {
				return fmt.Errorf("dataset in %s is inconsistent: %w", dir, err)
			}

			if err := saveDataset(commandContext(cmd), ds, replace, debug); err != nil {
				return err
			}

			fmt.Printf("Loaded dataset from %s\n", dir)
			printCounts(ds)
			return nil
		},
	}

	cmd.Flags().String("dir", "", "Dataset directory (defaults to OUTPUT_PATH)")
	cmd.Flags().Bool("replace", false, "Clear existing rows before loading")
	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}
