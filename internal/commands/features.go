package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/report"
	"github.com/beesaferoot/property-seed/internal/schema"
	"github.com/beesaferoot/property-seed/internal/sink"
)

func FeaturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Export a numeric feature matrix of a stored table as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _ := cmd.Flags().GetString("table")
			features, _ := cmd.Flags().GetStringSlice("features")
			target, _ := cmd.Flags().GetString("target")
			out, _ := cmd.Flags().GetString("out")
			debug, _ := cmd.Flags().GetBool("debug")

			dir, err := getOutputDir(out)
			if err != nil {
				return fmt.Errorf("failed to validate output directory: %v", err)
			}

			db, err := getMigratedDB(debug)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := db.SelectAll(commandContext(cmd), table)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", table, err)
			}
			if table == (models.Guest{}).TableName() {
				if records, err = report.WithStayDuration(records); err != nil {
					return err
				}
			}

			x, y, err := report.Features(records, features, target)
			if err != nil {
				return err
			}

			c := report.FeatureTable(table+"_features", features, target, x, y)
			if err := sink.NewWriter(dir).WriteAll([]schema.Collection{c}); err != nil {
				return fmt.Errorf("failed to write features: %w", err)
			}

			fmt.Printf("Wrote %d rows to %s\n", len(x), sink.NewWriter(dir).Path(c.Name))
			return nil
		},
	}

	cmd.Flags().String("table", "", "Table to read")
	cmd.Flags().StringSlice("features", nil, "Comma-separated feature columns")
	cmd.Flags().String("target", "", "Target column (optional)")
	cmd.Flags().String("out", "", "Output directory (defaults to OUTPUT_PATH)")
	cmd.Flags().Bool("debug", false, "Enable debug output")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("features")

	return cmd
}
