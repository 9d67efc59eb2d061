package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/generator"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
	"github.com/beesaferoot/property-seed/internal/sink"
)

func GenerateCmd() *cobra.Command {
	defaults := generator.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic property dataset as CSV files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apartments, _ := cmd.Flags().GetInt("apartments")
			brokers, _ := cmd.Flags().GetInt("brokers")
			employees, _ := cmd.Flags().GetInt("employees")
			seed, _ := cmd.Flags().GetUint64("seed")
			out, _ := cmd.Flags().GetString("out")
			toDB, _ := cmd.Flags().GetBool("db")
			replace, _ := cmd.Flags().GetBool("replace")
			debug, _ := cmd.Flags().GetBool("debug")

			opts := generator.Options{Apartments: apartments, Brokers: brokers, Employees: employees}

			src := random.NewFromTime()
			if cmd.Flags().Changed("seed") {
				src = random.New(seed)
			}

			dir, err := getOutputDir(out)
			if err != nil {
				return fmt.Errorf("failed to validate output directory: %v", err)
			}

			ds, err := generator.Generate(opts, src, time.Now())
			if err != nil {
				return fmt.Errorf("failed to generate dataset: %w", err)
			}
			if err := generator.Verify(ds); err != nil {
				return fmt.Errorf("generated dataset is inconsistent: %w", err)
			}

			if err := sink.WriteDataset(dir, ds); err != nil {
				return fmt.Errorf("failed to write dataset: %w", err)
			}

			fmt.Printf("Generated dataset with seed %d in %s\n", src.Seed(), dir)
			printCounts(ds)

			if !toDB {
				return nil
			}
			if err := saveDataset(commandContext(cmd), ds, replace, debug); err != nil {
				return err
			}
			fmt.Println("Dataset saved to database")
			return nil
		},
	}

	cmd.Flags().Int("apartments", defaults.Apartments, "Number of apartments")
	cmd.Flags().Int("brokers", defaults.Brokers, "Number of brokers")
	cmd.Flags().Int("employees", defaults.Employees, "Number of employees")
	cmd.Flags().Uint64("seed", 0, "Random seed (defaults to the current time)")
	cmd.Flags().String("out", "", "Output directory (defaults to OUTPUT_PATH)")
	cmd.Flags().Bool("db", false, "Also save the dataset to DATABASE_URL")
	cmd.Flags().Bool("replace", false, "Clear existing rows before saving to the database")
	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}

func printCounts(ds *models.Dataset) {
	fmt.Printf("%-28s  %8s\n", "Table", "Rows")
	for _, t := range ds.Tables() {
		fmt.Printf("%-28s  %8d\n", t.Name, t.Len())
	}
}

func saveDataset(ctx context.Context, ds *models.Dataset, replace, debug bool) error {
	db, err := getMigratedDB(debug)
	if err != nil {
		return err
	}
	defer db.Close()

	if replace {
		if err := db.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear database: %w", err)
		}
	}
	if err := db.SaveDataset(ctx, ds); err != nil {
		return fmt.Errorf("failed to save dataset: %w", err)
	}
	return nil
}
