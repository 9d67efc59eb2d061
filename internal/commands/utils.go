package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/config"
	"github.com/beesaferoot/property-seed/internal/store"
)

func getDB(debug bool) (*store.DB, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg.DatabaseUrl.Value, debug)
}

// getMigratedDB opens the database and applies pending migrations so data
// commands work against a fresh file.
func getMigratedDB(debug bool) (*store.DB, error) {
	db, err := getDB(debug)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func validateOutputPath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", fmt.Errorf("invalid output path: %v", err)
	}

	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		return "", fmt.Errorf("output path %s is not a directory", absPath)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return "", fmt.Errorf("output path is not writable: %v", err)
	}

	return absPath, nil
}

// getOutputDir prefers the flag value, then OUTPUT_PATH.
func getOutputDir(flag string) (string, error) {
	dir := flag
	if dir == "" {
		cfg, err := config.FromEnv()
		if err != nil {
			return "", err
		}
		dir = cfg.OutputPath.Value
	}
	return validateOutputPath(dir)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
