package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiv50084/fantasyname/config"
	"github.com/shiv50084/fantasyname/namegen/symbols"
)

// loadConfig loads the CLI configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// patternFromArgs returns the pattern argument, falling back to the configured
// default pattern.
func patternFromArgs(args []string, cfg *config.Config) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.Pattern
}

// tablePathFromFlag returns the --table flag value, falling back to the
// configured table path. Empty means built-in table only.
func tablePathFromFlag(cmd *cobra.Command, cfg *config.Config) string {
	path, _ := cmd.Flags().GetString("table")
	if path == "" {
		path = cfg.Table
	}
	return path
}

// effectiveTable layers the table file at path over the built-in table,
// exactly as every command sees it: file symbols win where both define one.
func effectiveTable(path string) (symbols.Table, error) {
	if path == "" {
		return symbols.Default(), nil
	}
	loaded, err := symbols.Load(path)
	if err != nil {
		return symbols.Table{}, err
	}
	return symbols.Default().Merge(loaded), nil
}
