package controllers

import (
	"fmt"
	"strconv"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aptsources/internal/domain/entities"
	"github.com/rios0rios0/aptsources/internal/domain/repositories"
)

// loadSettings resolves the configuration from the --config flag, the default
// locations, or the built-in defaults, then applies the --root override.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("root")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings := entities.DefaultSettings()
	cfgPath := configPath
	if cfgPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			cfgPath = found
		}
	}

	if cfgPath != "" {
		logger.Debugf("Using config file: %s", cfgPath)
		loaded, err := entities.NewSettings(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if root != "" {
		settings.SourcesDir = root
	}
	return settings, nil
}

// writeMode returns the --mode flag, or the configured default when unset.
func writeMode(cmd *cobra.Command, settings *entities.Settings) (repositories.WriteMode, error) {
	name, _ := cmd.Flags().GetString("mode")
	if name == "" {
		name = settings.WriteMode
	}
	return repositories.ParseWriteMode(name)
}

// parseIndex validates a zero-based entry index argument.
func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid entry index %q: expected a non-negative number", raw)
	}
	return index, nil
}

func addModeFlag(cmd *cobra.Command) {
	cmd.Flags().String("mode", "",
		"Write mode: auto, overwrite or elevated (default: write_mode from config)")
}
