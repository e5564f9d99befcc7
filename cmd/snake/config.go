package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would run with, after the config
file, environment overrides and flags are applied, as YAML.

The output is a valid config file:
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config resolved", "path", flagConfig, "speed", flagSpeed)

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadConfig resolves the configuration: file, then environment, then flags.
// The result is validated.
func loadConfig() (config.Snake, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Snake{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Snake{}, err
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return config.Snake{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.Snake{}, err
	}
	return cfg, nil
}
