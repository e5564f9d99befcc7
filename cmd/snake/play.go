package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const defaultVariant = "snake"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing snake. The variant defaults to "snake".

Controls:
  Arrows/WASD/hjkl  - Steer
  Ctrl+S            - Save a text screenshot to ~/.snake/screenshots
  Q/Esc/Ctrl+C      - Quit

The game ends when the snake hits a wall or its own body.

Examples:
  snake play
  snake play snake_legacy
  snake play --speed slow --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := defaultVariant
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", variant)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs are dropped unless a file is given
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(variant, cfg)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     flagSeed,
	}

	logger.Debug("config",
		"window_size", cfg.World.WindowSize,
		"block_size", cfg.World.BlockSize,
		"update_period", cfg.Timing.UpdatePeriod,
		"self_collision_skip", cfg.Rules.SelfCollisionSkip,
		"food_bounds", cfg.Rules.FoodBounds,
	)

	if err := tui.Run(game, rc, logger); err != nil {
		logger.Error("game failed", "error", err)
		return err
	}
	return nil
}
