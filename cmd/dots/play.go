package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/games/dots"
	"github.com/vovakirdan/tui-dots/internal/platform/tui"
	"github.com/vovakirdan/tui-dots/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: dots).

Mouse:
  Press on a dot and drag through adjacent dots of the same color.
  Release to clear the path. Close a square to clear the whole color.

Keyboard:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Start or finish a path
  Esc          - Drop the current path
  P            - Pause
  R            - New board
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  dots play
  dots play dots_mini
  dots play --seed 42 --log-level debug
  dots play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "dots"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if board exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 'dots list' to see available boards", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating board: %w", err)
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "dots")
	if err != nil {
		return err
	}
	dots.SetLogger(logger)

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("error running board: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
