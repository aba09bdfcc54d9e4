package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-attack/internal/audio"
	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/games/invaders"
	"github.com/vovakirdan/alien-attack/internal/platform/tui"
	"github.com/vovakirdan/alien-attack/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagMedia      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Alien Attack",
	Long: `Start a game of Alien Attack.

Controls:
  Left/A, Right/D  - Rotate the satellite
  Up/W             - Thrust
  Space            - Fire (needs a full cannon charge)
  Enter            - Start / continue
  P                - Pause
  Ctrl+S           - Save a screenshot
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower aliens that spawn half as often
  normal - The default level chart
  hard   - Faster aliens that spawn more often
  fixed  - No progression, the first chart row for the whole game

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --mute --seed 42
  invaders play --config ./my-invaders.yaml --media ./media`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagMedia, "media", "", "Directory holding the WAV samples")
}

// loadGameConfig resolves the configuration for a run from the play flags.
func loadGameConfig(path, difficulty string, mute bool, media string) (config.InvadersConfig, string, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.InvadersConfig{}, "", err
	}

	cfg, source, err := config.LoadInvaders(path)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyPreset(&cfg, preset)

	if mute {
		cfg.Audio.Enabled = false
	}
	if media != "" {
		cfg.Audio.MediaDir = media
	}
	return cfg, source, nil
}

// songLength converts the song period in frames to wall time.
func songLength(frames, fps int) time.Duration {
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}
	return time.Duration(frames) * time.Second / time.Duration(fps)
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logCloser := mustLogger()
	defer logCloser.Close()

	cfg, source, err := loadGameConfig(flagConfig, flagDifficulty, flagMute, flagMedia)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logCloser.Close()
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty, "progressive", cfg.Levels.Progressive)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Sound is best effort
	board := audio.New(cfg.Audio, songLength(cfg.Audio.SongFrames, flagFPS), logger)
	board.Load()
	if err := board.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger.Info("audio ready", "active", board.Active(), "song", board.Source(core.CueSong), "media", cfg.Audio.MediaDir)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(invaders.New(cfg), store, board, logger, rc)

	// Release resources before potential exit
	board.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		logger.Error("game aborted", "err", runErr)
		logCloser.Close()
		os.Exit(1)
	}
}
