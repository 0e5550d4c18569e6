package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/games/football"
	"github.com/vovakirdan/kickoff/internal/platform/tui"
	"github.com/vovakirdan/kickoff/internal/registry"
	"github.com/vovakirdan/kickoff/internal/storage"
)

var flagProfile string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a match",
	Long: `Start playing the given mode ("match" if omitted).

Controls:
  WASD/Arrows    - Move (hold Shift to sprint)
  Q/E            - Pass to the nearest teammate
  Space/Enter    - Shoot toward goal
  X/C            - Tackle
  Tab            - Switch to the teammate nearest the ball
  Mouse drag     - Virtual joystick
  P              - Pause
  R              - Restart (after full time)
  Esc/B          - Back (while paused or after full time)
  Ctrl+C         - Quit

Difficulty options:
  easy   - Opponents start slow and speed up as you score
  normal - Opponents start at 30% effort
  hard   - Opponents start at 70% effort
  fixed  - No progression, stays at the config's initial level

Examples:
  kickoff play
  kickoff play training
  kickoff play --difficulty hard
  kickoff play --config ./my-match.yaml
  kickoff play --profile fast`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Saved tuning profile to play with")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
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

// loadProfile fetches a named profile. An empty name means no profile.
func loadProfile(store *storage.Store, name string) (*config.MatchConfig, error) {
	if name == "" {
		return nil, nil
	}
	if store == nil {
		return nil, fmt.Errorf("profile %q: no profiles database", name)
	}
	p, err := store.Profile(name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("profile %q not found", name)
	}
	return &p.Config, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "match"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'kickoff list' to see available modes.")
		os.Exit(1)
	}

	logger, logCloser, err := newLogger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog(logCloser)

	football.SetConfigPath(flagConfig)
	football.SetDifficultyPreset(flagDifficulty)

	var profile *config.MatchConfig
	if flagProfile != "" {
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening profiles database: %v\n", openErr)
			os.Exit(1)
		}
		profile, err = loadProfile(store, flagProfile)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	tui.Configure(game, flagDifficulty, profile)

	logger.Info("starting", "mode", modeID, "difficulty", flagDifficulty, "profile", flagProfile)
	if runErr := tui.Run(game, terminalConfig(), logger); runErr != nil {
		closeLog(logCloser)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
