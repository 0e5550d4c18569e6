package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/games/football"
	"github.com/vovakirdan/kickoff/internal/platform/tui"
	"github.com/vovakirdan/kickoff/internal/registry"
	"github.com/vovakirdan/kickoff/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Left/Right cycles the difficulty, Tab opens saved profiles.
After a match ends, you return to the menu to play again.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select mode
  Tab           - Profiles
  Q             - Quit

Examples:
  kickoff menu
  kickoff menu --fps 30
  kickoff menu --db ./kickoff.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logCloser, err := newLogger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog(logCloser)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open profiles database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	football.SetConfigPath(flagConfig)
	football.SetDifficultyPreset(flagDifficulty)

	cfg := terminalConfig()
	var (
		profileName string
		profile     *config.MatchConfig
	)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, profileName, store != nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsProfiles {
			pr, prErr := tui.RunProfiles(store, cfg.ScreenW, cfg.ScreenH)
			if prErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", prErr)
				continue
			}
			switch {
			case pr.Quit:
				return
			case pr.UseNone:
				profileName, profile = "", nil
			case pr.Chosen != "":
				loaded, loadErr := loadProfile(store, pr.Chosen)
				if loadErr != nil {
					logger.Warn("could not load profile", "profile", pr.Chosen, "error", loadErr)
					continue
				}
				profileName, profile = pr.Chosen, loaded
			}
			continue
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
			continue
		}

		difficulty := menuResult.Difficulty
		if difficulty == "" {
			difficulty = flagDifficulty
		}
		tui.Configure(game, difficulty, profile)

		logger.Info("starting", "mode", menuResult.GameID, "difficulty", difficulty, "profile", profileName)
		if runErr := tui.Run(game, cfg, logger); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
	}
}
