// kickoff is a terminal football match simulator.
//
// Usage:
//
//	kickoff list                  - List available modes
//	kickoff play [mode]           - Play a match (default) or training
//	kickoff menu                  - Start menu to pick a mode interactively
//	kickoff serve                 - Start SSH server for remote play
//	kickoff profiles <command>    - Manage saved tuning profiles
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible matches
//	--db <path>          - Set database path (default: ~/.kickoff/kickoff.db)
//	--config <path>      - Custom match config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Write logs to a rotating file
//	--log-level <level>  - debug, info, warn, error
//
// Environment variables (also read from a .env file):
//
//	KICKOFF_DB, KICKOFF_CONFIG, KICKOFF_FPS, KICKOFF_SSH_ADDR
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/kickoff/internal/games/football"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// envFlags maps environment variables to the flags they default.
var envFlags = map[string]string{
	"KICKOFF_DB":       "db",
	"KICKOFF_CONFIG":   "config",
	"KICKOFF_FPS":      "fps",
	"KICKOFF_SSH_ADDR": "ssh",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kickoff",
	Short: "Kickoff - Play football in your terminal",
	Long: `Kickoff is a terminal football match simulator. You control one
player of the home team against a computer-controlled side.

Available commands:
  list      - Show all available modes
  play      - Play a match directly
  menu      - Interactive mode picker menu
  serve     - Start SSH server for remote play
  profiles  - Manage saved tuning profiles

Examples:
  kickoff play
  kickoff play training
  kickoff play --difficulty hard --seed 42
  kickoff menu
  kickoff serve --ssh :2222
  kickoff profiles save fast --from ./fast.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kickoff/kickoff.db", "Path to profiles database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(profilesCmd)
}

// loadEnv reads an optional .env file and fills flags the user did not set
// from KICKOFF_* variables.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kickoff: load .env: %w", err)
	}

	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("kickoff: %s=%q: %w", env, value, err)
		}
	}
	return nil
}
