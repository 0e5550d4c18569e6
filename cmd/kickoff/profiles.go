package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/storage"
)

var flagProfileFrom string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage saved tuning profiles",
	Long: `Tuning profiles are named match configurations stored in the
profiles database. Play with one using 'kickoff play --profile <name>'.

Examples:
  kickoff profiles list
  kickoff profiles save fast --from ./fast.yaml
  kickoff profiles save current --difficulty hard
  kickoff profiles show fast
  kickoff profiles delete fast`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	Run:   runProfilesList,
}

var profilesSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a profile",
	Long: `Save a profile from a YAML file (--from), or from the config that
--config and --difficulty would produce.`,
	Args: cobra.ExactArgs(1),
	Run:  runProfilesSave,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a profile as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesShow,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesDelete,
}

func init() {
	profilesSaveCmd.Flags().StringVar(&flagProfileFrom, "from", "", "YAML file to read the profile from")

	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesSaveCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profiles database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func fail(store *storage.Store, format string, args ...any) {
	store.Close()
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func runProfilesList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	profiles, err := store.ListProfiles()
	if err != nil {
		fail(store, "%v", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No profiles saved yet.")
		return
	}

	maxLen := 4 // "Name" header
	for _, p := range profiles {
		if len(p.Name) > maxLen {
			maxLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Name", "Updated")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-------")
	for _, p := range profiles {
		fmt.Printf("  %-*s  %s\n", maxLen, p.Name, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runProfilesSave(_ *cobra.Command, args []string) {
	name := args[0]

	var (
		cfg config.MatchConfig
		err error
	)
	if flagProfileFrom != "" {
		data, readErr := os.ReadFile(flagProfileFrom)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", readErr)
			os.Exit(1)
		}
		cfg, err = config.Parse(data)
	} else {
		cfg, err = config.LoadMatch(flagConfig)
		if err == nil {
			config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.SaveProfile(name, cfg); err != nil {
		fail(store, "%v", err)
	}
	fmt.Printf("Saved profile %q.\n", name)
}

func runProfilesShow(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	p, err := store.Profile(args[0])
	if err != nil {
		fail(store, "%v", err)
	}
	if p == nil {
		fail(store, "profile %q not found", args[0])
	}

	data, err := config.Marshal(p.Config)
	if err != nil {
		fail(store, "%v", err)
	}
	fmt.Printf("# profile %s, updated %s\n", p.Name, p.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Print(string(data))
}

func runProfilesDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	removed, err := store.DeleteProfile(args[0])
	if err != nil {
		fail(store, "%v", err)
	}
	if !removed {
		fail(store, "profile %q not found", args[0])
	}
	fmt.Printf("Deleted profile %q.\n", args[0])
}
