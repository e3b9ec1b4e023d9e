package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/officemole/internal/logging"
	"github.com/lakshaymaurya-felt/officemole/internal/remove"
	"github.com/lakshaymaurya-felt/officemole/internal/ui"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "officemole",
	Short: "Remove Microsoft Office from your Mac",
	Long: `OfficeMole - Remove Microsoft Office from your Mac completely.

Removes the Office application bundles along with their caches,
preferences, containers, launch agents/daemons, and installation
receipts. Asks once before touching anything; deleting protected
locations prompts for your administrator password via sudo.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		logging.Setup(debug)
		ui.AutoDetect()

		orch := remove.New(remove.NewPrivilegedRemover(), os.Stdin, os.Stdout)
		os.Exit(orch.Run())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
