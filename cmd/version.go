package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/officemole/internal/core"
	"github.com/lakshaymaurya-felt/officemole/internal/ui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("officemole %s (%s) built %s\n", appVersion, appCommit, appDate)
		fmt.Println(ui.Muted(core.MacOSVersionString()))
	},
}
