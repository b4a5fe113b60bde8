package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release pipeline via -ldflags.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quizdeck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quizdeck %s\n", version)
	},
}
