package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build with
// -ldflags "-X github.com/abhisek/mathdrill/cmd.version=...".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show which mathdrill build this is",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mathdrill %s\n", version)
	},
}
