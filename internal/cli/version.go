package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Заполняются через -ldflags при сборке.
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "facemask %s\n", Version)
			fmt.Fprintf(out, "  Commit: %s\n", CommitSHA)
			fmt.Fprintf(out, "  Built:  %s\n", BuildDate)
		},
	}
}
