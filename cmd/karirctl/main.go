// Command karirctl runs the CV analyzer and job scorer offline and handles
// database chores for the API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "karirctl",
		Short:         "Karir Nusantara command line tools",
		Long:          "karirctl scores CVs and job matches from local files and manages the job database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("log-json", false, "Emit JSON logs")
	root.PersistentFlags().Bool("debug", false, "Enable debug logs")

	root.AddCommand(
		newAnalyzeCVCmd(),
		newRecommendCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newTokenCmd(),
	)
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
