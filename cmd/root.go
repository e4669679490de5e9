package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags "-X github.com/keiv-fly/calc-repo-lines/cmd.version=..." at build time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "calc-repo-lines <repository-url>",
	Short: "Count total and non-blank lines in a remote git repository",
	Long: `Shallow-clones a repository into a temporary directory, counts the
lines of every file outside .git, prints the totals and appends a
timestamped record to the results file.`,
	Example:       "  calc-repo-lines https://github.com/user/repo --branch main",
	Version:       version,
	Args:          cobra.ExactArgs(1),
	RunE:          runLines,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command. Cancelling ctx stops a running clone or
// count, and the temporary checkout is still removed.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// envOr returns the value of the environment variable key, or def when it is
// unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
