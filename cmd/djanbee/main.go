// Djanbee is a deployment helper for Django projects.
//
// It finds Django projects on the machine, prepares their virtual
// environments, and configures settings and PostgreSQL databases for
// deployment through interactive terminal prompts.
//
// Usage:
//
//	djanbee [command] [flags]
//
// See 'djanbee --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/djanbee/internal/logging"
	"github.com/muurk/djanbee/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "djanbee",
	Short: "Django Deployment Helper",
	Long: `A command-line helper for deploying Django projects.

Finds Django projects, manages their virtual environments, and
configures settings files and PostgreSQL databases through
interactive prompts.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("djanbee %s (commit: %s)\n", version.Version, version.Commit)
	},
}
