// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// app is the shared composition root for all command handlers.
	app = NewApp(Dependencies{})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "folderfun",
		Short: "Path builders for named folders",
		Long: TitleStyle.Render("folderfun") + SubtitleStyle.Render(" - path builders for named folders") + `

folderfun resolves the root directories of named logical folders from
configuration (a settings file, then environment variables) and builds
paths under them, so scripts never hard-code absolute paths.

Each defined folder gets an accessor named "ff" plus the folder name:
defining "In" yields ffIn, and ffIn("sample.txt") style invocations
become 'folderfun path In sample.txt' on the command line.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'folderfun config init' to create a config file
  2. Declare folders under [folders.NAME] entries
  3. Build paths with: folderfun path NAME [FRAGMENT]

` + SubtitleStyle.Render("Examples:") + `
  folderfun resolve DATA          Resolve a configuration name to a root
  folderfun path In sample.txt    Print the path for sample.txt under In
  folderfun list                  List configured folder functions
  folderfun exists ffIn           Check whether an accessor is defined`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/folderfun/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(configCmd)
}

// initRootConfig applies global flag state before any command runs.
func initRootConfig() {
	if verbose {
		app.logger.SetLevel(log.DebugLevel)
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// fang.Execute provides styled help/errors around the Cobra tree.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
