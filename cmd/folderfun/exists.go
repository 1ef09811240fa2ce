// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Use:   "exists ACCESSOR",
	Short: "Check whether an accessor is defined",
	Long: `Exists defines the folders declared in the config file and reports
whether ACCESSOR (e.g. "ffIn") is among the resulting accessor names.
Prints true or false; the exit code is 0 when defined, 1 otherwise.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.runExists(cmd.Context(), args[0])
	},
}

func (a *App) runExists(ctx context.Context, accessor string) error {
	s, err := a.newSession(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	// Unresolvable folders are irrelevant here; an accessor only exists
	// once its definition succeeded.
	for _, name := range s.folderNames() {
		_, _ = s.defineFolder(name)
	}

	if !s.registry.Exists(accessor) {
		fmt.Fprintln(a.stdout, "false")
		return &ExitError{Code: 1}
	}
	fmt.Fprintln(a.stdout, "true")
	return nil
}
