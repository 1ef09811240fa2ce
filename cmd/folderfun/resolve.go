// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME",
	Short: "Resolve a configuration name to a folder root",
	Long: `Resolve queries the configuration sources directly and prints the
root path stored under NAME.

The settings store (the [settings] table of the config file) is consulted
before the environment, and for each source the name is tried as given,
then ALL-UPPERCASE, then all-lowercase. The first nonempty value wins and
is printed without modification.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.runResolve(cmd.Context(), args[0])
	},
}

func (a *App) runResolve(ctx context.Context, name string) error {
	s, err := a.newSession(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	value, err := s.registry.Resolver().Resolve(name)
	if err != nil {
		a.reportError(err)
		return err
	}

	a.logger.Debug("name resolved", "name", name, "value", value)
	fmt.Fprintln(a.stdout, value)
	return nil
}
