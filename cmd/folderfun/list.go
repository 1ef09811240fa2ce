// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured folder functions",
	Long: `List defines every folder declared in the config file's [folders]
table (in name order) and prints each accessor with its effective base
directory. Folders whose root cannot be resolved are reported on stderr
and skipped.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.runList(cmd.Context())
	},
}

func (a *App) runList(ctx context.Context) error {
	s, err := a.newSession(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	names := s.folderNames()
	if len(names) == 0 {
		fmt.Fprintln(a.stdout, SubtitleStyle.Render("no folders configured"))
		return nil
	}

	failed := 0
	for _, name := range names {
		if _, err := s.defineFolder(name); err != nil {
			failed++
			fmt.Fprintln(a.stderr, ErrorStyle.Render(fmt.Sprintf("skipping %q: %v", name, err)))
		}
	}

	for _, entry := range s.registry.List() {
		fmt.Fprintf(a.stdout, "%s\t%s\n",
			AccessorStyle.Render(entry.Accessor), PathStyle.Render(entry.Base))
	}

	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
