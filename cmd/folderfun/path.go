// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"folderfun/pkg/folderfn"

	"github.com/spf13/cobra"
)

var (
	pathRoot     string
	pathVar      string
	pathPostpend string

	pathCmd = &cobra.Command{
		Use:   "path NAME [FRAGMENT]",
		Short: "Build a path under a named folder",
		Long: `Path defines the folder function NAME and prints the path it builds
for FRAGMENT (or its bare base directory when FRAGMENT is omitted).

The folder's root comes from, in priority order: the --root flag, the
--var flag resolved through the configuration sources, a [folders.NAME]
entry in the config file, or NAME itself resolved through the
configuration sources.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fragment := ""
			if len(args) == 2 {
				fragment = args[1]
			}
			return app.runPath(cmd.Context(), args[0], fragment)
		},
	}
)

func init() {
	pathCmd.Flags().StringVar(&pathRoot, "root", "", "explicit root path (skips resolution)")
	pathCmd.Flags().StringVar(&pathVar, "var", "", "configuration variable to resolve the root from")
	pathCmd.Flags().StringVar(&pathPostpend, "postpend", "", "fixed subfolder appended to the root")
}

func (a *App) runPath(ctx context.Context, name, fragment string) error {
	s, err := a.newSession(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	var extra []folderfn.DefineOption
	if pathRoot != "" {
		extra = append(extra, folderfn.WithRoot(pathRoot))
	}
	if pathVar != "" {
		extra = append(extra, folderfn.WithVar(pathVar))
	}
	if pathPostpend != "" {
		extra = append(extra, folderfn.WithPostpend(pathPostpend))
	}

	// Flags describe the definition completely; only fall back to the
	// config file's [folders] entry when no flag was given.
	var ff *folderfn.FolderFunc
	if len(extra) > 0 {
		ff, err = s.registry.Define(name, extra...)
	} else {
		ff, err = s.defineFolder(name)
	}
	if err != nil {
		a.reportError(err)
		return err
	}
	a.logger.Debug("folder function defined",
		"accessor", ff.Accessor(), "root", ff.Root(), "postpend", ff.Postpend())

	// Go back through the registry so the printed path is exactly what any
	// accessor-based caller would get.
	p, err := s.registry.Invoke(ff.Accessor(), fragment)
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintln(a.stdout, p)
	return nil
}
