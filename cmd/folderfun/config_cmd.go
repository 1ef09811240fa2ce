// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"folderfun/internal/config"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the folderfun configuration file",
	}

	configShowCmd = &cobra.Command{
		Use:           "show",
		Short:         "Show the effective configuration as TOML",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runConfigShow(cmd.Context())
		},
	}

	configInitCmd = &cobra.Command{
		Use:           "init",
		Short:         "Create a starter configuration file",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runConfigInit()
		},
	}

	configPathCmd = &cobra.Command{
		Use:           "path",
		Short:         "Print the default configuration file location",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runConfigPath()
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func (a *App) runConfigShow(ctx context.Context) error {
	s, err := a.newSession(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	if s.path != "" {
		fmt.Fprintln(a.stderr, SubtitleStyle.Render("# loaded from "+s.path))
	} else {
		fmt.Fprintln(a.stderr, SubtitleStyle.Render("# defaults (no config file found)"))
	}

	content, err := config.GenerateTOML(s.cfg)
	if err != nil {
		a.reportError(err)
		return err
	}
	fmt.Fprint(a.stdout, content)
	return nil
}

func (a *App) runConfigInit() error {
	path, err := config.CreateDefaultConfig()
	if err != nil {
		a.reportError(err)
		return err
	}
	fmt.Fprintln(a.stdout, PathStyle.Render(path))
	return nil
}

func (a *App) runConfigPath() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		a.reportError(err)
		return err
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}
