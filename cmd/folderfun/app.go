// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"folderfun/internal/config"
	"folderfun/internal/issue"
	"folderfun/pkg/folderfn"

	"github.com/charmbracelet/log"
)

type (
	// ConfigProvider loads configuration for a command invocation and
	// reports which file supplied it ("" when only defaults applied).
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// App wires CLI services and shared dependencies. All Cobra command
	// handlers delegate through an App reference so tests can substitute
	// the config provider and capture output.
	App struct {
		provider ConfigProvider
		stdout   io.Writer
		stderr   io.Writer
		logger   *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Provider ConfigProvider
		Stdout   io.Writer
		Stderr   io.Writer
		Logger   *log.Logger
	}

	// fileConfigProvider is the production ConfigProvider.
	fileConfigProvider struct{}

	// session holds the per-invocation state built from one config load:
	// the parsed config, the settings store, and a registry resolving
	// through store-then-environment.
	session struct {
		cfg      *config.Config
		store    *config.Store
		registry *folderfn.Registry
		path     string // config file the session came from, "" for defaults
	}

	// ExitError signals a specific process exit code without an error
	// message of its own (e.g., 'exists' reporting absence).
	ExitError struct {
		Code int
	}
)

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// Load implements ConfigProvider over the config package.
func (fileConfigProvider) Load(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error) {
	return config.LoadWithPath(ctx, opts)
}

// NewApp builds an App, substituting production defaults for nil fields.
func NewApp(deps Dependencies) *App {
	if deps.Provider == nil {
		deps.Provider = fileConfigProvider{}
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Logger == nil {
		deps.Logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "folderfun",
		})
	}
	return &App{
		provider: deps.Provider,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
		logger:   deps.Logger,
	}
}

// newSession loads configuration and assembles the resolver and registry
// for one command invocation.
func (a *App) newSession(ctx context.Context) (*session, error) {
	cfg, path, err := a.provider.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return nil, err
	}
	a.logger.Debug("configuration loaded", "path", path, "folders", len(cfg.Folders))

	store := config.NewStore(cfg)
	return &session{
		cfg:      cfg,
		store:    store,
		registry: folderfn.NewRegistry(store.NewResolver()),
		path:     path,
	}, nil
}

// defineFolder defines name in the session registry, applying the config
// file's [folders] entry when one exists. A name with no entry still
// works: Define falls back to resolving the name itself.
func (s *session) defineFolder(name string) (*folderfn.FolderFunc, error) {
	var opts []folderfn.DefineOption
	if entry, ok := s.cfg.Folders[name]; ok {
		opts = entry.Options()
	}
	return s.registry.Define(name, opts...)
}

// folderNames returns the configured folder names sorted for stable output.
func (s *session) folderNames() []string {
	names := make([]string, 0, len(s.cfg.Folders))
	for name := range s.cfg.Folders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// reportError prints err to stderr in the CLI's uniform shape: the
// actionable format when available, plus the matching help page in
// verbose mode.
func (a *App) reportError(err error) {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error:"), actionable.Format(verbose))
	} else {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error:"), err.Error())
	}

	if !verbose {
		return
	}
	if page := helpPageFor(err); page != nil {
		if rendered, renderErr := page.Render("dark"); renderErr == nil {
			fmt.Fprintln(a.stderr, rendered)
		}
	}
}

// helpPageFor maps an error chain to its issue catalog page, if any.
func helpPageFor(err error) *issue.Issue {
	switch {
	case errors.Is(err, folderfn.ErrUnresolved):
		return issue.Get(issue.NameUnresolvedId)
	case errors.Is(err, folderfn.ErrNotDefined):
		return issue.Get(issue.AccessorNotFoundId)
	case errors.Is(err, config.ErrInvalidFolderEntry):
		return issue.Get(issue.ConfigLoadFailedId)
	default:
		return nil
	}
}
