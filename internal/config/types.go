// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"folderfun/pkg/folderfn"
)

var (
	// ErrInvalidFolderEntry is the sentinel error wrapped by InvalidFolderEntryError.
	ErrInvalidFolderEntry = errors.New("invalid folder entry")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// FolderEntry declares one folder function in the [folders] table.
	// All fields are optional: an entry with no root and no var resolves
	// through the folder's own name.
	FolderEntry struct {
		// Root is an explicit base path; when set, no resolution happens.
		Root string `toml:"root,omitempty" mapstructure:"root"`
		// Var names the configuration variable to resolve the root from.
		Var string `toml:"var,omitempty" mapstructure:"var"`
		// Postpend is a fixed subfolder appended to the root.
		Postpend string `toml:"postpend,omitempty" mapstructure:"postpend"`
	}

	// InvalidFolderEntryError is returned when a FolderEntry has invalid
	// fields. It wraps ErrInvalidFolderEntry for errors.Is() compatibility.
	InvalidFolderEntryError struct {
		Name        string
		FieldErrors []error
	}

	// UIConfig configures CLI output behavior.
	UIConfig struct {
		// ColorScheme selects "auto", "dark", or "light".
		ColorScheme ColorScheme `toml:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables diagnostic logging.
		Verbose bool `toml:"verbose" mapstructure:"verbose"`
	}

	// Config holds the folderfun application configuration.
	Config struct {
		// Settings are configuration keys consulted by the resolver before
		// the process environment. Keys are case-sensitive.
		Settings map[string]string `toml:"settings,omitempty" mapstructure:"-"`
		// Folders declares folder functions keyed by name (case preserved;
		// the name determines the accessor, e.g. "In" -> "ffIn").
		Folders map[string]FolderEntry `toml:"folders,omitempty" mapstructure:"-"`
		// UI configures the CLI.
		UI UIConfig `toml:"ui" mapstructure:"ui"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Settings: map[string]string{},
		Folders:  map[string]FolderEntry{},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Options converts the entry into Define options for folderfn.Registry.
func (e FolderEntry) Options() []folderfn.DefineOption {
	var opts []folderfn.DefineOption
	if e.Root != "" {
		opts = append(opts, folderfn.WithRoot(e.Root))
	}
	if e.Var != "" {
		opts = append(opts, folderfn.WithVar(e.Var))
	}
	if e.Postpend != "" {
		opts = append(opts, folderfn.WithPostpend(e.Postpend))
	}
	return opts
}

// Validate checks the entry declared under name for field problems that
// TOML parsing cannot catch: whitespace-only values and an empty name.
func (e FolderEntry) Validate(name string) error {
	var fieldErrs []error
	if strings.TrimSpace(name) == "" {
		fieldErrs = append(fieldErrs, fmt.Errorf("folder name must not be empty"))
	}
	if e.Root != "" && strings.TrimSpace(e.Root) == "" {
		fieldErrs = append(fieldErrs, fmt.Errorf("root must not be whitespace-only"))
	}
	if e.Var != "" && strings.TrimSpace(e.Var) == "" {
		fieldErrs = append(fieldErrs, fmt.Errorf("var must not be whitespace-only"))
	}
	if len(fieldErrs) > 0 {
		return &InvalidFolderEntryError{Name: name, FieldErrors: fieldErrs}
	}
	return nil
}

// IsValid reports whether the color scheme is one of the known values.
func (c ColorScheme) IsValid() bool {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true
	}
	return false
}

// Validate checks all folder entries and the UI section.
func (c *Config) Validate() error {
	for name, entry := range c.Folders {
		if err := entry.Validate(name); err != nil {
			return err
		}
	}
	if c.UI.ColorScheme != "" && !c.UI.ColorScheme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidColorScheme, c.UI.ColorScheme)
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidFolderEntryError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%v: %q: %s", ErrInvalidFolderEntry, e.Name, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidFolderEntry so callers can match with errors.Is.
func (e *InvalidFolderEntryError) Unwrap() error {
	return ErrInvalidFolderEntry
}
