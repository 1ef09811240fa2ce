// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"folderfun/internal/testutil"
)

func writeTestConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if len(cfg.Settings) != 0 {
		t.Errorf("expected default settings to be empty, got %v", cfg.Settings)
	}
	if len(cfg.Folders) != 0 {
		t.Errorf("expected default folders to be empty, got %v", cfg.Folders)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG path behavior is only asserted on Linux")
	}

	restore := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/test-xdg-config")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	expected := filepath.Join("/tmp/test-xdg-config", AppName)
	if dir != expected {
		t.Errorf("ConfigDir() = %s, want %s", dir, expected)
	}

	restore()
	t.Cleanup(testutil.MustUnsetenv(t, "XDG_CONFIG_HOME"))
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected = filepath.Join(home, ".config", AppName)
	if dir != expected {
		t.Errorf("ConfigDir() = %s, want %s", dir, expected)
	}
}

func TestConfigDirOverride(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigDirOverride("/custom/dir")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if dir != "/custom/dir" {
		t.Errorf("ConfigDir() = %s, want override", dir)
	}
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, path, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty when only defaults apply", path)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("ColorScheme = %s, want default", cfg.UI.ColorScheme)
	}
}

func TestLoadPreservesCaseInSettingsAndFolders(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, `
[settings]
Data = "/exact/case"
DATA = "/upper/case"

[folders.In]
root = "/data/raw"

[folders.RAW_DATA]
var = "Data"
postpend = "proj1"

[ui]
verbose = true
`)

	cfg, path, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if path == "" {
		t.Fatal("expected a resolved config file path")
	}

	if cfg.Settings["Data"] != "/exact/case" {
		t.Errorf("Settings[Data] = %q, want exact-case key preserved", cfg.Settings["Data"])
	}
	if cfg.Settings["DATA"] != "/upper/case" {
		t.Errorf("Settings[DATA] = %q, want distinct from Data", cfg.Settings["DATA"])
	}

	if _, ok := cfg.Folders["In"]; !ok {
		t.Errorf("Folders missing mixed-case key In: %v", cfg.Folders)
	}
	entry, ok := cfg.Folders["RAW_DATA"]
	if !ok {
		t.Fatalf("Folders missing RAW_DATA: %v", cfg.Folders)
	}
	if entry.Var != "Data" || entry.Postpend != "proj1" {
		t.Errorf("RAW_DATA entry = %+v", entry)
	}

	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want value from file")
	}
	// The file omits color_scheme; the default must survive the merge.
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %s, want default auto", cfg.UI.ColorScheme)
	}
}

func TestLoadExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestConfig(t, dir, "[folders.Out]\nroot = \"/out\"\n")

	cfg, resolved, err := LoadWithPath(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Folders["Out"].Root != "/out" {
		t.Errorf("Folders[Out].Root = %q", cfg.Folders["Out"].Root)
	}
}

func TestLoadExplicitConfigFileMissing(t *testing.T) {
	_, _, err := LoadWithPath(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.toml"),
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "load configuration") {
		t.Errorf("error missing operation context: %v", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "[folders\nbroken")

	_, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoadInvalidColorScheme(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "[ui]\ncolor_scheme = \"neon\"\n")

	_, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("expected ErrInvalidColorScheme, got %v", err)
	}
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := LoadWithPath(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestProviderLoad(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	writeTestConfig(t, dir, "[folders.In]\nroot = \"/in\"\n")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Folders["In"].Root != "/in" {
		t.Errorf("Folders[In].Root = %q", cfg.Folders["In"].Root)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Cleanup(Reset)
	dir := filepath.Join(t.TempDir(), "nested")
	SetConfigDirOverride(dir)

	path, err := CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// A second call must not overwrite the existing file.
	if err := os.WriteFile(path, []byte("[folders.Keep]\nroot = \"/keep\"\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
	if _, err := CreateDefaultConfig(); err != nil {
		t.Fatalf("second CreateDefaultConfig returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "Keep") {
		t.Error("CreateDefaultConfig overwrote an existing file")
	}
}

func TestGenerateTOMLRoundTrip(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()
	SetConfigDirOverride(dir)

	cfg := DefaultConfig()
	cfg.Settings["DATA"] = "/srv/data"
	cfg.Folders["In"] = FolderEntry{Root: "/data/raw", Postpend: "proj1"}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("load after Save returned error: %v", err)
	}
	if loaded.Settings["DATA"] != "/srv/data" {
		t.Errorf("Settings[DATA] = %q after round trip", loaded.Settings["DATA"])
	}
	if loaded.Folders["In"].Root != "/data/raw" || loaded.Folders["In"].Postpend != "proj1" {
		t.Errorf("Folders[In] = %+v after round trip", loaded.Folders["In"])
	}
}

func TestFolderEntryValidate(t *testing.T) {
	if err := (FolderEntry{Root: "/ok"}).Validate("In"); err != nil {
		t.Errorf("valid entry rejected: %v", err)
	}
	if err := (FolderEntry{Root: "   "}).Validate("In"); !errors.Is(err, ErrInvalidFolderEntry) {
		t.Errorf("whitespace root accepted: %v", err)
	}
	if err := (FolderEntry{}).Validate("  "); !errors.Is(err, ErrInvalidFolderEntry) {
		t.Errorf("blank name accepted: %v", err)
	}
}
