// SPDX-License-Identifier: MPL-2.0

// Package config handles the folderfun configuration file using Viper.
//
// The file is TOML with three sections: a [settings] table of configuration
// keys consulted by the resolver before the environment, a [folders] table
// declaring folder functions to define, and a [ui] table for CLI behavior.
// The settings and folders tables are case-significant, so they are decoded
// straight from the TOML parse rather than through Viper (which lowercases
// keys); Viper carries defaults and the [ui] section.
package config
