// NaK Core
// Copyright (c) 2026 The NaK Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of NaK Core.
//
// NaK Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// NaK Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with NaK Core.  If not, see <http://www.gnu.org/licenses/>.

// Package cli implements the command line interface shared by NaK builds.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nak-project/nak-core/pkg/config"
	"github.com/nak-project/nak-core/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// AppVersion is overridden at build time via ldflags.
var AppVersion = "dev"

type Flags struct {
	ListShortcuts *bool
	AddName       *string
	AddExe        *string
	AddStartDir   *string
	AddLaunchOpts *string
	AddIcon       *string
	RemoveAppID   *uint
	ScanApps      *bool
	Prefix        *string
	RegKey        *string
	RegValue      *string
	SteamDir      *string
	Version       *bool
	Debug         *bool
}

// SetupFlags defines all CLI flags. Call before flag.Parse.
func SetupFlags() *Flags {
	return &Flags{
		ListShortcuts: flag.Bool(
			"list-shortcuts",
			false,
			"print all non-Steam shortcuts",
		),
		AddName: flag.String(
			"add",
			"",
			"add a non-Steam shortcut with this name (requires -exe)",
		),
		AddExe: flag.String(
			"exe",
			"",
			"executable path for the new shortcut",
		),
		AddStartDir: flag.String(
			"start-dir",
			"",
			"working directory for the new shortcut",
		),
		AddLaunchOpts: flag.String(
			"launch-options",
			"",
			"launch options for the new shortcut",
		),
		AddIcon: flag.String(
			"icon",
			"",
			"icon path for the new shortcut",
		),
		RemoveAppID: flag.Uint(
			"remove",
			0,
			"remove the shortcut with this app ID",
		),
		ScanApps: flag.Bool(
			"scan",
			false,
			"list installed Steam apps across all libraries",
		),
		Prefix: flag.String(
			"prefix",
			"",
			"Wine prefix root for registry queries",
		),
		RegKey: flag.String(
			"reg-key",
			"",
			"registry key path to query (requires -prefix)",
		),
		RegValue: flag.String(
			"reg-value",
			"",
			"registry value name to query, @ for the default value",
		),
		SteamDir: flag.String(
			"steam-dir",
			"",
			"override the Steam root directory",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Debug: flag.Bool(
			"debug",
			false,
			"enable debug logging",
		),
	}
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("NaK v%s\n", AppVersion)
		os.Exit(0)
	}
}

// Setup initialises logging and loads the config file, exiting on failure.
func Setup(fsys afero.Fs, defaults config.Values, writers []io.Writer) *config.Instance {
	if err := helpers.InitLogging(config.DefaultDir(), writers); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initialising logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(fsys, config.DefaultDir(), defaults)
	if err != nil {
		log.Error().Err(err).Msg("error loading config")
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg
}

// Post applies remaining flags on top of the loaded config.
func (f *Flags) Post(cfg *config.Instance) {
	if *f.Debug {
		cfg.SetDebugLogging(true)
	}
	if *f.SteamDir != "" {
		cfg.SetSteamDir(*f.SteamDir)
	}
}
