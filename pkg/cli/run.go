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

package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nak-project/nak-core/pkg/config"
	"github.com/nak-project/nak-core/pkg/steam"
	"github.com/nak-project/nak-core/pkg/wine"
	"github.com/spf13/afero"
)

// ErrNoAction is returned when no action flag was given.
var ErrNoAction = errors.New("no action specified, see -help")

// Run dispatches to the action selected by the parsed flags.
func (f *Flags) Run(cfg *config.Instance, fsys afero.Fs) error {
	switch {
	case *f.RegKey != "":
		return f.queryRegistry(fsys)
	case *f.ListShortcuts:
		return f.listShortcuts(cfg, fsys)
	case *f.AddName != "":
		return f.addShortcut(cfg, fsys)
	case *f.RemoveAppID != 0:
		return f.removeShortcut(cfg, fsys)
	case *f.ScanApps:
		return f.scanApps(cfg, fsys)
	default:
		return ErrNoAction
	}
}

func (f *Flags) queryRegistry(fsys afero.Fs) error {
	if *f.Prefix == "" {
		return errors.New("-reg-key requires -prefix")
	}

	p := wine.NewPrefix(fsys, *f.Prefix)
	value, ok := p.ReadRegistryValue(*f.RegKey, *f.RegValue)
	if !ok {
		return fmt.Errorf("registry value not found: %s\\%s", *f.RegKey, *f.RegValue)
	}

	if linux, ok := wine.WinePathToLinux(value); ok {
		fmt.Printf("%s\t%s\n", value, linux)
	} else {
		fmt.Println(value)
	}
	return nil
}

func (f *Flags) listShortcuts(cfg *config.Instance, fsys afero.Fs) error {
	steamDir, ok := steam.FindSteamDir(fsys, cfg.SteamDir())
	if !ok {
		return errors.New("steam installation not found")
	}

	for _, path := range steam.FindShortcutsFiles(fsys, steamDir) {
		doc, err := steam.LoadShortcuts(fsys, path)
		if err != nil {
			return err
		}

		fmt.Printf("%s:\n", path)
		for _, s := range doc.Shortcuts {
			fmt.Printf("  %d\t%s\t%s\n", s.AppID, s.AppName, s.Exe)
		}
	}
	return nil
}

func (f *Flags) addShortcut(cfg *config.Instance, fsys afero.Fs) error {
	if *f.AddExe == "" {
		return errors.New("-add requires -exe")
	}

	startDir := *f.AddStartDir
	if startDir == "" {
		startDir = filepath.Dir(*f.AddExe)
	}

	shortcut := steam.Shortcut{
		AppName:            *f.AddName,
		Exe:                *f.AddExe,
		StartDir:           startDir,
		Icon:               *f.AddIcon,
		LaunchOptions:      *f.AddLaunchOpts,
		AllowDesktopConfig: true,
		AllowOverlay:       true,
	}

	return forEachShortcutsFile(cfg, fsys, func(doc *steam.ShortcutsVdf) error {
		appID := doc.AddShortcut(shortcut)
		fmt.Printf("added %q with app ID %d\n", shortcut.AppName, appID)
		return nil
	})
}

func (f *Flags) removeShortcut(cfg *config.Instance, fsys afero.Fs) error {
	appID := uint32(*f.RemoveAppID)

	return forEachShortcutsFile(cfg, fsys, func(doc *steam.ShortcutsVdf) error {
		if doc.RemoveShortcutByAppID(appID) {
			fmt.Printf("removed shortcut %d\n", appID)
		}
		return nil
	})
}

func (f *Flags) scanApps(cfg *config.Instance, fsys afero.Fs) error {
	steamDir, ok := steam.FindSteamDir(fsys, cfg.SteamDir())
	if !ok {
		return errors.New("steam installation not found")
	}

	steamAppsDir := steam.FindSteamAppsDir(fsys, steamDir)
	apps := steam.ScanInstalledApps(fsys, steamAppsDir)
	for _, lib := range cfg.LibraryPaths() {
		apps = append(apps, steam.ScanLibrary(fsys, filepath.Join(lib, "steamapps"))...)
	}

	for _, app := range apps {
		state := "installed"
		if !app.IsInstalled() {
			state = "partial"
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", app.AppID, app.Name, app.InstallDir, state)
	}
	return nil
}

// forEachShortcutsFile runs a mutation against every user's shortcuts.vdf
// and saves each document back out.
func forEachShortcutsFile(cfg *config.Instance, fsys afero.Fs,
	mutate func(*steam.ShortcutsVdf) error,
) error {
	steamDir, ok := steam.FindSteamDir(fsys, cfg.SteamDir())
	if !ok {
		return errors.New("steam installation not found")
	}

	paths := steam.FindShortcutsFiles(fsys, steamDir)
	if len(paths) == 0 {
		return errors.New("no shortcuts.vdf found under userdata")
	}

	for _, path := range paths {
		doc, err := steam.LoadShortcuts(fsys, path)
		if err != nil {
			return err
		}
		if err := mutate(doc); err != nil {
			return err
		}
		if err := doc.Save(fsys, path); err != nil {
			return err
		}
	}
	return nil
}
