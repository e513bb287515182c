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

package steam

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// FlatpakSteamID is the Flatpak app ID for Steam.
const FlatpakSteamID = "com.valvesoftware.Steam"

// DefaultSteamDirs returns the locations where a Steam root directory is
// commonly found on Linux, in probe order.
func DefaultSteamDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get user home directory")
		return nil
	}

	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(xdg.DataHome, "Steam"),
		// Flatpak
		filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam"),
		// Snap
		filepath.Join(home, "snap", "steam", "common", ".steam", "steam"),
		"/usr/games/steam",
		"/opt/steam",
	}
}

// FindSteamDir locates the Steam root directory. A non-empty configured
// path wins if it exists; otherwise the default locations are probed.
func FindSteamDir(fsys afero.Fs, configured string) (string, bool) {
	if configured != "" {
		if ok, _ := afero.DirExists(fsys, configured); ok {
			log.Debug().Msgf("using configured Steam directory: %s", configured)
			return configured, true
		}
		log.Warn().Msgf("configured Steam directory not found: %s", configured)
	}

	for _, path := range DefaultSteamDirs() {
		if ok, _ := afero.DirExists(fsys, path); ok {
			log.Debug().Msgf("found Steam installation: %s", path)
			return path, true
		}
	}

	log.Debug().Msg("Steam installation not found")
	return "", false
}

// FindSteamAppsDir finds the steamapps directory under a Steam root.
// It checks for both lowercase and mixed-case "steamapps" directories.
func FindSteamAppsDir(fsys afero.Fs, steamDir string) string {
	candidates := []string{
		"steamapps",
		"SteamApps",
		"steam/steamapps",
	}

	for _, candidate := range candidates {
		path := filepath.Join(steamDir, candidate)
		if ok, _ := afero.DirExists(fsys, path); ok {
			return path
		}
	}

	// Default fallback
	return filepath.Join(steamDir, "steamapps")
}

// ScanInstalledApps reads every library listed in the main steamapps
// directory's libraryfolders.vdf and returns the manifest of each app found.
// Unreadable libraries and malformed manifests are skipped, not fatal.
func ScanInstalledApps(fsys afero.Fs, steamAppsDir string) []AppManifest {
	content, err := afero.ReadFile(fsys, filepath.Join(steamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("failed to read libraryfolders.vdf")
		return nil
	}

	var apps []AppManifest
	for _, libraryPath := range ParseLibraryFolders(string(content)) {
		apps = append(apps, ScanLibrary(fsys, filepath.Join(libraryPath, "steamapps"))...)
	}

	return apps
}

// ScanLibrary returns the manifest of every app in one steamapps directory.
func ScanLibrary(fsys afero.Fs, libSteamApps string) []AppManifest {
	entries, err := afero.ReadDir(fsys, libSteamApps)
	if err != nil {
		log.Debug().Err(err).Str("path", libSteamApps).Msg("error listing steamapps folder")
		return nil
	}

	var apps []AppManifest
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "appmanifest_") || !strings.HasSuffix(name, ".acf") {
			continue
		}

		manifestPath := filepath.Join(libSteamApps, name)
		data, err := afero.ReadFile(fsys, manifestPath)
		if err != nil {
			log.Warn().Err(err).Msgf("error reading manifest: %s", manifestPath)
			continue
		}

		m, ok := ParseAppManifest(string(data))
		if !ok {
			log.Warn().Msgf("malformed manifest: %s", manifestPath)
			continue
		}
		apps = append(apps, m)
	}

	return apps
}

// FindShortcutsFiles locates every userdata/<id>/config/shortcuts.vdf under
// a Steam root directory. Users who never added a non-Steam game have no
// shortcuts.vdf; those userdata entries are simply skipped.
func FindShortcutsFiles(fsys afero.Fs, steamDir string) []string {
	userdataDir := filepath.Join(steamDir, "userdata")

	userDirs, err := afero.ReadDir(fsys, userdataDir)
	if err != nil {
		log.Debug().Err(err).Str("path", userdataDir).Msg("Steam userdata directory not readable")
		return nil
	}

	var paths []string
	for _, userDir := range userDirs {
		if !userDir.IsDir() {
			continue
		}
		shortcutsPath := filepath.Join(userdataDir, userDir.Name(), "config", "shortcuts.vdf")
		if ok, _ := afero.Exists(fsys, shortcutsPath); ok {
			paths = append(paths, shortcutsPath)
		}
	}

	log.Debug().Int("count", len(paths)).Msg("found shortcuts files")
	return paths
}
