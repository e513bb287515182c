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

// Package steam reads Steam's on-disk state: app manifests, library folder
// lists, and the binary shortcuts.vdf for non-Steam games.
package steam

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/nak-project/nak-core/pkg/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// StateFlagsFullyInstalled is the StateFlags value Steam writes once an app
// is fully installed. The manifest field is a bitfield, but "fully
// installed" is the only pattern this tool cares about.
const StateFlagsFullyInstalled uint32 = 4

// AppManifest contains metadata for a Steam app from its
// appmanifest_*.acf file.
type AppManifest struct {
	AppID      string
	Name       string
	InstallDir string
	StateFlags uint32
}

// IsInstalled reports whether the app is fully installed.
func (m AppManifest) IsInstalled() bool {
	return m.StateFlags == StateFlagsFullyInstalled
}

// ParseAppManifest projects a manifest out of text VDF content. It requires
// a top-level AppState object with appid, name, and installdir strings; a
// missing or unparsable StateFlags falls back to 0 rather than failing the
// whole projection, since Steam has changed that field's shape before.
func ParseAppManifest(content string) (AppManifest, bool) {
	v, err := vdf.Parse(content)
	if err != nil {
		log.Debug().Err(err).Msg("failed to parse app manifest vdf")
		return AppManifest{}, false
	}

	appState, ok := v.GetObject("AppState")
	if !ok {
		log.Debug().Msg("AppState not found in manifest")
		return AppManifest{}, false
	}
	state := vdf.ObjectValue(appState)

	appID, ok := state.GetString("appid")
	if !ok {
		return AppManifest{}, false
	}
	name, ok := state.GetString("name")
	if !ok {
		return AppManifest{}, false
	}
	installDir, ok := state.GetString("installdir")
	if !ok {
		return AppManifest{}, false
	}

	var stateFlags uint32
	if flagsStr, ok := state.GetString("StateFlags"); ok {
		if flags, err := strconv.ParseUint(flagsStr, 10, 32); err == nil {
			stateFlags = uint32(flags)
		}
	}

	return AppManifest{
		AppID:      appID,
		Name:       name,
		InstallDir: installDir,
		StateFlags: stateFlags,
	}, true
}

// ReadAppManifest reads a Steam app manifest by AppID.
// steamAppsDir should point to a steamapps directory.
func ReadAppManifest(fsys afero.Fs, steamAppsDir string, appID int) (AppManifest, bool) {
	manifestPath := filepath.Join(steamAppsDir, fmt.Sprintf("appmanifest_%d.acf", appID))

	content, err := afero.ReadFile(fsys, manifestPath)
	if err != nil {
		log.Debug().Err(err).Int("appID", appID).Msg("failed to read app manifest")
		return AppManifest{}, false
	}

	m, ok := ParseAppManifest(string(content))
	if !ok {
		log.Warn().Int("appID", appID).Str("path", manifestPath).Msg("malformed app manifest")
	}
	return m, ok
}
