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

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/nak-project/nak-core/pkg/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_WritesDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cfg, err := config.NewConfig(fsys, "/home/user/.config/nak", config.BaseDefaults)
	require.NoError(t, err)
	assert.Empty(t, cfg.SteamDir())
	assert.False(t, cfg.DebugLogging())

	exists, err := afero.Exists(fsys, filepath.Join("/home/user/.config/nak", config.CfgFile))
	require.NoError(t, err)
	assert.True(t, exists, "defaults must be persisted on first run")
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/home/user/.config/nak"

	cfg, err := config.NewConfig(fsys, dir, config.BaseDefaults)
	require.NoError(t, err)

	cfg.SetSteamDir("/mnt/ssd/Steam")
	require.NoError(t, cfg.Save())

	reloaded, err := config.NewConfig(fsys, dir, config.BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/ssd/Steam", reloaded.SteamDir())
}

func TestConfig_LoadExisting(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/etc/nak"
	content := "steam_dir = '/opt/steam'\nlibrary_paths = ['/mnt/a', '/mnt/b']\ndebug_logging = true\n"
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, config.CfgFile), []byte(content), 0o644))

	cfg, err := config.NewConfig(fsys, dir, config.BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, "/opt/steam", cfg.SteamDir())
	assert.Equal(t, []string{"/mnt/a", "/mnt/b"}, cfg.LibraryPaths())
	assert.True(t, cfg.DebugLogging())
}

func TestConfig_MalformedFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/etc/nak"
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, config.CfgFile), []byte("{not toml"), 0o644))

	_, err := config.NewConfig(fsys, dir, config.BaseDefaults)
	require.Error(t, err)
}
