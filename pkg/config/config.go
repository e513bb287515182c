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

// Package config holds the tool's persistent settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	AppName       = "nak"
	CfgFile       = "config.toml"
	LogFile       = "nak.log"
	CfgEnv        = "NAK_CFG"
)

// Values is the on-disk shape of the config file.
type Values struct {
	SteamDir     string   `toml:"steam_dir,omitempty"`
	LibraryPaths []string `toml:"library_paths,omitempty,multiline"`
	ConfigSchema int      `toml:"config_schema"`
	DebugLogging bool     `toml:"debug_logging"`
}

// BaseDefaults is the config written on first run.
var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
}

// DefaultDir returns the directory the config file lives in.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Instance is a loaded config. Accessors are safe for concurrent use.
type Instance struct {
	fsys afero.Fs
	path string
	mu   sync.RWMutex
	vals Values
}

// NewConfig loads the config file under dir, creating it with defaults if it
// does not exist. The NAK_CFG environment variable overrides the file path.
func NewConfig(fsys afero.Fs, dir string, defaults Values) (*Instance, error) {
	path := filepath.Join(dir, CfgFile)
	if env, ok := os.LookupEnv(CfgEnv); ok && env != "" {
		path = env
	}

	cfg := &Instance{
		fsys: fsys,
		path: path,
		vals: defaults,
	}

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("check config file: %w", err)
	}
	if !exists {
		log.Info().Msg("config file not found, writing defaults")
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load re-reads the config file from disk.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := afero.ReadFile(c.fsys, c.path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var vals Values
	if err := toml.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if vals.ConfigSchema == 0 {
		vals.ConfigSchema = SchemaVersion
	}

	c.vals = vals
	log.Debug().Str("path", c.path).Msg("loaded config")
	return nil
}

// Save writes the config file to disk.
func (c *Instance) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := toml.Marshal(c.vals)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := c.fsys.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := afero.WriteFile(c.fsys, c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// SteamDir returns the user-configured Steam root, or "" for auto-detect.
func (c *Instance) SteamDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.SteamDir
}

func (c *Instance) SetSteamDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.SteamDir = dir
}

// LibraryPaths returns extra Steam library paths to scan in addition to the
// ones listed in libraryfolders.vdf.
func (c *Instance) LibraryPaths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.vals.LibraryPaths...)
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

// SetDebugLogging toggles debug logging and applies the level globally.
func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	c.vals.DebugLogging = enabled
	c.mu.Unlock()

	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
