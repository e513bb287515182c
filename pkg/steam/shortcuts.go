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
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/nak-project/nak-core/internal/vdfbinary"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Shortcut is a Steam non-Steam game entry.
type Shortcut = vdfbinary.Shortcut

// ShortcutsVdf is an in-memory shortcuts.vdf document. Each load fully
// materializes its own copy; nothing is shared between readers, and no
// cross-process locking is done around the load-mutate-save cycle. Callers
// that might race on the same file must serialize access themselves.
type ShortcutsVdf struct {
	Shortcuts []Shortcut

	randUint32 func() uint32
}

// NewShortcutsVdf returns an empty shortcuts document.
func NewShortcutsVdf() *ShortcutsVdf {
	return &ShortcutsVdf{randUint32: rand.Uint32}
}

// LoadShortcuts reads a shortcuts.vdf file. A missing or zero-length file
// yields an empty document, matching a Steam user who has never added a
// non-Steam game; any other read or parse failure is an error.
func LoadShortcuts(fsys afero.Fs, path string) (*ShortcutsVdf, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("no shortcuts.vdf, starting empty")
			return NewShortcutsVdf(), nil
		}
		return nil, fmt.Errorf("read shortcuts.vdf: %w", err)
	}
	if len(data) == 0 {
		return NewShortcutsVdf(), nil
	}

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	v := NewShortcutsVdf()
	v.Shortcuts = shortcuts
	return v, nil
}

// Save serializes the document back to disk, creating parent directories as
// needed. The file is fully reconstructed from the in-memory model.
func (v *ShortcutsVdf) Save(fsys afero.Fs, path string) error {
	var buf bytes.Buffer
	if err := vdfbinary.WriteShortcuts(&buf, v.Shortcuts); err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create shortcuts directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("count", len(v.Shortcuts)).Msg("wrote shortcuts.vdf")
	return nil
}

// GenerateAppID returns a fresh random shortcut AppID. The non-Steam-game
// high bit is always set.
func (v *ShortcutsVdf) GenerateAppID() uint32 {
	if v.randUint32 == nil {
		v.randUint32 = rand.Uint32
	}
	return v.randUint32() | vdfbinary.ShortcutAppIDFlag
}

// AddShortcut inserts a shortcut and returns its final AppID.
//
// The shortcut name is the caller-facing uniqueness key: any existing entry
// with the same AppName is evicted first. A zero AppID is generated, and a
// colliding AppID is regenerated until unique, so no two stored entries ever
// share a name or an id.
func (v *ShortcutsVdf) AddShortcut(s Shortcut) uint32 {
	kept := v.Shortcuts[:0]
	for _, existing := range v.Shortcuts {
		if existing.AppName == s.AppName {
			log.Debug().Str("name", s.AppName).Uint32("appid", existing.AppID).
				Msg("evicting shortcut with duplicate name")
			continue
		}
		kept = append(kept, existing)
	}
	v.Shortcuts = kept

	if s.AppID == 0 {
		s.AppID = v.GenerateAppID()
	}
	for v.hasAppID(s.AppID) {
		s.AppID = v.GenerateAppID()
	}

	v.Shortcuts = append(v.Shortcuts, s)
	return s.AppID
}

// RemoveShortcutByAppID removes the entry with the given AppID, reporting
// whether anything was removed.
func (v *ShortcutsVdf) RemoveShortcutByAppID(appID uint32) bool {
	kept := v.Shortcuts[:0]
	removed := false
	for _, s := range v.Shortcuts {
		if s.AppID == appID {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	v.Shortcuts = kept
	return removed
}

func (v *ShortcutsVdf) hasAppID(appID uint32) bool {
	for _, s := range v.Shortcuts {
		if s.AppID == appID {
			return true
		}
	}
	return false
}
