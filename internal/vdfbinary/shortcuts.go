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

package vdfbinary

import (
	"errors"
	"io"
	"strconv"
)

// ShortcutAppIDFlag is the high bit Steam sets on every non-Steam game
// AppID. Generated IDs always carry it; it is never cleared.
const ShortcutAppIDFlag uint32 = 0x80000000

// Shortcut represents a Steam non-Steam game shortcut. Every field except
// AppName is optional in the on-disk format; third-party tools like EmuDeck
// and Lutris routinely omit them, so missing fields decode to zero values.
// Fields are ordered for optimal memory alignment.
type Shortcut struct {
	AppName             string
	Exe                 string
	StartDir            string
	Icon                string
	ShortcutPath        string
	LaunchOptions       string
	DevkitGameID        string
	FlatpakAppID        string
	Tags                []string
	AppID               uint32
	DevkitOverrideAppID uint32
	LastPlayTime        uint32
	IsHidden            bool
	AllowDesktopConfig  bool
	AllowOverlay        bool
	OpenVR              bool
	Devkit              bool
}

// ParseShortcuts parses Steam's shortcuts.vdf binary format.
//
// Entries appear in the order they were read from the stream; the decimal
// index keys Steam writes are not semantically validated. Entries with an
// empty AppName are discarded, and unrecognized keys of known types are read
// but not stored, so files written by newer Steam builds still parse.
func ParseShortcuts(buf io.Reader) ([]Shortcut, error) {
	vdf, err := Parse(buf)
	if err != nil {
		return nil, err
	}

	shortcutsMap, ok := vdf.GetMap("shortcuts")
	if !ok {
		return nil, errors.New("could not find 'shortcuts' in parsed vdf")
	}

	shortcuts := make([]Shortcut, 0, shortcutsMap.Len())

	for _, key := range shortcutsMap.Keys() {
		entry, ok := shortcutsMap.Get(key)
		if !ok {
			continue
		}
		if _, isMap := entry.AsMap(); !isMap {
			// Stray scalar where a shortcut block should be; skip it.
			continue
		}

		s := decodeShortcut(entry)
		if s.AppName == "" {
			continue
		}
		shortcuts = append(shortcuts, s)
	}

	return shortcuts, nil
}

func decodeShortcut(entry VdfValue) Shortcut {
	var s Shortcut

	s.AppID, _ = entry.GetUint("appid")
	s.AppName, _ = entry.GetString("AppName")
	s.Exe, _ = entry.GetString("Exe")
	s.StartDir, _ = entry.GetString("StartDir")
	s.Icon, _ = entry.GetString("icon")
	s.ShortcutPath, _ = entry.GetString("ShortcutPath")
	s.LaunchOptions, _ = entry.GetString("LaunchOptions")
	s.DevkitGameID, _ = entry.GetString("DevkitGameID")
	s.FlatpakAppID, _ = entry.GetString("FlatpakAppID")
	s.DevkitOverrideAppID, _ = entry.GetUint("DevkitOverrideAppID")
	s.LastPlayTime, _ = entry.GetUint("LastPlayTime")
	s.IsHidden, _ = entry.GetBool("IsHidden")
	s.AllowDesktopConfig, _ = entry.GetBool("AllowDesktopConfig")
	s.AllowOverlay, _ = entry.GetBool("AllowOverlay")
	s.OpenVR, _ = entry.GetBool("OpenVR")
	s.Devkit, _ = entry.GetBool("Devkit")

	if tagsMap, ok := entry.GetMap("tags"); ok {
		for i := range tagsMap.Len() {
			t, ok := tagsMap.Get(strconv.Itoa(i))
			if !ok {
				break
			}
			ts, ok := t.AsString()
			if !ok {
				continue
			}
			s.Tags = append(s.Tags, ts)
		}
	}

	return s
}
