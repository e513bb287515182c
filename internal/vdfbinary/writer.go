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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

// WriteShortcuts serializes shortcuts into the shortcuts.vdf binary grammar.
//
// Steam's own reader expects appid to be the first field of every entry; the
// remaining fields follow in a fixed order matching what the Steam client
// writes. Values containing NUL bytes are out of contract and will corrupt
// the framing.
func WriteShortcuts(w io.Writer, shortcuts []Shortcut) error {
	bw := bufio.NewWriter(w)

	writeMapHeader(bw, "shortcuts")
	for i := range shortcuts {
		writeShortcut(bw, strconv.Itoa(i), &shortcuts[i])
	}
	bw.WriteByte(vdfMarkerEndOfMap) // shortcuts map
	bw.WriteByte(vdfMarkerEndOfMap) // root map

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write shortcuts: %w", err)
	}
	return nil
}

func writeShortcut(bw *bufio.Writer, index string, s *Shortcut) {
	writeMapHeader(bw, index)

	writeUintField(bw, "appid", s.AppID)
	writeStringField(bw, "AppName", s.AppName)
	writeStringField(bw, "Exe", s.Exe)
	writeStringField(bw, "StartDir", s.StartDir)
	writeStringField(bw, "icon", s.Icon)
	writeStringField(bw, "ShortcutPath", s.ShortcutPath)
	writeStringField(bw, "LaunchOptions", s.LaunchOptions)
	writeBoolField(bw, "IsHidden", s.IsHidden)
	writeBoolField(bw, "AllowDesktopConfig", s.AllowDesktopConfig)
	writeBoolField(bw, "AllowOverlay", s.AllowOverlay)
	writeBoolField(bw, "OpenVR", s.OpenVR)
	writeBoolField(bw, "Devkit", s.Devkit)
	writeStringField(bw, "DevkitGameID", s.DevkitGameID)
	writeUintField(bw, "DevkitOverrideAppID", s.DevkitOverrideAppID)
	writeUintField(bw, "LastPlayTime", s.LastPlayTime)
	writeStringField(bw, "FlatpakAppID", s.FlatpakAppID)

	writeMapHeader(bw, "tags")
	for i, tag := range s.Tags {
		writeStringField(bw, strconv.Itoa(i), tag)
	}
	bw.WriteByte(vdfMarkerEndOfMap) // tags map

	bw.WriteByte(vdfMarkerEndOfMap) // shortcut entry
}

func writeMapHeader(bw *bufio.Writer, key string) {
	bw.WriteByte(vdfMarkerMap)
	bw.WriteString(key)
	bw.WriteByte(vdfMarkerEndOfString)
}

func writeStringField(bw *bufio.Writer, key, value string) {
	bw.WriteByte(vdfMarkerString)
	bw.WriteString(key)
	bw.WriteByte(vdfMarkerEndOfString)
	bw.WriteString(value)
	bw.WriteByte(vdfMarkerEndOfString)
}

func writeUintField(bw *bufio.Writer, key string, value uint32) {
	bw.WriteByte(vdfMarkerNumber)
	bw.WriteString(key)
	bw.WriteByte(vdfMarkerEndOfString)

	var bf [4]byte
	binary.LittleEndian.PutUint32(bf[:], value)
	bw.Write(bf[:])
}

func writeBoolField(bw *bufio.Writer, key string, value bool) {
	var n uint32
	if value {
		n = 1
	}
	writeUintField(bw, key, n)
}
