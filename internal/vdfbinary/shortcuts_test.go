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

package vdfbinary_test

import (
	"bytes"
	"testing"

	"github.com/nak-project/nak-core/internal/vdfbinary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buf builders for hand-assembled binary VDF fixtures.

type vdfBuilder struct {
	bytes.Buffer
}

func (b *vdfBuilder) mapHeader(key string) *vdfBuilder {
	b.WriteByte(0x00)
	b.WriteString(key)
	b.WriteByte(0x00)
	return b
}

func (b *vdfBuilder) str(key, value string) *vdfBuilder {
	b.WriteByte(0x01)
	b.WriteString(key)
	b.WriteByte(0x00)
	b.WriteString(value)
	b.WriteByte(0x00)
	return b
}

func (b *vdfBuilder) num(key string, value uint32) *vdfBuilder {
	b.WriteByte(0x02)
	b.WriteString(key)
	b.WriteByte(0x00)
	b.Write([]byte{byte(value), byte(value >> 8), byte(value >> 16), byte(value >> 24)})
	return b
}

func (b *vdfBuilder) end() *vdfBuilder {
	b.WriteByte(0x08)
	return b
}

func TestParseShortcuts(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("shortcuts")

	b.mapHeader("0").
		num("appid", 0x84030201).
		str("AppName", "Control").
		str("Exe", `"/games/Control/Control_DX12.exe"`).
		str("StartDir", "/games/Control").
		num("IsHidden", 1)
	b.mapHeader("tags").end()
	b.end()

	b.mapHeader("1").
		num("appid", 0xB427FD0A).
		str("AppName", "Cyberpunk 2077").
		str("Exe", "/games/cp2077/bin/x64/Cyberpunk2077.exe").
		str("StartDir", "/games/cp2077").
		str("icon", "/games/cp2077/cyberpunk.ico")
	b.mapHeader("tags").str("0", "favorite").end()
	b.end()

	b.end() // shortcuts
	b.end() // root

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	require.Len(t, shortcuts, 2)

	assert.Equal(t, uint32(0x84030201), shortcuts[0].AppID)
	assert.Equal(t, "Control", shortcuts[0].AppName)
	assert.Contains(t, shortcuts[0].Exe, "Control_DX12.exe")
	assert.True(t, shortcuts[0].IsHidden)
	assert.Empty(t, shortcuts[0].Icon)
	assert.Empty(t, shortcuts[0].Tags)

	assert.Equal(t, uint32(0xB427FD0A), shortcuts[1].AppID)
	assert.Equal(t, "Cyberpunk 2077", shortcuts[1].AppName)
	assert.Contains(t, shortcuts[1].Icon, "cyberpunk.ico")
	assert.False(t, shortcuts[1].IsHidden)
	assert.Equal(t, []string{"favorite"}, shortcuts[1].Tags)
}

func TestParseShortcuts_EmptyFile(t *testing.T) {
	t.Parallel()

	_, err := vdfbinary.ParseShortcuts(bytes.NewReader([]byte{}))
	assert.ErrorIs(t, err, vdfbinary.ErrEmptyVDF)
}

func TestParseShortcuts_InvalidFormat(t *testing.T) {
	t.Parallel()

	// Text VDF format instead of binary
	textVdf := []byte(`"shortcuts" { }`)
	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(textVdf))
	assert.ErrorIs(t, err, vdfbinary.ErrNotBinaryVDF)
}

func TestParseShortcuts_NoShortcutsKey(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("other").end().end()

	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shortcuts")
}

// Shortcuts created by third-party tools like EmuDeck or Lutris often omit
// tags, icon, and the toggle fields entirely.
func TestParseShortcuts_MissingOptionalFields(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("shortcuts")
	b.mapHeader("0").
		num("appid", 0x04030201).
		str("AppName", "Test Game").
		str("Exe", "/path/to/game").
		str("StartDir", "/path/to")
	b.end()
	b.end()
	b.end()

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.NoError(t, err, "should parse shortcuts with missing optional fields")
	require.Len(t, shortcuts, 1)

	assert.Equal(t, uint32(0x04030201), shortcuts[0].AppID)
	assert.Equal(t, "Test Game", shortcuts[0].AppName)
	assert.Equal(t, "/path/to/game", shortcuts[0].Exe)
	assert.Equal(t, "/path/to", shortcuts[0].StartDir)
	assert.Empty(t, shortcuts[0].Icon, "missing icon should default to empty string")
	assert.False(t, shortcuts[0].IsHidden, "missing IsHidden should default to false")
	assert.Empty(t, shortcuts[0].Tags, "missing tags should default to empty slice")
}

func TestParseShortcuts_UnknownKeysSkipped(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("shortcuts")
	b.mapHeader("0").
		num("appid", 42).
		str("AppName", "Test").
		str("SomeFutureField", "ignored").
		num("AnotherFutureField", 99)
	b.end()
	b.end()
	b.end()

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)
	assert.Equal(t, "Test", shortcuts[0].AppName)
}

func TestParseShortcuts_EmptyNameDiscarded(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("shortcuts")
	b.mapHeader("0").num("appid", 1).str("AppName", "").str("Exe", "/bin/true")
	b.end()
	b.mapHeader("1").num("appid", 2).str("AppName", "Kept")
	b.end()
	b.end()
	b.end()

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)
	assert.Equal(t, "Kept", shortcuts[0].AppName)
}

// The decimal index keys are ordinals Steam happens to write; they carry no
// meaning, so gaps or odd starting points must not fail the parse.
func TestParseShortcuts_NonSequentialIndex(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("shortcuts")
	b.mapHeader("3").num("appid", 7).str("AppName", "First")
	b.end()
	b.mapHeader("10").num("appid", 8).str("AppName", "Second")
	b.end()
	b.end()
	b.end()

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	require.Len(t, shortcuts, 2)
	assert.Equal(t, "First", shortcuts[0].AppName)
	assert.Equal(t, "Second", shortcuts[1].AppName)
}

func TestParseShortcuts_UnknownTypeByte(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("shortcuts")
	b.mapHeader("0")
	// 0x05 is not a known marker; the parser must not resynchronize.
	b.WriteByte(0x05)
	b.WriteString("mystery")
	b.WriteByte(0x00)

	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.Error(t, err)
	assert.ErrorIs(t, err, vdfbinary.ErrCorruptedVDF)
}

func TestParseShortcuts_TruncatedNumber(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("shortcuts")
	b.mapHeader("0")
	b.WriteByte(0x02)
	b.WriteString("appid")
	b.WriteByte(0x00)
	b.Write([]byte{0x01, 0x02}) // only 2 bytes, needs 4

	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.Error(t, err)
}

func TestParseShortcuts_CorruptedFile(t *testing.T) {
	t.Parallel()

	// Valid start but truncated mid-parse
	corrupted := []byte{0x00, 's', 'h', 'o', 'r', 't', 'c', 'u', 't', 's', 0x00, 0x00}
	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(corrupted))
	require.Error(t, err)
}

func TestParseShortcuts_EmptyShortcutsMap(t *testing.T) {
	t.Parallel()

	var b vdfBuilder
	b.mapHeader("shortcuts").end().end()

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, shortcuts)
}

func TestWriteShortcuts_RoundTrip(t *testing.T) {
	t.Parallel()

	original := []vdfbinary.Shortcut{
		{
			AppID:              0x80000001,
			AppName:            "Mod Organizer 2",
			Exe:                `"/home/user/.local/share/nak/MO2/ModOrganizer.exe"`,
			StartDir:           "/home/user/.local/share/nak/MO2",
			Icon:               "/home/user/.local/share/nak/MO2/mo2.png",
			LaunchOptions:      "STEAM_COMPAT_DATA_PATH=/prefixes/mo2 %command%",
			IsHidden:           false,
			AllowDesktopConfig: true,
			AllowOverlay:       true,
			LastPlayTime:       1700000000,
			Tags:               []string{"NaK", "Favorite"},
		},
		{
			AppID:        0xC0FFEE42,
			AppName:      "Vortex",
			Exe:          "/opt/vortex/Vortex.exe",
			StartDir:     "/opt/vortex",
			Devkit:       true,
			DevkitGameID: "vortex-dev",
			FlatpakAppID: "com.example.Vortex",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, vdfbinary.WriteShortcuts(&buf, original))

	parsed, err := vdfbinary.ParseShortcuts(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestWriteShortcuts_AppIDWrittenFirst(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, vdfbinary.WriteShortcuts(&buf, []vdfbinary.Shortcut{
		{AppID: 0x80000002, AppName: "Game"},
	}))

	// root header + entry header for "0", then the first field must be appid.
	want := []byte{
		0x00, 's', 'h', 'o', 'r', 't', 'c', 'u', 't', 's', 0x00,
		0x00, '0', 0x00,
		0x02, 'a', 'p', 'p', 'i', 'd', 0x00, 0x02, 0x00, 0x00, 0x80,
	}
	assert.Equal(t, want, buf.Bytes()[:len(want)])
}

func TestWriteShortcuts_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, vdfbinary.WriteShortcuts(&buf, nil))

	// Header plus the two closing end-of-map bytes.
	want := []byte{0x00, 's', 'h', 'o', 'r', 't', 'c', 'u', 't', 's', 0x00, 0x08, 0x08}
	assert.Equal(t, want, buf.Bytes())
}
