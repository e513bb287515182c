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

// Package wine reads state out of Wine/Proton prefixes: registry values
// from the system.reg/user.reg exports and Windows-to-Linux path mapping.
package wine

import (
	"bufio"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Prefix is a Wine/Proton prefix root containing system.reg and user.reg.
type Prefix struct {
	fsys afero.Fs
	root string
}

// NewPrefix wraps a prefix root directory.
func NewPrefix(fsys afero.Fs, root string) Prefix {
	return Prefix{fsys: fsys, root: root}
}

// Root returns the prefix root directory.
func (p Prefix) Root() string {
	return p.root
}

// registry files in lookup order. Values found in system.reg shadow
// user.reg, and within a file the non-Wow64 section shadows the
// Wow6432Node one.
var registryFiles = []string{"system.reg", "user.reg"}

// ReadRegistryValue looks up a value by key path and value name, e.g.
// ("Software\\Bethesda Softworks\\Skyrim", "Installed Path"). Both the
// plain key and its Wow6432Node variant are checked, since 32-bit
// installers land under Wow6432Node on a 64-bit prefix. String values are
// returned decoded; dword values are rendered as decimal strings. A value
// that exists nowhere yields ("", false); that is not an error state.
func (p Prefix) ReadRegistryValue(keyPath, valueName string) (string, bool) {
	candidates := sectionCandidates(keyPath)

	for _, name := range registryFiles {
		value, ok := p.readFromFile(name, candidates, valueName)
		if ok {
			return value, true
		}
	}

	log.Debug().Str("key", keyPath).Str("value", valueName).Msg("registry value not found")
	return "", false
}

// sectionCandidates returns the bracketed section headers that could hold
// keyPath, lowercased with backslashes doubled the way Wine writes them.
// The second candidate is the Wow6432Node form: a leading "Software\" is
// stripped and reinserted under "Software\Wow6432Node\".
func sectionCandidates(keyPath string) [2]string {
	rest := keyPath
	const softwarePrefix = `software\`
	if len(rest) >= len(softwarePrefix) && strings.EqualFold(rest[:len(softwarePrefix)], softwarePrefix) {
		rest = rest[len(softwarePrefix):]
	}
	wowPath := `Software\Wow6432Node\` + rest

	return [2]string{
		strings.ToLower(strings.ReplaceAll(keyPath, `\`, `\\`)),
		strings.ToLower(strings.ReplaceAll(wowPath, `\`, `\\`)),
	}
}

func (p Prefix) readFromFile(fileName string, candidates [2]string, valueName string) (string, bool) {
	f, err := p.fsys.Open(filepath.Join(p.root, fileName))
	if err != nil {
		log.Debug().Err(err).Str("file", fileName).Msg("registry file not readable")
		return "", false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("file", fileName).Msg("error closing registry file")
		}
	}()

	// First match per candidate section; the non-Wow64 section wins even if
	// the Wow6432Node one appears earlier in the file.
	var matches [2]*string
	current := -1

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if strings.HasPrefix(line, "[") {
			current = -1
			end := strings.Index(line, "]")
			if end < 0 {
				continue
			}
			header := strings.ToLower(line[1:end])
			for i, candidate := range candidates {
				if header == candidate {
					current = i
					break
				}
			}
			continue
		}

		// Blank lines do not terminate a section; only a new header does.
		if current < 0 || line == "" {
			continue
		}

		name, value, ok := parseValueLine(line)
		if !ok {
			continue
		}
		if strings.EqualFold(name, valueName) && matches[current] == nil {
			v := value
			matches[current] = &v
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Str("file", fileName).Msg("error scanning registry file")
		return "", false
	}

	for _, m := range matches {
		if m != nil {
			return *m, true
		}
	}
	return "", false
}

// parseValueLine decodes one "Name"="Value", @="Value" or
// "Name"=dword:XXXXXXXX line. Unsupported value types (str(2):, hex(7):,
// line continuations) are skipped, not errors; the .reg format is owned by
// Wine and grows fields without notice.
func parseValueLine(line string) (name, value string, ok bool) {
	var rest string

	switch {
	case strings.HasPrefix(line, "@="):
		name = "@"
		rest = line[len("@="):]
	case strings.HasPrefix(line, `"`):
		var decoded string
		var remainder string
		decoded, remainder, ok = decodeQuoted(line)
		if !ok || !strings.HasPrefix(remainder, "=") {
			return "", "", false
		}
		name = decoded
		rest = remainder[1:]
	default:
		return "", "", false
	}

	if strings.HasPrefix(rest, `"`) {
		decoded, _, ok := decodeQuoted(rest)
		if !ok {
			return "", "", false
		}
		return name, decoded, true
	}

	if hexDigits, isDword := strings.CutPrefix(rest, "dword:"); isDword {
		n, err := strconv.ParseUint(strings.TrimSpace(hexDigits), 16, 32)
		if err != nil {
			return "", "", false
		}
		return name, strconv.FormatUint(n, 10), true
	}

	return "", "", false
}

// decodeQuoted reads a double-quoted string starting at s[0], decoding the
// escapes Wine emits, and returns the text after the closing quote.
func decodeQuoted(s string) (decoded, rest string, ok bool) {
	if !strings.HasPrefix(s, `"`) {
		return "", "", false
	}

	var out []byte
	i := 1
	for i < len(s) {
		ch := s[i]
		switch ch {
		case '"':
			return string(out), s[i+1:], true
		case '\\':
			i++
			if i >= len(s) {
				return "", "", false
			}
			switch esc := s[i]; esc {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case '\\', '"':
				out = append(out, esc)
			default:
				out = append(out, '\\', esc)
			}
			i++
		default:
			out = append(out, ch)
			i++
		}
	}
	return "", "", false
}
