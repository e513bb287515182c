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
	"sort"
	"strconv"

	"github.com/nak-project/nak-core/pkg/vdf"
	"github.com/rs/zerolog/log"
)

// ParseLibraryFolders returns the path of every Steam library listed in
// libraryfolders.vdf content. Entries are keyed "0", "1", "2", ... in the
// file; results are sorted by that numeric key so enumeration order matches
// Steam's own library precedence. Missing or malformed structure yields an
// empty result, never an error.
func ParseLibraryFolders(content string) []string {
	v, err := vdf.Parse(content)
	if err != nil {
		log.Debug().Err(err).Msg("failed to parse libraryfolders vdf")
		return nil
	}

	lfs, ok := v.GetObject("libraryfolders")
	if !ok {
		log.Debug().Msg("libraryfolders not found")
		return nil
	}

	keys := append([]string(nil), lfs.Keys()...)
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil: // numeric keys sort before anything else
			return true
		case berr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	var paths []string
	for _, key := range keys {
		entry, _ := lfs.Get(key)
		path, ok := entry.GetString("path")
		if !ok {
			log.Debug().Str("library", key).Msg("library entry has no path")
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
