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

package wine

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// WinePathToLinux converts a Windows path from inside a Wine prefix to the
// Linux path it refers to. Only Z: paths are resolvable: Wine maps Z: to
// the host root. Any other drive letter (notably C:) lives inside a prefix
// whose root we do not know here, so those yield absence plus a warning.
// The warning is diagnostic only; callers must not depend on it.
func WinePathToLinux(winePath string) (string, bool) {
	if len(winePath) < 2 || winePath[1] != ':' {
		log.Warn().Str("path", winePath).Msg("wine path has no drive letter")
		return "", false
	}

	if winePath[0] != 'Z' && winePath[0] != 'z' {
		log.Warn().Str("path", winePath).
			Msg("cannot resolve wine path outside the Z: drive without a prefix root")
		return "", false
	}

	linux := strings.ReplaceAll(winePath[2:], `\`, "/")
	if !strings.HasPrefix(linux, "/") {
		linux = "/" + linux
	}
	return linux, true
}
