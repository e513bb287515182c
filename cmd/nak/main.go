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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nak-project/nak-core/pkg/cli"
	"github.com/nak-project/nak-core/pkg/config"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()
	flags.Pre()

	fsys := afero.NewOsFs()
	cfg := cli.Setup(
		fsys, config.BaseDefaults,
		[]io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}},
	)
	flags.Post(cfg)

	return flags.Run(cfg, fsys)
}
