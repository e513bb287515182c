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

package vdf

import "strings"

// Marshal renders a value back into the tab-indented text VDF grammar.
// An object at the root is written without enclosing braces, matching the
// implicit root object the parser accepts, so Parse(Marshal(v)) yields an
// equal tree.
func Marshal(v Value) string {
	var sb strings.Builder
	if o, ok := v.AsObject(); ok {
		writeObjectBody(&sb, o, 0)
	} else if s, ok := v.AsString(); ok {
		writeQuoted(&sb, s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the value as text VDF.
func (v Value) String() string {
	return Marshal(v)
}

func writeObjectBody(sb *strings.Builder, o *Object, depth int) {
	indent := strings.Repeat("\t", depth)
	for _, key := range o.Keys() {
		v, _ := o.Get(key)
		sb.WriteString(indent)
		writeQuoted(sb, key)
		if nested, ok := v.AsObject(); ok {
			sb.WriteByte('\n')
			sb.WriteString(indent)
			sb.WriteString("{\n")
			writeObjectBody(sb, nested, depth+1)
			sb.WriteString(indent)
			sb.WriteString("}\n")
			continue
		}
		s, _ := v.AsString()
		sb.WriteString("\t\t")
		writeQuoted(sb, s)
		sb.WriteByte('\n')
	}
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(ch)
		}
	}
	sb.WriteByte('"')
}
