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

import "strings"

// Type marker bytes used by Valve's binary KeyValues grammar. A map entry is
// "marker, NUL-terminated key, value"; 0x08 closes the enclosing map. Any
// other marker byte is treated as corruption, never resynchronized over.
const (
	vdfMarkerMap         byte = 0x00
	vdfMarkerString      byte = 0x01
	vdfMarkerNumber      byte = 0x02
	vdfMarkerEndOfMap    byte = 0x08
	vdfMarkerEndOfString byte = 0x00
)

// VdfValue is a single node of a parsed binary VDF document: a string, a
// 32-bit number, or a nested map. Lookups are case-insensitive because
// Valve tooling writes shortcut keys with inconsistent casing ("AppName"
// vs "appname").
type VdfValue interface {
	AsString() (string, bool)
	AsUint() (uint32, bool)
	AsMap() (*VdfMap, bool)

	GetString(key string) (string, bool)
	GetUint(key string) (uint32, bool)
	GetBool(key string) (bool, bool)
	GetMap(key string) (*VdfMap, bool)
}

// VdfMap is a parsed binary VDF object. Keys are stored lowercased; the
// order they appeared in the input stream is preserved.
type VdfMap struct {
	values map[string]vdfValue
	keys   []string
}

func newVdfMap() *VdfMap {
	return &VdfMap{values: make(map[string]vdfValue)}
}

func (m *VdfMap) set(key string, v vdfValue) {
	key = strings.ToLower(key)
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Keys returns the map's keys in input order.
func (m *VdfMap) Keys() []string {
	return m.keys
}

// Get returns the value stored for a key.
func (m *VdfMap) Get(key string) (VdfValue, bool) {
	v, ok := m.values[strings.ToLower(key)]
	return v, ok
}

// Len returns the number of entries in the map.
func (m *VdfMap) Len() int {
	return len(m.keys)
}

type vdfValue struct {
	v any
}

func (v vdfValue) AsString() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

func (v vdfValue) AsUint() (uint32, bool) {
	n, ok := v.v.(uint32)
	return n, ok
}

func (v vdfValue) AsMap() (*VdfMap, bool) {
	m, ok := v.v.(*VdfMap)
	return m, ok
}

func (v vdfValue) GetString(key string) (string, bool) {
	m, ok := v.AsMap()
	if !ok {
		return "", false
	}
	sub, ok := m.Get(key)
	if !ok {
		return "", false
	}
	return sub.AsString()
}

func (v vdfValue) GetUint(key string) (uint32, bool) {
	m, ok := v.AsMap()
	if !ok {
		return 0, false
	}
	sub, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	return sub.AsUint()
}

func (v vdfValue) GetBool(key string) (bool, bool) {
	n, ok := v.GetUint(key)
	if !ok {
		return false, false
	}
	return n != 0, true
}

func (v vdfValue) GetMap(key string) (*VdfMap, bool) {
	m, ok := v.AsMap()
	if !ok {
		return nil, false
	}
	sub, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return sub.AsMap()
}
