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

// Package vdf parses and writes Valve's text KeyValues format, as used by
// Steam's appmanifest_*.acf and libraryfolders.vdf files.
package vdf

// Value is one node of a parsed VDF document: either a string leaf or an
// object of ordered key/value pairs. Values are immutable after parsing.
type Value struct {
	v any
}

// StringValue wraps a string leaf.
func StringValue(s string) Value {
	return Value{s}
}

// ObjectValue wraps an object node.
func ObjectValue(o *Object) Value {
	return Value{o}
}

// AsString returns the string leaf, if this node is one.
func (v Value) AsString() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

// AsObject returns the object node, if this node is one.
func (v Value) AsObject() (*Object, bool) {
	o, ok := v.v.(*Object)
	return o, ok
}

// GetString looks up a string-valued key on an object node.
func (v Value) GetString(key string) (string, bool) {
	o, ok := v.AsObject()
	if !ok {
		return "", false
	}
	sub, ok := o.Get(key)
	if !ok {
		return "", false
	}
	return sub.AsString()
}

// GetObject looks up an object-valued key on an object node.
func (v Value) GetObject(key string) (*Object, bool) {
	o, ok := v.AsObject()
	if !ok {
		return nil, false
	}
	sub, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return sub.AsObject()
}

// Object is an ordered mapping from key to Value. Well-formed VDF does not
// repeat keys within one object, but duplicates are not rejected: the last
// write wins and the key keeps its original position.
type Object struct {
	values map[string]Value
	keys   []string
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores a value under a key.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under a key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of entries in the object.
func (o *Object) Len() int {
	return len(o.keys)
}
