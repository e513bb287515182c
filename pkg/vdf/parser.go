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

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("unterminated quoted string")
	ErrUnexpectedToken    = errors.New("unexpected token")
)

// Parse reads a full text VDF document. The root is an implicit object with
// no enclosing braces; whitespace and //-comments between tokens are
// insignificant. Empty input parses to an empty object.
//
// Malformed input returns an error and no partial tree. Escape handling
// inside quoted strings is deliberately lenient: \n, \t, \\ and \" decode to
// their literal characters, and any other backslash sequence passes through
// unchanged, because Valve's own writer never escapes anything else.
func Parse(content string) (Value, error) {
	p := &parser{buf: content}
	root := NewObject()

	for {
		p.skipSpace()
		if p.eof() {
			return ObjectValue(root), nil
		}
		if err := p.parsePair(root); err != nil {
			return Value{}, err
		}
	}
}

type parser struct {
	buf string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.buf)
}

func (p *parser) parsePair(obj *Object) error {
	if p.buf[p.pos] != '"' {
		return fmt.Errorf("%w: expected quoted key, got %q at offset %d",
			ErrUnexpectedToken, p.buf[p.pos], p.pos)
	}
	key, err := p.parseQuoted()
	if err != nil {
		return err
	}

	p.skipSpace()
	if p.eof() {
		return fmt.Errorf("%w: key %q has no value", ErrUnexpectedToken, key)
	}

	switch p.buf[p.pos] {
	case '"':
		value, err := p.parseQuoted()
		if err != nil {
			return err
		}
		obj.Set(key, StringValue(value))
	case '{':
		nested, err := p.parseObject()
		if err != nil {
			return err
		}
		obj.Set(key, ObjectValue(nested))
	default:
		return fmt.Errorf("%w: expected value for key %q, got %q at offset %d",
			ErrUnexpectedToken, key, p.buf[p.pos], p.pos)
	}
	return nil
}

func (p *parser) parseObject() (*Object, error) {
	p.pos++ // consume '{'
	obj := NewObject()

	for {
		p.skipSpace()
		if p.eof() {
			return nil, fmt.Errorf("%w: unclosed object", ErrUnexpectedToken)
		}
		if p.buf[p.pos] == '}' {
			p.pos++
			return obj, nil
		}
		if err := p.parsePair(obj); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseQuoted() (string, error) {
	p.pos++ // consume opening '"'
	var out []byte

	for !p.eof() {
		ch := p.buf[p.pos]
		switch ch {
		case '"':
			p.pos++
			return string(out), nil
		case '\\':
			p.pos++
			if p.eof() {
				return "", ErrUnterminatedString
			}
			esc := p.buf[p.pos]
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '\\', '"':
				out = append(out, esc)
			default:
				out = append(out, '\\', esc)
			}
			p.pos++
		default:
			out = append(out, ch)
			p.pos++
		}
	}
	return "", ErrUnterminatedString
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.buf[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		case '/':
			if p.pos+1 < len(p.buf) && p.buf[p.pos+1] == '/' {
				for !p.eof() && p.buf[p.pos] != '\n' {
					p.pos++
				}
				continue
			}
			return
		default:
			return
		}
	}
}
