// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import "strings"

// Parse binds argv into a freshly allocated record.
func (s *Schema[T]) Parse(argv []string) (*T, error) {
	return s.ParseWith(argv, func() *T { return new(T) })
}

// ParseWith binds argv into the record returned by factory. Values already
// present in that record count as set for the required check.
func (s *Schema[T]) ParseWith(argv []string, factory func() *T) (*T, error) {
	dst := factory()
	if err := s.ParseInto(argv, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ParseInto binds argv into dst. On error dst may be partially filled.
//
// Tokens are consumed left to right. Unknown names and missing values stop
// the scan immediately; required fields are checked only after every token
// has been bound.
func (s *Schema[T]) ParseInto(argv []string, dst *T) error {
	for i := 0; i < len(argv); i++ {
		token := argv[i]
		e, ok := s.lookup(strings.TrimLeft(token, "-"))
		if !ok {
			return &ParseError{Kind: UnknownArgument, Token: token}
		}
		d := &e.field.decl

		raw := "true"
		if d.HasValue {
			if i+1 >= len(argv) {
				return &ParseError{Kind: MissingValue, Token: token}
			}
			i++
			raw = argv[i]
		}

		v, err := convert(d, raw)
		if err != nil {
			return &ParseError{Kind: InvalidValue, Name: d.Name, Value: raw, Err: err}
		}
		e.field.set(dst, v)
	}

	for _, e := range s.entries {
		if e.field.decl.Required && e.field.isZero(dst) {
			return &ParseError{Kind: MissingRequiredArgument, Name: e.field.decl.Name}
		}
	}
	return nil
}
