// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"fmt"
	"strings"

	"github.com/yeetrun/fcli/pkg/abbrev"
)

// BuildOptions tunes schema construction.
type BuildOptions struct {
	// ReserveExplicitAbbreviations claims every explicit abbreviation
	// before deriving the others. Without it a derived abbreviation can
	// equal another field's explicit one; the later field in declaration
	// order then owns that short form.
	ReserveExplicitAbbreviations bool
}

// Argument is a declaration together with its resolved abbreviation.
type Argument struct {
	Declaration
	Short string
}

type entry[T any] struct {
	field Field[T]
	short string
}

// Schema indexes the fields of one record type by long name and by
// abbreviation. It is immutable once built.
type Schema[T any] struct {
	entries        []*entry[T]
	byName         map[string]*entry[T]
	byAbbreviation map[string]*entry[T]
}

// Build builds a schema with default options.
func Build[T any](fields ...Field[T]) (*Schema[T], error) {
	return BuildWithOptions(BuildOptions{}, fields...)
}

// MustBuild is like Build but panics on error. Build only fails when the
// declarations cannot be abbreviated, which is a programming error.
func MustBuild[T any](fields ...Field[T]) *Schema[T] {
	s, err := Build(fields...)
	if err != nil {
		panic(fmt.Sprintf("fargs.MustBuild: %v", err))
	}
	return s
}

// BuildWithOptions builds a schema from fields in declaration order.
func BuildWithOptions[T any](opts BuildOptions, fields ...Field[T]) (*Schema[T], error) {
	assigner := abbrev.NewAssigner()
	var derive []string
	for _, f := range fields {
		if f.decl.Abbreviation != "" {
			if opts.ReserveExplicitAbbreviations {
				assigner.Reserve(f.decl.Abbreviation)
			}
			continue
		}
		derive = append(derive, f.decl.Name)
	}
	shorts, err := assigner.Assign(derive)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	s := &Schema[T]{
		entries:        make([]*entry[T], 0, len(fields)),
		byName:         make(map[string]*entry[T], len(fields)),
		byAbbreviation: make(map[string]*entry[T], len(fields)),
	}
	for _, f := range fields {
		e := &entry[T]{field: f, short: f.decl.Abbreviation}
		if e.short == "" {
			e.short = shorts[f.decl.Name]
		}
		s.entries = append(s.entries, e)
		s.byName[strings.ToLower(f.decl.Name)] = e
		s.byAbbreviation[strings.ToLower(e.short)] = e
	}
	return s, nil
}

// Lookup resolves a token such as "--name" or "-n" to its argument.
// Long names are tried before abbreviations.
func (s *Schema[T]) Lookup(token string) (Argument, bool) {
	e, ok := s.lookup(strings.TrimLeft(token, "-"))
	if !ok {
		return Argument{}, false
	}
	return e.argument(), true
}

func (s *Schema[T]) lookup(name string) (*entry[T], bool) {
	key := strings.ToLower(name)
	if e, ok := s.byName[key]; ok {
		return e, true
	}
	e, ok := s.byAbbreviation[key]
	return e, ok
}

// Arguments lists the schema's arguments in declaration order.
func (s *Schema[T]) Arguments() []Argument {
	out := make([]Argument, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.argument())
	}
	return out
}

func (e *entry[T]) argument() Argument {
	return Argument{Declaration: e.field.Declaration(), Short: e.short}
}

// Help renders one line per argument in declaration order: the long name,
// the abbreviation, a "*" for required arguments and the description.
func (s *Schema[T]) Help() string {
	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		d := e.field.decl
		marker := " "
		if d.Required {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("    -%-20s (-%-3s) %s %s", d.Name, e.short, marker, d.Description))
	}
	return strings.Join(lines, "\n")
}

// Format renders v as tokens that Parse turns back into an equal record.
// Zero-valued fields are left out; switches appear only when set.
func (s *Schema[T]) Format(v *T) []string {
	var tokens []string
	for _, e := range s.entries {
		f := e.field
		if f.isZero(v) {
			continue
		}
		tokens = append(tokens, "-"+f.decl.Name)
		if f.decl.HasValue {
			tokens = append(tokens, f.text(v))
		}
	}
	return tokens
}
