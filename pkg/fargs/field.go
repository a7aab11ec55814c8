// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the converter applied to a raw token.
type Kind uint8

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindEnum:
		return "enum"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Declaration describes one bindable argument.
type Declaration struct {
	Name        string
	Required    bool
	HasValue    bool // false for switches that take no token
	Description string
	// Abbreviation is an explicit short form. Empty means one is derived.
	Abbreviation string
	Kind         Kind
	Labels       []string // accepted values for KindEnum
}

// Field pairs a Declaration with the record member it fills.
// Fields are values; the modifier methods return modified copies.
type Field[T any] struct {
	decl   Declaration
	set    func(*T, any)
	isZero func(*T) bool
	text   func(*T) string
}

// Declaration returns a copy of the field's declaration.
func (f Field[T]) Declaration() Declaration {
	d := f.decl
	d.Labels = append([]string(nil), f.decl.Labels...)
	return d
}

// Required marks the field as mandatory. A required field whose value is
// still the zero value after parsing fails the parse.
func (f Field[T]) Required() Field[T] {
	f.decl.Required = true
	return f
}

// NoValue makes the field a switch: its presence binds the value "true"
// and no value token is consumed.
func (f Field[T]) NoValue() Field[T] {
	f.decl.HasValue = false
	return f
}

// Describe sets the help text.
func (f Field[T]) Describe(text string) Field[T] {
	f.decl.Description = text
	return f
}

// Abbrev sets an explicit short form, used as given.
func (f Field[T]) Abbrev(short string) Field[T] {
	f.decl.Abbreviation = short
	return f
}

// String declares a string field.
func String[T any](name string, target func(*T) *string) Field[T] {
	return newField(Declaration{Name: name, HasValue: true, Kind: KindString}, target)
}

// Bool declares a boolean field that takes a value token ("true", "0", ...).
func Bool[T any](name string, target func(*T) *bool) Field[T] {
	return newField(Declaration{Name: name, HasValue: true, Kind: KindBool}, target)
}

// Flag declares a boolean switch. It is Bool(name, target).NoValue().
func Flag[T any](name string, target func(*T) *bool) Field[T] {
	return Bool(name, target).NoValue()
}

// Int declares an integer field.
func Int[T any](name string, target func(*T) *int) Field[T] {
	return newField(Declaration{Name: name, HasValue: true, Kind: KindInt}, target)
}

// Enum declares a field restricted to labels. Input matches a label
// case-insensitively and the declared spelling of the label is stored.
func Enum[T any, E ~string](name string, labels []E, target func(*T) *E) Field[T] {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	f := newField(Declaration{Name: name, HasValue: true, Kind: KindEnum, Labels: strs}, target)
	f.set = func(t *T, v any) { *target(t) = E(v.(string)) }
	return f
}

func newField[T any, V comparable](d Declaration, target func(*T) *V) Field[T] {
	return Field[T]{
		decl: d,
		set:  func(t *T, v any) { *target(t) = v.(V) },
		isZero: func(t *T) bool {
			var zero V
			return *target(t) == zero
		},
		text: func(t *T) string { return fmt.Sprint(*target(t)) },
	}
}

// converters maps each Kind to its conversion from a raw token. Enum
// conversion also needs the declared labels, so the declaration is passed.
var converters = map[Kind]func(d *Declaration, raw string) (any, error){
	KindString: func(_ *Declaration, raw string) (any, error) {
		return raw, nil
	},
	KindBool: func(_ *Declaration, raw string) (any, error) {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid bool value %q: %w", raw, err)
		}
		return b, nil
	},
	KindInt: func(_ *Declaration, raw string) (any, error) {
		i, err := strconv.ParseInt(raw, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("invalid int value %q: %w", raw, err)
		}
		return int(i), nil
	},
	KindEnum: func(d *Declaration, raw string) (any, error) {
		for _, label := range d.Labels {
			if strings.EqualFold(label, raw) {
				return label, nil
			}
		}
		return nil, fmt.Errorf("%q is not one of %s", raw, strings.Join(d.Labels, ", "))
	},
}

func convert(d *Declaration, raw string) (any, error) {
	conv, ok := converters[d.Kind]
	if !ok {
		return nil, fmt.Errorf("unsupported kind %s", d.Kind)
	}
	return conv(d, raw)
}
