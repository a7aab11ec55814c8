// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by errors.Is against a *ParseError of the same kind.
var (
	ErrUnknownArgument = errors.New("unknown argument")
	ErrMissingValue    = errors.New("missing value")
	ErrInvalidValue    = errors.New("invalid value")
	ErrMissingRequired = errors.New("missing required argument")
)

// ErrorKind classifies a ParseError.
type ErrorKind uint8

const (
	UnknownArgument ErrorKind = iota + 1
	MissingValue
	InvalidValue
	MissingRequiredArgument
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnknownArgument:
		return ErrUnknownArgument
	case MissingValue:
		return ErrMissingValue
	case InvalidValue:
		return ErrInvalidValue
	case MissingRequiredArgument:
		return ErrMissingRequired
	}
	return nil
}

// ParseError is returned by Parse. Error() yields the user-facing message;
// Err, when set, holds the underlying conversion failure.
type ParseError struct {
	Kind  ErrorKind
	Token string // token as typed, for UnknownArgument and MissingValue
	Name  string // long name of the field, for InvalidValue and MissingRequiredArgument
	Value string // raw value, for InvalidValue
	Err   error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownArgument:
		return fmt.Sprintf("Unknown argument: %s", e.Token)
	case MissingValue:
		return fmt.Sprintf("Missing value for %s", e.Token)
	case InvalidValue:
		return fmt.Sprintf("Invalid value for -%s: %s", e.Name, e.Value)
	case MissingRequiredArgument:
		return fmt.Sprintf("Missing required argument: -%s", e.Name)
	}
	return "invalid arguments"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}
