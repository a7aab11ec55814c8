// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abbrev derives short flag forms from long argument names.
//
// An Assigner hands out the shortest lowercase prefix of a name that no
// earlier name has claimed. Names that end in a decimal suffix ("flag1",
// "flag2") form a series: the series shares one abbreviation of its base
// name and each member appends its own number ("f1", "f2").
package abbrev

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrExhausted is matched by errors.Is for every ExhaustedError.
var ErrExhausted = errors.New("abbreviations exhausted")

// ExhaustedError is returned when every prefix of a name, up to the full
// name, has already been claimed.
type ExhaustedError struct {
	Name string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("cannot generate unique abbreviation for %s", e.Name)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

// SplitName splits a trailing run of decimal digits off name.
//
// Only the final digit run counts: "a1b2" splits into ("a1b", 2). The base
// must be non-empty, so an all-digit name keeps its first digit as the base:
// "42" splits into ("4", 2) and a single "7" has no suffix. A digit run too
// large for an int is not treated as a suffix.
func SplitName(name string) (base string, suffix int, ok bool) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == 0 {
		i = 1
	}
	if i >= len(name) {
		return name, 0, false
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return name, 0, false
	}
	return name[:i], n, true
}

// Assigner hands out unique abbreviations. Claimed abbreviations persist for
// the lifetime of the Assigner, so a second Assign call on the same value
// can produce different results than the first. Use one Assigner per schema.
//
// The zero value is ready to use. An Assigner is not safe for concurrent use.
type Assigner struct {
	used              map[string]struct{}
	baseAbbreviations map[string]string
}

// NewAssigner returns an empty Assigner.
func NewAssigner() *Assigner {
	return &Assigner{}
}

// Reserve marks abbrs as claimed so that Assign never hands them out.
func (a *Assigner) Reserve(abbrs ...string) {
	a.init()
	for _, abbr := range abbrs {
		a.used[strings.ToLower(abbr)] = struct{}{}
	}
}

type group struct {
	base    string
	members []string
}

// Assign returns an abbreviation for every name.
//
// Numbered series are handled first, in the order their base name was
// first seen; the remaining names follow in input order. That order decides
// who gets the shorter prefix when names share leading characters.
func (a *Assigner) Assign(names []string) (map[string]string, error) {
	a.init()
	result := make(map[string]string, len(names))

	for _, g := range groupByBase(names) {
		numbered := false
		for _, name := range g.members {
			if _, _, ok := SplitName(name); ok {
				numbered = true
				break
			}
		}
		if !numbered {
			continue
		}
		baseAbbr, err := a.baseAbbreviation(g.base)
		if err != nil {
			return nil, err
		}
		for _, name := range g.members {
			if _, n, ok := SplitName(name); ok {
				result[name] = baseAbbr + strconv.Itoa(n)
			}
		}
	}

	for _, name := range names {
		if _, done := result[name]; done {
			continue
		}
		if _, _, ok := SplitName(name); ok {
			continue
		}
		abbr, err := a.unique(name)
		if err != nil {
			return nil, err
		}
		result[name] = abbr
	}
	return result, nil
}

func (a *Assigner) init() {
	if a.used == nil {
		a.used = make(map[string]struct{})
	}
	if a.baseAbbreviations == nil {
		a.baseAbbreviations = make(map[string]string)
	}
}

func (a *Assigner) baseAbbreviation(base string) (string, error) {
	if abbr, ok := a.baseAbbreviations[base]; ok {
		return abbr, nil
	}
	abbr, err := a.unique(base)
	if err != nil {
		return "", err
	}
	a.baseAbbreviations[base] = abbr
	return abbr, nil
}

// unique claims the shortest lowercase prefix of name not yet in use.
func (a *Assigner) unique(name string) (string, error) {
	for n := 1; n <= utf8.RuneCountInString(name); n++ {
		abbr := strings.ToLower(runePrefix(name, n))
		if _, taken := a.used[abbr]; taken {
			continue
		}
		a.used[abbr] = struct{}{}
		return abbr, nil
	}
	return "", &ExhaustedError{Name: name}
}

func runePrefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func groupByBase(names []string) []*group {
	var groups []*group
	byBase := make(map[string]*group)
	for _, name := range names {
		base, _, _ := SplitName(name)
		g, ok := byBase[base]
		if !ok {
			g = &group{base: base}
			byBase[base] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, name)
	}
	return groups
}
