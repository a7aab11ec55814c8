// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abbrev

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name       string
		wantBase   string
		wantSuffix int
		wantOK     bool
	}{
		{name: "flag1", wantBase: "flag", wantSuffix: 1, wantOK: true},
		{name: "flag", wantBase: "flag"},
		{name: "a1b2", wantBase: "a1b", wantSuffix: 2, wantOK: true},
		{name: "feature12", wantBase: "feature", wantSuffix: 12, wantOK: true},
		{name: "flag007", wantBase: "flag", wantSuffix: 7, wantOK: true},
		{name: "42", wantBase: "4", wantSuffix: 2, wantOK: true},
		{name: "123", wantBase: "1", wantSuffix: 23, wantOK: true},
		{name: "7", wantBase: "7"},
		{name: "", wantBase: ""},
		{name: "x99999999999999999999999", wantBase: "x99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, suffix, ok := SplitName(tt.name)
			if base != tt.wantBase || suffix != tt.wantSuffix || ok != tt.wantOK {
				t.Errorf("SplitName(%q) = (%q, %d, %v), want (%q, %d, %v)",
					tt.name, base, suffix, ok, tt.wantBase, tt.wantSuffix, tt.wantOK)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  map[string]string
	}{
		{
			name:  "simple names",
			names: []string{"start", "stop"},
			want:  map[string]string{"start": "s", "stop": "st"},
		},
		{
			name:  "similar names",
			names: []string{"fire", "feature"},
			want:  map[string]string{"fire": "f", "feature": "fe"},
		},
		{
			name:  "numbered sequence",
			names: []string{"flag1", "flag2"},
			want:  map[string]string{"flag1": "f1", "flag2": "f2"},
		},
		{
			name:  "all-digit series",
			names: []string{"12", "13"},
			want:  map[string]string{"12": "12", "13": "13"},
		},
		{
			name:  "numbered and regular",
			names: []string{"flag1", "fire"},
			want:  map[string]string{"flag1": "f1", "fire": "fi"},
		},
		{
			name:  "longer base names",
			names: []string{"feature1", "feature2"},
			want:  map[string]string{"feature1": "f1", "feature2": "f2"},
		},
		{
			name:  "multiple series",
			names: []string{"flag1", "flag2", "feature1", "feature2", "fire", "first"},
			want: map[string]string{
				"flag1": "f1", "flag2": "f2",
				"feature1": "fe1", "feature2": "fe2",
				"fire": "fi", "first": "fir",
			},
		},
		{
			name:  "series claims before earlier plain name",
			names: []string{"fire", "flag1"},
			want:  map[string]string{"fire": "fi", "flag1": "f1"},
		},
		{
			name:  "plain member of a numbered group",
			names: []string{"flag", "flag1"},
			want:  map[string]string{"flag": "fl", "flag1": "f1"},
		},
		{
			name:  "uppercase names are lowered",
			names: []string{"Verbose", "VERSION"},
			want:  map[string]string{"Verbose": "v", "VERSION": "ve"},
		},
		{
			name:  "duplicates assigned once",
			names: []string{"start", "start", "stop"},
			want:  map[string]string{"start": "s", "stop": "st"},
		},
		{
			name:  "multibyte names",
			names: []string{"été", "étape"},
			want:  map[string]string{"été": "é", "étape": "ét"},
		},
		{
			name:  "empty input",
			names: nil,
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAssigner().Assign(tt.names)
			if err != nil {
				t.Fatalf("Assign(%v) error = %v", tt.names, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Assign(%v) mismatch (-want +got):\n%s", tt.names, diff)
			}
		})
	}
}

func TestAssignUniquePrefixes(t *testing.T) {
	names := []string{"alpha", "alps", "altitude", "beta", "bet", "better", "g", "gamma"}
	got, err := NewAssigner().Assign(names)
	if err != nil {
		t.Fatalf("Assign error = %v", err)
	}
	if len(got) != len(names) {
		t.Fatalf("got %d abbreviations, want %d", len(got), len(names))
	}
	seen := make(map[string]string)
	for _, name := range names {
		abbr := got[name]
		if !strings.HasPrefix(strings.ToLower(name), abbr) {
			t.Errorf("abbreviation %q is not a prefix of %q", abbr, name)
		}
		if other, dup := seen[abbr]; dup {
			t.Errorf("abbreviation %q shared by %q and %q", abbr, other, name)
		}
		seen[abbr] = name
	}
}

func TestAssignSeriesSharesBase(t *testing.T) {
	got, err := NewAssigner().Assign([]string{"port1", "path", "port2", "port10"})
	if err != nil {
		t.Fatalf("Assign error = %v", err)
	}
	for name, n := range map[string]string{"port1": "1", "port2": "2", "port10": "10"} {
		if base := strings.TrimSuffix(got[name], n); base != "p" {
			t.Errorf("%s = %q, want base %q followed by %q", name, got[name], "p", n)
		}
	}
	if got["path"] != "pa" {
		t.Errorf("path = %q, want %q", got["path"], "pa")
	}
}

func TestAssignDeterministic(t *testing.T) {
	names := []string{"flag1", "fire", "feature2", "first", "flag2", "feature1", "force"}
	first, err := NewAssigner().Assign(names)
	if err != nil {
		t.Fatalf("Assign error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := NewAssigner().Assign(names)
		if err != nil {
			t.Fatalf("Assign error = %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestAssignReuseKeepsClaims(t *testing.T) {
	a := NewAssigner()
	first, err := a.Assign([]string{"start", "stop"})
	if err != nil {
		t.Fatalf("first Assign error = %v", err)
	}
	second, err := a.Assign([]string{"start", "stop"})
	if err != nil {
		t.Fatalf("second Assign error = %v", err)
	}
	if diff := cmp.Diff(map[string]string{"start": "s", "stop": "st"}, first); diff != "" {
		t.Errorf("first Assign mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"start": "sta", "stop": "sto"}, second); diff != "" {
		t.Errorf("second Assign mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignReuseKeepsSeriesBase(t *testing.T) {
	a := NewAssigner()
	if _, err := a.Assign([]string{"flag1"}); err != nil {
		t.Fatalf("first Assign error = %v", err)
	}
	got, err := a.Assign([]string{"flag2", "fire"})
	if err != nil {
		t.Fatalf("second Assign error = %v", err)
	}
	if diff := cmp.Diff(map[string]string{"flag2": "f2", "fire": "fi"}, got); diff != "" {
		t.Errorf("Assign mismatch (-want +got):\n%s", diff)
	}
}

func TestReserve(t *testing.T) {
	a := NewAssigner()
	a.Reserve("S")
	got, err := a.Assign([]string{"start", "stop"})
	if err != nil {
		t.Fatalf("Assign error = %v", err)
	}
	if diff := cmp.Diff(map[string]string{"start": "st", "stop": "sto"}, got); diff != "" {
		t.Errorf("Assign mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignExhausted(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{name: "case-insensitive twins", names: []string{"a", "A"}, want: "A"},
		{name: "prefix chain", names: []string{"a", "ab", "b", "a2", "a1"}, want: "a"},
		{name: "empty name", names: []string{""}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAssigner().Assign(tt.names)
			if !errors.Is(err, ErrExhausted) {
				t.Fatalf("Assign(%v) error = %v, want ErrExhausted", tt.names, err)
			}
			var exhausted *ExhaustedError
			if !errors.As(err, &exhausted) {
				t.Fatalf("error %T is not *ExhaustedError", err)
			}
			if exhausted.Name != tt.want {
				t.Errorf("Name = %q, want %q", exhausted.Name, tt.want)
			}
			if want := fmt.Sprintf("cannot generate unique abbreviation for %s", tt.want); err.Error() != want {
				t.Errorf("Error() = %q, want %q", err.Error(), want)
			}
		})
	}
}
