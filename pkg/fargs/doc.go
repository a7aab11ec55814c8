// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fargs binds command-line tokens to a typed record.
//
// A command declares its arguments once as a list of fields. Each field
// names a long flag, says whether it is required and whether it takes a
// value, and points at the record member it fills:
//
//	type DeployArgs struct {
//	    Service string
//	    Replicas int
//	    Force bool
//	    Mode string
//	}
//
//	schema := fargs.MustBuild(
//	    fargs.String("service", func(a *DeployArgs) *string { return &a.Service }).Required(),
//	    fargs.Int("replicas", func(a *DeployArgs) *int { return &a.Replicas }),
//	    fargs.Flag("force", func(a *DeployArgs) *bool { return &a.Force }),
//	    fargs.Enum("mode", []string{"rolling", "recreate"}, func(a *DeployArgs) *string { return &a.Mode }),
//	)
//
//	args, err := schema.Parse(os.Args[1:])
//
// # Abbreviations
//
// Every field without an explicit abbreviation gets the shortest lowercase
// prefix of its name that no other field has claimed, so the schema above
// accepts -s, -r, -f and -m as well as the long names. Numbered fields such
// as "flag1" and "flag2" share one base abbreviation ("f1", "f2"). See
// package abbrev for the exact rules.
//
// # Token syntax
//
// All leading dashes are stripped, so -service and --service are the same
// flag. Names and abbreviations match case-insensitively. A field that
// takes a value consumes exactly the next token, whatever it looks like;
// a field declared with NoValue consumes nothing and is set to true.
//
// # Errors
//
// Parse stops at the first problem and returns a *ParseError whose message
// is one of:
//
//	Unknown argument: --bogus
//	Missing value for -service
//	Invalid value for -replicas: many
//	Missing required argument: -service
//
// A built Schema is immutable. Many goroutines may call Parse on it at once
// as long as each call fills its own record.
package fargs
