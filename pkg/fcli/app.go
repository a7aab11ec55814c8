// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fcli registers commands with typed arguments and dispatches a
// command line to the matching handler.
//
//	app := fcli.New().WithDescription("Deploy tool")
//	fcli.Command(app, "deploy",
//	    fargs.String("service", func(a *DeployArgs) *string { return &a.Service }).Required(),
//	).WithAlias("d").OnExecute(func(ctx context.Context, a *DeployArgs) error {
//	    return deploy(ctx, a.Service)
//	})
//	if err := app.Execute(ctx, os.Args[1:]); err != nil { ... }
package fcli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/shlex"
)

const (
	helpFlagLong  = "--help"
	helpFlagShort = "-h"
	versionFlag   = "--version"
)

// UnknownCommandError is returned when the first word names no command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command: %s", e.Name)
}

// ErrNoVersion is returned for --version when the app has no version.
var ErrNoVersion = errors.New("no version configured")

// runner is the type-erased view of a registered command.
type runner interface {
	info() *commandInfo
	run(ctx context.Context, args []string) error
	help() string
}

type commandInfo struct {
	name        string
	aliases     []string
	description string
}

// App is a set of commands. Configure it with the With methods and
// Command, then call Execute. Registration is not safe for concurrent use.
type App struct {
	description  string
	version      *semver.Version
	versionErr   error
	errorHandler func(error)
	out          io.Writer
	config       *Config

	commands map[string]runner // lowercased name or alias
	order    []runner
}

// New returns an App that writes help to os.Stdout.
func New() *App {
	return &App{
		out:      os.Stdout,
		commands: make(map[string]runner),
	}
}

// WithDescription sets the text shown above the command list.
func (a *App) WithDescription(description string) *App {
	a.description = description
	return a
}

// WithErrorHandler routes every error from Execute to handler instead of
// returning it.
func (a *App) WithErrorHandler(handler func(error)) *App {
	a.errorHandler = handler
	return a
}

// WithOutput sets where help and version text are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithVersion sets the version printed for --version. It must be a
// semantic version; otherwise --version reports the parse error.
func (a *App) WithVersion(version string) *App {
	v, err := semver.NewVersion(version)
	if err != nil {
		a.version, a.versionErr = nil, fmt.Errorf("invalid version %q: %w", version, err)
		return a
	}
	a.version, a.versionErr = v, nil
	return a
}

// WithConfig sets per-command default arguments.
func (a *App) WithConfig(cfg *Config) *App {
	a.config = cfg
	return a
}

// Version returns the configured version, or nil.
func (a *App) Version() *semver.Version {
	return a.version
}

// Lookup returns the registered name of the command with the given name
// or alias.
func (a *App) Lookup(name string) (string, bool) {
	r, ok := a.commands[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return r.info().name, true
}

// add registers r. A command registered again under the same name replaces
// the earlier one, including its aliases and its place in the help listing.
func (a *App) add(r runner) {
	info := r.info()
	replaced := false
	for i, prev := range a.order {
		if !strings.EqualFold(prev.info().name, info.name) {
			continue
		}
		for key, cmd := range a.commands {
			if cmd == prev {
				delete(a.commands, key)
			}
		}
		a.order[i] = r
		replaced = true
		break
	}
	a.commands[strings.ToLower(info.name)] = r
	for _, alias := range info.aliases {
		if alias == "" {
			continue
		}
		a.commands[strings.ToLower(alias)] = r
	}
	if !replaced {
		a.order = append(a.order, r)
	}
}

// Execute runs the command named by args[0] with the remaining args.
//
// With no args, or "-h"/"--help" first, it prints the command list. A
// command followed by "-h"/"--help" prints that command's help. When an
// error handler is set every error goes to it and Execute returns nil.
func (a *App) Execute(ctx context.Context, args []string) error {
	if err := a.execute(ctx, args); err != nil {
		if a.errorHandler != nil {
			a.errorHandler(err)
			return nil
		}
		return err
	}
	return nil
}

// ExecuteLine splits line with shell quoting rules and executes the words.
func (a *App) ExecuteLine(ctx context.Context, line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		err = fmt.Errorf("split command line: %w", err)
		if a.errorHandler != nil {
			a.errorHandler(err)
			return nil
		}
		return err
	}
	return a.Execute(ctx, words)
}

func (a *App) execute(ctx context.Context, args []string) error {
	if len(args) == 0 || isHelpFlag(args[0]) {
		fmt.Fprint(a.out, a.Help())
		return nil
	}
	if args[0] == versionFlag {
		if a.versionErr != nil {
			return a.versionErr
		}
		if a.version == nil {
			return ErrNoVersion
		}
		fmt.Fprintln(a.out, a.version.String())
		return nil
	}

	cmd, ok := a.commands[strings.ToLower(args[0])]
	if !ok {
		return &UnknownCommandError{Name: args[0]}
	}
	rest := args[1:]
	if len(rest) > 0 && isHelpFlag(rest[0]) {
		fmt.Fprintln(a.out, cmd.help())
		return nil
	}
	if defaults := a.config.defaultArgs(cmd.info().name); len(defaults) > 0 {
		rest = append(append([]string{}, defaults...), rest...)
	}
	return cmd.run(ctx, rest)
}

func isHelpFlag(arg string) bool {
	return arg == helpFlagLong || arg == helpFlagShort
}
