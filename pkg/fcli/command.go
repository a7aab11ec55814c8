// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcli

import (
	"context"
	"fmt"

	"github.com/yeetrun/fcli/pkg/fargs"
)

// Unit is the argument record of commands that take no arguments.
type Unit struct{}

// Handler runs a command with its parsed arguments.
type Handler[T any] func(ctx context.Context, args *T) error

// CommandBuilder collects a command's metadata until OnExecute registers it.
type CommandBuilder[T any] struct {
	app    *App
	info   commandInfo
	fields []fargs.Field[T]
}

// Command starts registering a command whose arguments bind into T.
func Command[T any](app *App, name string, fields ...fargs.Field[T]) *CommandBuilder[T] {
	return &CommandBuilder[T]{
		app:    app,
		info:   commandInfo{name: name},
		fields: fields,
	}
}

// Simple starts registering a command that takes no arguments.
func Simple(app *App, name string) *CommandBuilder[Unit] {
	return Command[Unit](app, name)
}

// WithAlias adds another word that runs the command.
func (b *CommandBuilder[T]) WithAlias(alias string) *CommandBuilder[T] {
	b.info.aliases = append(b.info.aliases, alias)
	return b
}

// WithDescription sets the command's help description.
func (b *CommandBuilder[T]) WithDescription(description string) *CommandBuilder[T] {
	b.info.description = description
	return b
}

// OnExecute builds the argument schema, registers the command under its
// name and aliases, and returns the App for further chaining.
//
// It panics if the argument names cannot be given unique abbreviations.
func (b *CommandBuilder[T]) OnExecute(handler Handler[T]) *App {
	schema, err := fargs.Build(b.fields...)
	if err != nil {
		panic(fmt.Sprintf("fcli: command %q: %v", b.info.name, err))
	}
	info := b.info
	info.aliases = append([]string(nil), b.info.aliases...)
	b.app.add(&command[T]{
		commandInfo: info,
		schema:      schema,
		handler:     handler,
	})
	return b.app
}

type command[T any] struct {
	commandInfo
	schema  *fargs.Schema[T]
	handler Handler[T]
}

func (c *command[T]) info() *commandInfo {
	return &c.commandInfo
}

func (c *command[T]) run(ctx context.Context, args []string) error {
	parsed, err := c.schema.Parse(args)
	if err != nil {
		return err
	}
	return c.handler(ctx, parsed)
}

func (c *command[T]) help() string {
	return commandHelp(&c.commandInfo, c.schema.Help())
}
