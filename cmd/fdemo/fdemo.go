// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fdemo shows an fcli app: typed arguments with derived
// abbreviations, per-project defaults and an interactive shell.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/shlex"
	"github.com/shayne/yargs"
	"github.com/yeetrun/fcli/pkg/fargs"
	"github.com/yeetrun/fcli/pkg/fcli"
	"golang.org/x/term"
)

var version = "0.1.0"

var isTerminalFn = term.IsTerminal

// Language selects the greeting.
type Language string

const (
	English Language = "English"
	Spanish Language = "Spanish"
	French  Language = "French"
)

var greetings = map[Language]string{
	English: "Hello, %s",
	Spanish: "Hola, %s",
	French:  "Bonjour, %s",
}

type greetArgs struct {
	Name  string
	Loud  bool
	Times int
	Lang  Language
}

type defaultsArgs struct {
	Command string
	Args    string
}

// demo holds what the commands share: their streams and the loaded config.
type demo struct {
	out, errOut io.Writer
	in          io.Reader
	interactive bool

	cfgPath string // where defaults are saved
	cfg     *fcli.Config

	app *fcli.App
}

func newDemo(out, errOut io.Writer, in io.Reader, cfgPath string, cfg *fcli.Config) *demo {
	if cfg == nil {
		cfg = &fcli.Config{}
	}
	d := &demo{out: out, errOut: errOut, in: in, cfgPath: cfgPath, cfg: cfg}
	d.app = fcli.New().
		WithDescription("fdemo greets people and remembers how you like it.").
		WithOutput(out).
		WithVersion(version).
		WithConfig(cfg)

	fcli.Command(d.app, "greet",
		fargs.String("name", func(a *greetArgs) *string { return &a.Name }).Required().Describe("Who to greet"),
		fargs.Flag("loud", func(a *greetArgs) *bool { return &a.Loud }).Describe("Shout the greeting"),
		fargs.Int("times", func(a *greetArgs) *int { return &a.Times }).Describe("How many times to greet"),
		fargs.Enum("lang", []Language{English, Spanish, French}, func(a *greetArgs) *Language { return &a.Lang }).Describe("English, Spanish or French"),
	).
		WithAlias("g").
		WithAlias("hello").
		WithDescription("Print a greeting").
		OnExecute(d.greet)

	fcli.Command(d.app, "defaults",
		fargs.String("command", func(a *defaultsArgs) *string { return &a.Command }).Required().Describe("Command to set defaults for"),
		fargs.String("args", func(a *defaultsArgs) *string { return &a.Args }).Describe("Default arguments, shell quoted"),
	).
		WithAlias("def").
		WithDescription("Save default arguments for a command").
		OnExecute(d.saveDefaults)

	fcli.Simple(d.app, "shell").
		WithAlias("sh").
		WithDescription("Read commands from stdin, one per line").
		OnExecute(d.shell)

	return d
}

func (d *demo) greet(ctx context.Context, a *greetArgs) error {
	lang := a.Lang
	if lang == "" {
		lang = English
	}
	msg := fmt.Sprintf(greetings[lang], a.Name)
	if a.Loud {
		msg = strings.ToUpper(msg) + "!"
	}
	times := a.Times
	if times < 0 {
		return fmt.Errorf("times must not be negative, got %d", times)
	}
	if times == 0 {
		times = 1
	}
	c := color.New(color.FgGreen)
	for range times {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Fprintln(d.out, msg)
	}
	return nil
}

func (d *demo) saveDefaults(ctx context.Context, a *defaultsArgs) error {
	name, ok := d.app.Lookup(a.Command)
	if !ok {
		return &fcli.UnknownCommandError{Name: a.Command}
	}
	args, err := shlex.Split(a.Args)
	if err != nil {
		return fmt.Errorf("failed to split args: %w", err)
	}
	d.cfg.SetDefaults(name, args)
	if err := d.cfg.Save(d.cfgPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.cfgPath, err)
	}
	fmt.Fprintf(d.out, "Saved defaults for %s to %s\n", name, d.cfgPath)
	return nil
}

func (d *demo) shell(ctx context.Context, _ *fcli.Unit) error {
	sc := bufio.NewScanner(d.in)
	for {
		if d.interactive {
			fmt.Fprint(d.out, "fdemo> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := d.app.ExecuteLine(ctx, line); err != nil {
			printCLIError(d.errOut, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, color.RedString("Error: "))
	fmt.Fprintln(w, err)
	var pe *fargs.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintln(w, "Use --help after the command name to list its arguments.")
	}
}

type globalFlags struct {
	Config  string `flag:"config" help:"Config file with default arguments (FDEMO_CONFIG)"`
	NoColor bool   `flag:"no-color" help:"Disable colored output"`
	Version bool   `flag:"version" help:"Print the version"`
}

// parseGlobalFlags pulls fdemo's own flags out of args, wherever they appear,
// and returns what is left for the app. Help flags and anything unknown are
// left in place.
func parseGlobalFlags(args []string) (globalFlags, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlags](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlags{}, nil, err
	}
	if result.Flags.Version {
		return result.Flags, []string{"--version"}, nil
	}
	return result.Flags, result.RemainingArgs, nil
}

// loadConfig returns the config file defaults are read from and saved to.
// An explicit path wins, then FDEMO_CONFIG; otherwise the nearest fcli
// config at or above the working directory is used, falling back to
// fcli.toml in the working directory.
func loadConfig(path string) (string, *fcli.Config) {
	if path == "" {
		path = os.Getenv("FDEMO_CONFIG")
	}
	if path != "" {
		cfg, err := fcli.LoadConfig(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("failed to load config: %v", err)
			}
			return path, nil
		}
		return path, cfg
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("failed to get working directory: %v", err)
		return fcli.ConfigNames[0], nil
	}
	path, cfg, err := fcli.FindConfig(wd)
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return filepath.Join(wd, fcli.ConfigNames[0]), nil
	}
	if path == "" {
		return filepath.Join(wd, fcli.ConfigNames[0]), nil
	}
	return path, cfg
}

func main() {
	g, args, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(2)
	}
	if g.NoColor || !isTerminalFn(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	path, cfg := loadConfig(g.Config)
	d := newDemo(os.Stdout, os.Stderr, os.Stdin, path, cfg)
	d.interactive = isTerminalFn(int(os.Stdin.Fd()))
	if err := d.app.Execute(context.Background(), args); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
}
