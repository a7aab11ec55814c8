// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"github.com/yeetrun/fcli/pkg/fileutil"
	"gopkg.in/yaml.v3"
)

// ConfigNames are the file names FindConfig looks for, in order.
var ConfigNames = []string{"fcli.toml", "fcli.yaml", "fcli.yml", "fcli.jsonc", "fcli.json"}

// Config holds default arguments per command. Defaults are placed before
// the user's arguments, so a flag given on the command line wins.
//
//	[commands.greet]
//	args = ["-name", "world"]
type Config struct {
	Commands map[string]CommandDefaults `toml:"commands,omitempty" yaml:"commands,omitempty" json:"commands,omitempty"`
}

// CommandDefaults are the default tokens for one command.
type CommandDefaults struct {
	Args []string `toml:"args,omitempty" yaml:"args,omitempty" json:"args,omitempty"`
}

// LoadConfig reads a config file. The extension picks the format: .yaml
// and .yml are YAML, .json and .jsonc are JSON with comments and trailing
// commas allowed, anything else is TOML.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch configFormat(path) {
	case formatYAML:
		err = yaml.Unmarshal(b, &cfg)
	case formatJSON:
		err = json.Unmarshal(jsonc.ToJSON(b), &cfg)
	default:
		_, err = toml.Decode(string(b), &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// FindConfig looks for one of ConfigNames in startDir and each parent
// directory. It returns an empty path and no error when none exists.
func FindConfig(startDir string) (string, *Config, error) {
	path, err := findConfigPath(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return "", nil, err
	}
	return path, cfg, nil
}

func findConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range ConfigNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Save writes the config to path in the format LoadConfig expects for it.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	switch configFormat(path) {
	case formatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	case formatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return err
		}
	default:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return err
		}
	}
	if same, err := fileutil.SameContent(path, buf.Bytes()); err != nil || same {
		return err
	}
	return fileutil.WriteFile(path, buf.Bytes(), 0o644)
}

// SetDefaults replaces the default arguments of a command.
func (c *Config) SetDefaults(command string, args []string) {
	if c.Commands == nil {
		c.Commands = make(map[string]CommandDefaults)
	}
	for name := range c.Commands {
		if name != command && strings.EqualFold(name, command) {
			delete(c.Commands, name)
		}
	}
	c.Commands[command] = CommandDefaults{Args: append([]string(nil), args...)}
}

func (c *Config) defaultArgs(command string) []string {
	if c == nil {
		return nil
	}
	if d, ok := c.Commands[command]; ok {
		return d.Args
	}
	for name, d := range c.Commands {
		if strings.EqualFold(name, command) {
			return d.Args
		}
	}
	return nil
}

type format int

const (
	formatTOML format = iota
	formatYAML
	formatJSON
)

func configFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".json", ".jsonc":
		return formatJSON
	}
	return formatTOML
}
