// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var heading = color.New(color.Bold)

func aliasSuffix(aliases []string) string {
	if len(aliases) == 0 {
		return ""
	}
	if len(aliases) == 1 {
		return fmt.Sprintf(" (alias: %s)", aliases[0])
	}
	return fmt.Sprintf(" (aliases: %s)", strings.Join(aliases, ", "))
}

// Help returns the top-level help: the description followed by the full
// help of every command in registration order.
func (a *App) Help() string {
	var b strings.Builder
	if a.description != "" {
		b.WriteString(a.description)
		b.WriteString("\n\n")
	}
	if a.version != nil {
		fmt.Fprintf(&b, "Version: %s\n\n", a.version)
	}
	b.WriteString(heading.Sprint("Commands:"))
	b.WriteString("\n")
	for _, r := range a.order {
		fmt.Fprintf(&b, "  %s\n", r.help())
	}
	return b.String()
}

// CommandHelp returns the help for the named command or alias.
func (a *App) CommandHelp(name string) (string, bool) {
	r, ok := a.commands[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return r.help(), true
}

func commandHelp(info *commandInfo, argsHelp string) string {
	var b strings.Builder
	b.WriteString(info.name)
	b.WriteString(aliasSuffix(info.aliases))
	if info.description != "" {
		fmt.Fprintf(&b, "\n  Description: %s\n", info.description)
	}
	if argsHelp != "" {
		b.WriteString("\n  ")
		b.WriteString(heading.Sprint("Arguments:"))
		b.WriteString("\n")
		b.WriteString(argsHelp)
	}
	return b.String()
}
