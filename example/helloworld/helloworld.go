// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yeetrun/fcli/pkg/fargs"
	"github.com/yeetrun/fcli/pkg/fcli"
)

type helloArgs struct {
	Name string
}

func main() {
	app := fcli.New().WithDescription("Says hello.")
	fcli.Command(app, "hello",
		fargs.String("name", func(a *helloArgs) *string { return &a.Name }).Required(),
	).OnExecute(func(ctx context.Context, a *helloArgs) error {
		fmt.Printf("Hello, %s!\n", a.Name)
		return nil
	})
	if err := app.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
