// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-token-client/internal/logger"
)

// App runs either a single command given on the command line or the
// interactive shell.
type App struct {
	runner *Runner
	shell  Shell
	out    io.Writer

	logger *logger.Logger
}

func NewApp(runner *Runner, shell Shell, out io.Writer, logger *logger.Logger) *App {
	return &App{
		runner: runner,
		shell:  shell,
		out:    out,
		logger: logger,
	}
}

// Run implements [Client]. In one-shot mode the command output is written to
// the app's writer and a failed command is returned as an error.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.logger.Info().Msg("starting interactive shell")
		return a.shell.Run(ctx)
	}

	res := a.runner.Run(ctx, strings.Join(args, " "))
	if res.Output != "" {
		fmt.Fprintln(a.out, res.Output)
	}

	return res.Err
}
