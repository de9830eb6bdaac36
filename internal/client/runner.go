// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/service"
	"github.com/atotto/clipboard"
)

// Result is the outcome of one command.
type Result struct {
	Command Command
	// Output is the text printed for the user.
	Output string
	Err    error
}

// Runner executes parsed commands. It remembers the last response body for
// the copy command and is safe for concurrent use.
type Runner struct {
	services service.ClientService

	mu       sync.Mutex
	lastBody []byte

	// copyToClipboard is replaced in tests.
	copyToClipboard func(string) error

	logger *logger.Logger
}

func NewRunner(services service.ClientService, logger *logger.Logger) *Runner {
	return &Runner{
		services:        services,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}
}

// Run parses and executes line.
func (r *Runner) Run(ctx context.Context, line string) Result {
	cmd, err := ParseCommand(line)
	if err != nil {
		return Result{Command: cmd, Output: err.Error(), Err: err}
	}
	return r.Execute(ctx, cmd)
}

// Execute runs cmd and blocks until it completes.
func (r *Runner) Execute(ctx context.Context, cmd Command) Result {
	log := r.logger.With().Str("command", cmd.Name).Logger()
	log.Debug().Str("method", cmd.Method).Str("path", cmd.Path).Msg("executing command")

	switch cmd.Name {
	case CmdGet, CmdGetAsync:
		body, err := r.services.Get(ctx, cmd.Path)
		return r.response(cmd, body, err)
	case CmdPost:
		body, err := r.services.Post(ctx, cmd.Path, cmd.Body)
		return r.response(cmd, body, err)
	case CmdPostToken:
		body, err := r.services.PerformAuthenticatedRequest(ctx, cmd.Method, cmd.Path, cmd.Body)
		return r.response(cmd, body, err)
	case CmdInvalidate:
		r.services.InvalidateToken()
		log.Info().Msg("Resetting cached Token")
		return Result{Command: cmd, Output: "Cached token reset"}
	case CmdToken:
		if r.services.TokenCached() {
			return Result{Command: cmd, Output: "A token is cached"}
		}
		return Result{Command: cmd, Output: "No token cached"}
	case CmdCopy:
		return r.copyLast(cmd)
	case CmdHelp:
		return Result{Command: cmd, Output: helpText()}
	case CmdExit, CmdQuit:
		return Result{Command: cmd, Output: "Bye"}
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name)
		return Result{Command: cmd, Output: err.Error(), Err: err}
	}
}

func (r *Runner) response(cmd Command, body []byte, err error) Result {
	if err != nil {
		r.logger.Err(err).Str("command", cmd.Name).Str("path", cmd.Path).Msg("command failed")
		return Result{Command: cmd, Output: describeError(cmd, err), Err: err}
	}

	r.mu.Lock()
	r.lastBody = body
	r.mu.Unlock()

	return Result{Command: cmd, Output: string(body)}
}

func (r *Runner) copyLast(cmd Command) Result {
	r.mu.Lock()
	body := r.lastBody
	r.mu.Unlock()

	if body == nil {
		return Result{Command: cmd, Output: ErrNothingToCopy.Error(), Err: ErrNothingToCopy}
	}

	if err := r.copyToClipboard(string(body)); err != nil {
		err = fmt.Errorf("copy to clipboard: %w", err)
		return Result{Command: cmd, Output: err.Error(), Err: err}
	}
	return Result{Command: cmd, Output: fmt.Sprintf("Copied %d bytes to the clipboard", len(body))}
}

// IsCancelled reports whether err came from a cancelled or expired context.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
