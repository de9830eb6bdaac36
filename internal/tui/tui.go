// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive shell of the token client.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-token-client/internal/client"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	runner    *client.Runner
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(runner *client.Runner, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		runner:    runner,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run implements [client.Shell]. It returns nil when the user leaves the
// shell or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newShellModel(ctx, t.runner, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Msg("shell stopped")
		return err
	}
	return nil
}
