// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal interface of the FocusOnIt client: a
// task list with a focus timer, driven by the synchronized collections of
// the client services.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil || services.TaskService == nil || services.SessionService == nil {
		return nil, ErrNoServices
	}

	return &TUI{services: services, logger: log}, nil
}

// MainLoop runs the task list until the user quits or ctx ends.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services.TaskService, t.services.SessionService, t.services.Failures())

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.MainLoop").Msg("terminal ui stopped with error")
	}

	return err
}
