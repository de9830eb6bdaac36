// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-token-client/internal/client"
	"github.com/MKhiriev/go-token-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxScrollback = 200
	maxHistory    = 100
)

// shellModel is the bubbletea model of the shell.
//
// Every command runs as a tea.Cmd so input stays responsive. A blocking
// command keeps the shell busy until it completes. Async commands (get-async)
// never do, and their results are printed whenever they arrive.
type shellModel struct {
	ctx       context.Context
	runner    *client.Runner
	buildInfo models.AppBuildInfo

	input   textinput.Model
	spinner spinner.Model

	lines   []string
	history []string
	// histPos indexes history while browsing with up/down; len(history)
	// means a fresh line.
	histPos int

	busy     bool
	inFlight int
	quitting bool
}

func newShellModel(ctx context.Context, runner *client.Runner, buildInfo models.AppBuildInfo) shellModel {
	in := textinput.New()
	in.Prompt = promptStyle.Render(promptText) + " "
	in.Placeholder = "help"
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return shellModel{
		ctx:       ctx,
		runner:    runner,
		buildInfo: buildInfo,
		input:     in,
		spinner:   s,
	}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			return m.submit()
		case key.Matches(msg, keys.prev):
			m.browseHistory(-1)
			return m, nil
		case key.Matches(msg, keys.next):
			m.browseHistory(1)
			return m, nil
		}

	case commandDoneMsg:
		m.inFlight--
		if !msg.result.Command.Async() {
			m.busy = false
		}
		m.appendResult(msg.result)
		return m, nil

	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	m.appendLine(promptText + " " + line)
	if line == "" {
		return m, nil
	}
	m.remember(line)

	cmd, err := client.ParseCommand(line)
	if err != nil {
		m.appendError(err.Error())
		return m, nil
	}

	if cmd.Quit() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.busy && !cmd.Async() {
		m.appendError("a request is still running, use get-async or wait")
		return m, nil
	}

	if cmd.Async() {
		m.appendLine(helpStyle.Render("dispatched " + cmd.Method + " " + cmd.Path))
	} else {
		m.busy = true
	}

	m.inFlight++
	if m.inFlight == 1 {
		return m, tea.Batch(m.execute(cmd), m.spinner.Tick)
	}
	return m, m.execute(cmd)
}

// execute returns a tea.Cmd running cmd off the update loop.
func (m shellModel) execute(cmd client.Command) tea.Cmd {
	ctx, runner := m.ctx, m.runner
	return func() tea.Msg {
		return commandDoneMsg{result: runner.Execute(ctx, cmd)}
	}
}

func (m *shellModel) appendResult(res client.Result) {
	if res.Err != nil {
		m.appendError(res.Output)
		return
	}
	m.appendLine(res.Output)
}

func (m *shellModel) appendError(s string) {
	m.appendLine(errorStyle.Render(s))
}

func (m *shellModel) appendLine(s string) {
	m.lines = append(m.lines, s)
	if over := len(m.lines) - maxScrollback; over > 0 {
		m.lines = m.lines[over:]
	}
}

func (m *shellModel) remember(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
		if over := len(m.history) - maxHistory; over > 0 {
			m.history = m.history[over:]
		}
	}
	m.histPos = len(m.history)
}

func (m *shellModel) browseHistory(step int) {
	pos := m.histPos + step
	if pos < 0 || pos > len(m.history) {
		return
	}
	m.histPos = pos

	if pos == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}
