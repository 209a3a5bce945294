// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/focus-on-it/internal/optimistic"
	"github.com/MKhiriev/focus-on-it/internal/service"
	"github.com/MKhiriev/focus-on-it/models"
)

const (
	defaultFocusLength = 25 * time.Minute
	tickInterval       = time.Second
	maxTitleInput      = 200
)

type inputMode int

const (
	inputNone inputMode = iota
	inputCreate
	inputRename
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx      context.Context
	tasks    service.ClientTaskService
	sessions service.ClientSessionService
	failures <-chan error
	now      func() time.Time

	focusLength time.Duration

	idx int

	input     textinput.Model
	inputMode inputMode
	renameID  string
	creating  bool

	status string
	errMsg string
}

func newMainLoopModel(ctx context.Context, tasks service.ClientTaskService, sessions service.ClientSessionService, failures <-chan error) mainLoopModel {
	input := textinput.New()
	input.CharLimit = maxTitleInput
	input.Width = 48

	return mainLoopModel{
		ctx:         ctx,
		tasks:       tasks,
		sessions:    sessions,
		failures:    failures,
		now:         time.Now,
		focusLength: defaultFocusLength,
		input:       input,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(tick(), waitFailure(m.failures))
}

// tick redraws the list so changes pushed by the server and the timer show
// up without a key press.
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitFailure(failures <-chan error) tea.Cmd {
	if failures == nil {
		return nil
	}

	return func() tea.Msg {
		err, ok := <-failures
		if !ok {
			return nil
		}
		return failureMsg{err: err}
	}
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.clampCursor()
		return m, tick()
	case failureMsg:
		m.status = ""
		m.errMsg = userMessage(msg.err)
		return m, waitFailure(m.failures)
	case opDoneMsg:
		m.clampCursor()
		return m, nil
	case createDoneMsg:
		m.creating = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Task added"
		m.selectTask(msg.task.ID)
		return m, nil
	case sessionStartedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Focus session started"
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "List refreshed"
		m.clampCursor()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.inputMode != inputNone {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.inputMode != inputNone {
		return m.updateInput(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.tasks.Tasks())-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		if m.creating {
			return m, nil
		}
		m.startInput(inputCreate, "", "")
		return m, textinput.Blink
	case key.Matches(msg, keys.refresh):
		m.status = "Refreshing..."
		m.errMsg = ""
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.focus):
		return m.toggleFocus()
	}

	task, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.toggle):
		return m.runOperation(m.tasks.Toggle(task.ID))
	case key.Matches(msg, keys.delete):
		return m.runOperation(m.tasks.Delete(task.ID))
	case key.Matches(msg, keys.rename):
		m.startInput(inputRename, task.ID, task.Title)
		return m, textinput.Blink
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(task.Title)
	}

	return m, nil
}

func (m mainLoopModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stopInput()
		return m, nil
	case key.Matches(msg, keys.enter):
		title := strings.TrimSpace(m.input.Value())
		mode, id := m.inputMode, m.renameID
		m.stopInput()

		if title == "" {
			m.errMsg = "Title must not be empty"
			return m, nil
		}

		if mode == inputRename {
			return m.runOperation(m.tasks.Rename(id, title))
		}

		m.creating = true
		m.status = "Adding task..."
		m.errMsg = ""
		return m, m.cmdCreate(title)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runOperation reports a rejected operation at once. An accepted one is
// already visible locally; its outcome arrives through the failures channel.
func (m mainLoopModel) runOperation(op *optimistic.Operation, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.errMsg = userMessage(err)
		return m, nil
	}

	m.errMsg = ""
	m.status = ""
	m.clampCursor()
	return m, m.cmdWait(op)
}

func (m mainLoopModel) toggleFocus() (tea.Model, tea.Cmd) {
	if _, running := m.sessions.Running(); running {
		op, err := m.sessions.Stop()
		if err == nil {
			m.status = "Focus session stopped"
		}
		return m.runOperationKeepStatus(op, err)
	}

	var taskID *string
	if task, ok := m.current(); ok {
		id := task.ID
		taskID = &id
	}

	m.status = "Starting focus session..."
	m.errMsg = ""
	return m, m.cmdStartSession(taskID)
}

func (m mainLoopModel) runOperationKeepStatus(op *optimistic.Operation, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.status = ""
		m.errMsg = userMessage(err)
		return m, nil
	}

	m.errMsg = ""
	return m, m.cmdWait(op)
}

func (m *mainLoopModel) startInput(mode inputMode, id, value string) {
	m.inputMode = mode
	m.renameID = id
	m.input.Placeholder = "task title"
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.errMsg = ""
	m.status = ""
}

func (m *mainLoopModel) stopInput() {
	m.inputMode = inputNone
	m.renameID = ""
	m.input.Blur()
	m.input.Reset()
}

func (m mainLoopModel) current() (models.Task, bool) {
	tasks := m.tasks.Tasks()
	if len(tasks) == 0 || m.idx < 0 || m.idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.idx], true
}

// clampCursor keeps the cursor on the list after rows were removed remotely
// or by a rollback.
func (m *mainLoopModel) clampCursor() {
	n := len(m.tasks.Tasks())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *mainLoopModel) selectTask(id string) {
	for i, task := range m.tasks.Tasks() {
		if task.ID == id {
			m.idx = i
			return
		}
	}
	m.clampCursor()
}

func (m mainLoopModel) cmdWait(op *optimistic.Operation) tea.Cmd {
	if op == nil {
		return nil
	}
	ctx := m.ctx

	return func() tea.Msg {
		return opDoneMsg{err: op.Wait(ctx)}
	}
}

func (m mainLoopModel) cmdCreate(title string) tea.Cmd {
	ctx := m.ctx
	svc := m.tasks

	return func() tea.Msg {
		task, err := svc.Create(ctx, models.NewTask{Title: title, Priority: models.PriorityMedium})
		return createDoneMsg{task: task, err: err}
	}
}

func (m mainLoopModel) cmdStartSession(taskID *string) tea.Cmd {
	ctx := m.ctx
	svc := m.sessions
	length := m.focusLength

	return func() tea.Msg {
		_, err := svc.Start(ctx, taskID, length)
		return sessionStartedMsg{err: err}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	tasks, sessions := m.tasks, m.sessions

	return func() tea.Msg {
		if err := tasks.Refresh(ctx); err != nil {
			return refreshDoneMsg{err: err}
		}
		return refreshDoneMsg{err: sessions.Refresh(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}
