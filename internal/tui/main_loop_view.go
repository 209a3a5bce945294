// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/focus-on-it/models"
)

const pageTitle = "FOCUS ON IT"

func (m mainLoopModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if line := m.viewTimer(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.tasks.Loading():
		b.WriteString("Loading tasks...\n")
	case m.tasks.LoadErr() != nil && len(m.tasks.Tasks()) == 0:
		b.WriteString(errorStyle.Render("Could not load tasks: "+userMessage(m.tasks.LoadErr())) + "\n")
		b.WriteString("press r to retry\n")
	default:
		b.WriteString(m.viewTasks())
	}

	if m.inputMode != inputNone {
		label := "New task"
		if m.inputMode == inputRename {
			label = "Rename"
		}
		b.WriteString("\n" + label + ": " + m.input.View() + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	help := hotKeys
	if m.inputMode != inputNone {
		help = "enter: save │ esc: cancel"
	}

	return renderPage(pageTitle, strings.TrimRight(b.String(), "\n"), help)
}

func (m mainLoopModel) viewHeader() string {
	open, done := 0, 0
	for _, task := range m.tasks.Tasks() {
		if task.Done {
			done++
		} else {
			open++
		}
	}

	badge := offlineStyle.Render("● offline")
	if m.tasks.Live() {
		badge = liveStyle.Render("● live")
	}

	return fmt.Sprintf("%s   open: %d   done: %d", badge, open, done)
}

func (m mainLoopModel) viewTimer() string {
	session, ok := m.sessions.Running()
	if !ok {
		return ""
	}

	planned := time.Duration(session.PlannedSeconds) * time.Second
	remaining := planned - session.Elapsed(m.now())

	label := "focus"
	if session.TaskID != nil {
		for _, task := range m.tasks.Tasks() {
			if task.ID == *session.TaskID {
				label = "focus: " + fitText(task.Title, 32)
				break
			}
		}
	}

	line := fmt.Sprintf("⏱ %s %s", formatClock(remaining), label)
	if remaining <= 0 {
		line += " (time is up, press f to stop)"
	}

	return timerStyle.Render(line)
}

func (m mainLoopModel) viewTasks() string {
	tasks := m.tasks.Tasks()
	if len(tasks) == 0 {
		return "No tasks yet, press n to add one\n"
	}

	var b strings.Builder
	for i, task := range tasks {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		b.WriteString(cursor + " " + m.viewTask(task) + "\n")
	}

	return b.String()
}

func (m mainLoopModel) viewTask(task models.Task) string {
	check := "[ ]"
	if task.Done {
		check = "[x]"
	}

	title := fitText(task.Title, 40)
	row := fmt.Sprintf("%s %-40s %s", check, title, priorityLabel(task.Priority))

	switch {
	case m.tasks.IsPending(task.ID):
		return pendingStyle.Render(row + " …")
	case task.Done:
		return doneStyle.Render(row)
	}

	return row
}

func priorityLabel(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return "!!!"
	case models.PriorityMedium:
		return "!!"
	case models.PriorityLow:
		return "!"
	default:
		return ""
	}
}
