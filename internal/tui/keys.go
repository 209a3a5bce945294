// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	toggle  key.Binding
	newItem key.Binding
	rename  key.Binding
	delete  key.Binding
	focus   key.Binding
	copy    key.Binding
	refresh key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	toggle:  key.NewBinding(key.WithKeys(" ", "x")),
	newItem: key.NewBinding(key.WithKeys("n")),
	rename:  key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d", "ctrl+d")),
	focus:   key.NewBinding(key.WithKeys("f")),
	copy:    key.NewBinding(key.WithKeys("c")),
	refresh: key.NewBinding(key.WithKeys("r")),
}

const hotKeys = "space: done │ n: new │ e: rename │ d: delete │ f: focus │ c: copy │ r: refresh │ ↑/↓: nav │ q: quit"
