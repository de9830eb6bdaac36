// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter key.Binding
	prev  key.Binding
	next  key.Binding
	quit  key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter")),
	prev:  key.NewBinding(key.WithKeys("up")),
	next:  key.NewBinding(key.WithKeys("down")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d")),
}
