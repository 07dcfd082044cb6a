package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	plus    key.Binding
	minus   key.Binding
	toggle  key.Binding
	refresh key.Binding
	copy    key.Binding
	info    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	plus:    key.NewBinding(key.WithKeys("+", "=")),
	minus:   key.NewBinding(key.WithKeys("-", "_")),
	toggle:  key.NewBinding(key.WithKeys("t")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	info:    key.NewBinding(key.WithKeys("v")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
