package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	refresh key.Binding
	audit   key.Binding
	alerts  key.Binding
	roster  key.Binding
	request key.Binding
	approve key.Binding
	deny    key.Binding
	unlock  key.Binding
	revoke  key.Binding
	verify  key.Binding
	copy    key.Binding
	copyKey key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("o")),
	refresh: key.NewBinding(key.WithKeys("r")),
	audit:   key.NewBinding(key.WithKeys("g")),
	alerts:  key.NewBinding(key.WithKeys("w")),
	roster:  key.NewBinding(key.WithKeys("f")),
	request: key.NewBinding(key.WithKeys("n")),
	approve: key.NewBinding(key.WithKeys("a")),
	deny:    key.NewBinding(key.WithKeys("d")),
	unlock:  key.NewBinding(key.WithKeys("u")),
	revoke:  key.NewBinding(key.WithKeys("x")),
	verify:  key.NewBinding(key.WithKeys("v")),
	copy:    key.NewBinding(key.WithKeys("c")),
	copyKey: key.NewBinding(key.WithKeys("y")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
