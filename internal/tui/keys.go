package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	nextType key.Binding
	prevType key.Binding
	template key.Binding
	decorate key.Binding
	saveQR   key.Binding
	copy     key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	reload   key.Binding
	addRow   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	nextType: key.NewBinding(key.WithKeys("ctrl+l")),
	prevType: key.NewBinding(key.WithKeys("ctrl+h")),
	template: key.NewBinding(key.WithKeys("ctrl+t")),
	decorate: key.NewBinding(key.WithKeys("ctrl+d")),
	saveQR:   key.NewBinding(key.WithKeys("ctrl+s")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	reload:   key.NewBinding(key.WithKeys("r")),
	addRow:   key.NewBinding(key.WithKeys("ctrl+a")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
