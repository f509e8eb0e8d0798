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
	personal key.Binding
	license  key.Binding
	passport key.Binding
	save     key.Binding
	refresh  key.Binding
	reveal   key.Binding
	copy     key.Binding
	toggle   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	personal: key.NewBinding(key.WithKeys("e")),
	license:  key.NewBinding(key.WithKeys("l")),
	passport: key.NewBinding(key.WithKeys("p")),
	save:     key.NewBinding(key.WithKeys("s")),
	refresh:  key.NewBinding(key.WithKeys("g")),
	reveal:   key.NewBinding(key.WithKeys("ctrl+r")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
}
