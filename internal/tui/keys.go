package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Grab, Drop, Cancel    key.Binding
	AddContainer, AddItem key.Binding
	Help, Quit            key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Grab:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab")),
		Drop:         key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "drop")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		AddContainer: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "add container")),
		AddItem:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseHelp and dragHelp switch the footer with the mode.
type browseHelp struct{ k keyMap }

func (h browseHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Grab, h.k.AddItem, h.k.AddContainer, h.k.Help, h.k.Quit}
}

func (h browseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Left, h.k.Right},
		{h.k.Grab, h.k.AddItem, h.k.AddContainer},
		{h.k.Help, h.k.Quit},
	}
}

type dragHelp struct{ k keyMap }

func (h dragHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Left, h.k.Right, h.k.Drop, h.k.Cancel}
}

func (h dragHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
