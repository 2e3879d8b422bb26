package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Pause key.Binding
	Mode  key.Binding
	Info  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
		Mode:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "halfblock/braille")),
		Info:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Help:  key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "more help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Mode},
		{k.Info, k.Help, k.Quit},
	}
}
