package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Add        key.Binding
	Remove     key.Binding
	Save       key.Binding
	ExportJSON key.Binding
	ExportPDF  key.Binding
	Print      key.Binding
	Theme      key.Binding
	Font       key.Binding
	Dark       key.Binding
	Enhance    key.Binding
	Import     key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Add:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add item")),
		Remove:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove item")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		ExportJSON: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "json")),
		ExportPDF:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pdf")),
		Print:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "print")),
		Theme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Font:       key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "font")),
		Dark:       key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "dark mode")),
		Enhance:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "enhance summary")),
		Import:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "import json")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "import")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Add, k.Remove, k.Save, k.ExportPDF, k.Import, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Add, k.Remove},
		{k.Save, k.ExportJSON, k.ExportPDF, k.Print, k.Import},
		{k.Theme, k.Font, k.Dark, k.Enhance, k.Quit},
	}
}
