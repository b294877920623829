package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction is the abstract meaning of a key press.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyQuit
	KeyNextTab
	KeyPrevTab
	KeySelectTab
	KeyUp
	KeyDown
	KeyTop
	KeyBottom
	KeyPageUp
	KeyPageDown
	KeySelect
	KeyBack
	KeyStartSearch
	KeyInstall
	KeyRefresh
	KeyHelp
	KeyCopyInstall
)

// KeyInput is a resolved key press. Tab is set for KeySelectTab.
type KeyInput struct {
	Action KeyAction
	Tab    int
}

// Keymap defines all key bindings.
type Keymap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Tabs    [3]key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Select      key.Binding
	Back        key.Binding
	Search      key.Binding
	Install     key.Binding
	Refresh     key.Binding
	Help        key.Binding
	CopyInstall key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous view"),
		),
		Tabs: [3]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all time")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "trending")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hot")),
		},

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Install: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "install"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CopyInstall: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy install command"),
		),
	}
}

// Resolve maps a raw key to its abstract action. ok is false for keys
// with no binding.
func (k Keymap) Resolve(msg tea.KeyMsg) (in KeyInput, ok bool) {
	for i, b := range k.Tabs {
		if key.Matches(msg, b) {
			return KeyInput{Action: KeySelectTab, Tab: i}, true
		}
	}

	bindings := []struct {
		binding key.Binding
		action  KeyAction
	}{
		{k.Quit, KeyQuit},
		{k.NextTab, KeyNextTab},
		{k.PrevTab, KeyPrevTab},
		{k.Up, KeyUp},
		{k.Down, KeyDown},
		{k.Top, KeyTop},
		{k.Bottom, KeyBottom},
		{k.PageUp, KeyPageUp},
		{k.PageDown, KeyPageDown},
		{k.Select, KeySelect},
		{k.Back, KeyBack},
		{k.Search, KeyStartSearch},
		{k.Install, KeyInstall},
		{k.Refresh, KeyRefresh},
		{k.Help, KeyHelp},
		{k.CopyInstall, KeyCopyInstall},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return KeyInput{Action: b.action}, true
		}
	}
	return KeyInput{}, false
}
