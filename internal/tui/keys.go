package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Pop     key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	keys := keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", " ", "enter", "n"),
			key.WithHelp("→/space", "next"),
		),
		Pop: key.NewBinding(
			key.WithKeys("h", "e"),
			key.WithHelp("h", "pop a heart"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start over"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	keys.Restart.SetEnabled(false)
	return keys
}

// sync enables the bindings that make sense for the current stage so the
// help view only advertises reachable actions.
func (k *keyMap) sync(s stage) {
	k.Next.SetEnabled(s == stageBrowsing)
	k.Pop.SetEnabled(s == stageBrowsing)
	k.Restart.SetEnabled(s == stageFinale)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Restart, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Pop, k.Restart},
		{k.Help, k.Quit},
	}
}
