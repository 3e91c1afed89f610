package drill

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/drill"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Backspace key.Binding
	Menu      key.Binding
	Space     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Menu:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Space:     key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "continue")),
	}
}

// translate maps a key press to logical keys. Typed text may produce
// several keys; unknown presses produce none.
func (km keyMap) translate(msg tea.KeyPressMsg) []drill.Key {
	bindings := []struct {
		b    key.Binding
		kind drill.KeyKind
	}{
		{km.Up, drill.KeyUp},
		{km.Down, drill.KeyDown},
		{km.Left, drill.KeyLeft},
		{km.Right, drill.KeyRight},
		{km.Enter, drill.KeyEnter},
		{km.Backspace, drill.KeyBackspace},
		{km.Menu, drill.KeyMenu},
		{km.Space, drill.KeySpace},
	}
	for _, bk := range bindings {
		if key.Matches(msg, bk.b) {
			return []drill.Key{drill.Press(bk.kind)}
		}
	}

	if msg.Mod.Contains(tea.ModCtrl) || msg.Mod.Contains(tea.ModAlt) {
		return nil
	}
	if msg.Text != "" {
		return drill.KeysFor(msg.Text)
	}
	// Named keys such as F1 carry no text; only bare digit and minus codes count.
	if (msg.Code >= '0' && msg.Code <= '9') || msg.Code == '-' {
		return drill.KeysFor(string(msg.Code))
	}
	return nil
}
