package drill

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/mathdrill/internal/drill"
)

func TestTranslate(t *testing.T) {
	km := defaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want []drill.Key
	}{
		{"arrow up", tea.KeyPressMsg{Code: tea.KeyUp}, []drill.Key{drill.Press(drill.KeyUp)}},
		{"vim down", tea.KeyPressMsg{Code: 'j', Text: "j"}, []drill.Key{drill.Press(drill.KeyDown)}},
		{"arrow left", tea.KeyPressMsg{Code: tea.KeyLeft}, []drill.Key{drill.Press(drill.KeyLeft)}},
		{"vim right", tea.KeyPressMsg{Code: 'l', Text: "l"}, []drill.Key{drill.Press(drill.KeyRight)}},
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}, []drill.Key{drill.Press(drill.KeyEnter)}},
		{"backspace", tea.KeyPressMsg{Code: tea.KeyBackspace}, []drill.Key{drill.Press(drill.KeyBackspace)}},
		{"esc", tea.KeyPressMsg{Code: tea.KeyEscape}, []drill.Key{drill.Press(drill.KeyMenu)}},
		{"space", tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, []drill.Key{drill.Press(drill.KeySpace)}},
		{"digit", tea.KeyPressMsg{Code: '7', Text: "7"}, []drill.Key{drill.Digit('7')}},
		{"digit without text", tea.KeyPressMsg{Code: '3'}, []drill.Key{drill.Digit('3')}},
		{"minus", tea.KeyPressMsg{Code: '-', Text: "-"}, []drill.Key{drill.Press(drill.KeyMinus)}},
		{"multi-rune text", tea.KeyPressMsg{Code: '1', Text: "12"}, []drill.Key{drill.Digit('1'), drill.Digit('2')}},
		{"ctrl digit ignored", tea.KeyPressMsg{Code: '5', Mod: tea.ModCtrl}, nil},
		{"letter ignored", tea.KeyPressMsg{Code: 'x', Text: "x"}, nil},
		{"minus without text", tea.KeyPressMsg{Code: '-'}, []drill.Key{drill.Press(drill.KeyMinus)}},
		{"f1 ignored", tea.KeyPressMsg{Code: tea.KeyF1}, nil},
		{"f5 ignored", tea.KeyPressMsg{Code: tea.KeyF5}, nil},
		{"f12 ignored", tea.KeyPressMsg{Code: tea.KeyF12}, nil},
		{"letter without text ignored", tea.KeyPressMsg{Code: 'q'}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.translate(tt.msg))
		})
	}
}
