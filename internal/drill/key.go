package drill

// KeyKind is a logical input symbol, independent of the terminal.
type KeyKind int

const (
	KeyUp KeyKind = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
	KeyDigit
	KeyMinus
	KeyMenu
	KeySpace
)

func (k KeyKind) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyDigit:
		return "digit"
	case KeyMinus:
		return "minus"
	case KeyMenu:
		return "menu"
	case KeySpace:
		return "space"
	}
	return "unknown"
}

// Key is one logical key press. Digit is set only for KeyDigit and holds
// the ASCII character '0' through '9'.
type Key struct {
	Kind  KeyKind
	Digit byte
}

// Press returns a non-digit key.
func Press(kind KeyKind) Key {
	return Key{Kind: kind}
}

// Digit returns the key for the digit character c.
func Digit(c byte) Key {
	return Key{Kind: KeyDigit, Digit: c}
}

// KeysFor maps typed text to keys, one per recognised rune. Other runes
// are dropped.
func KeysFor(text string) []Key {
	var keys []Key
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			keys = append(keys, Digit(byte(r)))
		case r == '-':
			keys = append(keys, Press(KeyMinus))
		case r == ' ':
			keys = append(keys, Press(KeySpace))
		}
	}
	return keys
}
