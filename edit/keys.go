package edit

import (
	"fmt"
	"strings"
)

// Key identifies a key on the keyboard.
// Only the keys a text field reacts to are named; anything else is KeyUnknown.
type Key int

// Keys recognized by TextField.
const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyKeypadEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
)

var keyNames = map[Key]string{
	KeyUnknown:     "unknown",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyBackspace:   "backspace",
	KeyDelete:      "delete",
	KeyEnter:       "enter",
	KeyKeypadEnter: "kpenter",
	KeyEscape:      "escape",
	KeyA:           "a",
	KeyC:           "c",
	KeyV:           "v",
	KeyX:           "x",
}

// String returns the lower-case key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey parses a key name as returned by Key.String (case-insensitive).
// "esc", "del" and "return" are accepted as aliases.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "esc":
		return KeyEscape, nil
	case "del":
		return KeyDelete, nil
	case "return":
		return KeyEnter, nil
	}
	for k, n := range keyNames {
		if n == name && k != KeyUnknown {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("edit: unknown key %q", name)
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

// Modifier keys.
const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
)

// Shift reports whether Shift is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// ControlOnly reports whether Control is held without Shift or Alt.
func (m Modifiers) ControlOnly() bool {
	return m&(ModShift|ModControl|ModAlt) == ModControl
}

// String returns the held modifiers joined with '+', e.g. "shift+ctrl".
func (m Modifiers) String() string {
	var parts []string
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModControl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	return strings.Join(parts, "+")
}

// ParseModifier parses a single modifier name: shift, ctrl (control) or alt.
func ParseModifier(name string) (Modifiers, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return ModShift, nil
	case "ctrl", "control":
		return ModControl, nil
	case "alt":
		return ModAlt, nil
	default:
		return 0, fmt.Errorf("edit: unknown modifier %q", name)
	}
}

// KeyEvent is a key-down or key-up event.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}
