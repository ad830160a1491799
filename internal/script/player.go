package script

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/text"
)

// ErrNoClipboard is returned by a paste command when the player has no
// clipboard to stage the text on.
var ErrNoClipboard = errors.New("script: paste needs a clipboard")

// ExpectationError reports a failed expect command.
type ExpectationError struct {
	Pos  string
	Want string
	Got  string
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("script: %s: expected value %q, got %q", e.Pos, e.Want, e.Got)
}

// Player replays scripts against a text field, the way a host toolkit would
// deliver the corresponding input events.
type Player struct {
	field     *edit.TextField
	clipboard edit.Clipboard
}

// NewPlayer returns a player driving field. clipboard should be the one
// the field was configured with; paste commands stage their text on it.
// It may be nil if the script does not paste.
func NewPlayer(field *edit.TextField, clipboard edit.Clipboard) *Player {
	return &Player{field: field, clipboard: clipboard}
}

// Run executes the commands of s in order, stopping at the first error or
// when ctx is done.
func (p *Player) Run(ctx context.Context, s *Script) error {
	for _, cmd := range s.Commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		ggedit.Logger().Debug("script: command", "kind", cmd.Kind(), "pos", cmd.Pos.String())
		if err := p.exec(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) exec(cmd *Command) error {
	f := p.field
	switch {
	case cmd.Type != nil:
		for _, r := range string(*cmd.Type) {
			if r == '\n' {
				p.press(edit.KeyEvent{Key: edit.KeyEnter, Mods: edit.ModShift})
				continue
			}
			f.HandleChar(r)
		}

	case cmd.Char != nil:
		s := string(*cmd.Char)
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("script: %s: char takes exactly one character, got %q", cmd.Pos, s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		f.HandleChar(r)

	case cmd.Paste != nil:
		if p.clipboard == nil {
			return fmt.Errorf("script: %s: %w", cmd.Pos, ErrNoClipboard)
		}
		if err := p.clipboard.SetText(string(*cmd.Paste)); err != nil {
			return fmt.Errorf("script: %s: %w", cmd.Pos, err)
		}
		p.press(edit.KeyEvent{Key: edit.KeyV, Mods: edit.ModControl})

	case cmd.Expect != nil:
		if want := string(*cmd.Expect); f.Value() != want {
			return &ExpectationError{Pos: cmd.Pos.String(), Want: want, Got: f.Value()}
		}

	case cmd.Key != nil:
		e, err := cmd.Key.Event()
		if err != nil {
			return fmt.Errorf("script: %s: %w", cmd.Pos, err)
		}
		p.press(e)

	case cmd.Click != nil:
		f.PointerDown(text.Pt(cmd.Click.X, cmd.Click.Y))

	case cmd.Drag != nil:
		f.PointerDrag(text.Pt(cmd.Drag.X, cmd.Drag.Y))

	case cmd.Select != nil:
		f.Select(cmd.Select.Anchor, cmd.Select.Caret)

	case cmd.Focus != nil:
		f.SetFocused(cmd.Focus.On)

	case cmd.Hover != nil:
		f.SetHovered(cmd.Hover.On)

	default:
		return fmt.Errorf("script: %s: empty command", cmd.Pos)
	}
	return nil
}

// press delivers a key-down and key-up pair.
func (p *Player) press(e edit.KeyEvent) {
	p.field.HandleKey(e)
	p.field.HandleKeyUp(e)
}

// Event converts the chord to a key event. The last part names the key,
// the others are modifiers.
func (c *Chord) Event() (edit.KeyEvent, error) {
	if len(c.Parts) == 0 {
		return edit.KeyEvent{}, errors.New("empty key chord")
	}
	last := len(c.Parts) - 1

	var e edit.KeyEvent
	for _, name := range c.Parts[:last] {
		m, err := edit.ParseModifier(name)
		if err != nil {
			return edit.KeyEvent{}, err
		}
		e.Mods |= m
	}
	k, err := edit.ParseKey(c.Parts[last])
	if err != nil {
		return edit.KeyEvent{}, err
	}
	e.Key = k
	return e, nil
}
