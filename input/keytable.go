package input

import (
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/turngrid/core"
)

// ErrInvalidBinding is returned for a key binding that cannot be installed
var ErrInvalidBinding = errors.New("invalid key binding")

// KeyTable maps single printable keys to movement directions
// Keys are stored lowercase; lookups fold case
type KeyTable struct {
	Moves map[rune]core.Direction
}

// DefaultKeyTable returns the qweadzxc layout around 's'
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Moves: map[rune]core.Direction{
			'q': core.DirNW,
			'w': core.DirN,
			'e': core.DirNE,
			'a': core.DirW,
			'd': core.DirE,
			'z': core.DirSW,
			'x': core.DirS,
			'c': core.DirSE,
		},
	}
}

// NewKeyTable builds a table from key → direction-name bindings, e.g. {"w": "n"}
// An empty map yields the default table
func NewKeyTable(bindings map[string]string) (*KeyTable, error) {
	if len(bindings) == 0 {
		return DefaultKeyTable(), nil
	}

	kt := &KeyTable{Moves: make(map[rune]core.Direction, len(bindings))}
	for key, name := range bindings {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return nil, errors.Wrapf(ErrInvalidBinding, "key %q must be a single printable character", key)
		}
		dir, ok := core.ParseDirection(name)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidBinding, "key %q: unknown direction %q", key, name)
		}
		r = unicode.ToLower(r)
		if _, dup := kt.Moves[r]; dup {
			return nil, errors.Wrapf(ErrInvalidBinding, "key %q bound twice", key)
		}
		kt.Moves[r] = dir
	}
	return kt, nil
}

// Lookup returns the direction bound to r, ignoring case
func (kt *KeyTable) Lookup(r rune) (core.Direction, bool) {
	dir, ok := kt.Moves[unicode.ToLower(r)]
	return dir, ok
}

// IsQuit reports whether ev is Escape or Control+C
func IsQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Modifiers()&tcell.ModCtrl != 0 && (key.Rune() == 'c' || key.Rune() == 'C')
	}
	return false
}

// Direction resolves a terminal event to a movement direction
// Only rune key presses can move; everything else reports false
func (kt *KeyTable) Direction(ev tcell.Event) (core.Direction, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok || key.Key() != tcell.KeyRune {
		return core.DirNone, false
	}
	return kt.Lookup(key.Rune())
}
