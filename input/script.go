package input

import "github.com/gdamore/tcell/v2"

// ScriptSource replays a fixed event list, then reports closed by returning nil
type ScriptSource struct {
	events []tcell.Event
	next   int
}

// NewScriptSource creates a source yielding events in order
func NewScriptSource(events ...tcell.Event) *ScriptSource {
	return &ScriptSource{events: events}
}

// PollEvent returns the next scripted event, or nil when exhausted
func (s *ScriptSource) PollEvent() tcell.Event {
	if s.next >= len(s.events) {
		return nil
	}
	ev := s.events[s.next]
	s.next++
	return ev
}

// Remaining returns how many events are left
func (s *ScriptSource) Remaining() int {
	return len(s.events) - s.next
}

// KeyEvents converts each rune of keys to a plain key press
func KeyEvents(keys string) []tcell.Event {
	events := make([]tcell.Event, 0, len(keys))
	for _, r := range keys {
		events = append(events, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return events
}

// EscapeEvent returns an Escape key press
func EscapeEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
}
