// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termcanvas

import (
	"github.com/gdamore/tcell/v2"
)

// Event is a logical input event.
type Event int

const (
	// EventNone is returned for keys without a binding.
	EventNone Event = iota
	// EventQuit asks the application to exit.
	EventQuit
	// EventUp is the up arrow.
	EventUp
	// EventDown is the down arrow.
	EventDown
	// EventLeft is the left arrow.
	EventLeft
	// EventRight is the right arrow.
	EventRight
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	default:
		return "none"
	}
}

// PollEvents drains the pending terminal events without blocking and
// returns the bound ones in arrival order. Resize events resynchronize
// the screen.
func (c *Canvas) PollEvents() []Event {
	if c.closed {
		return nil
	}

	var events []Event
	for c.screen.HasPendingEvent() {
		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if e := mapKey(ev.Key(), ev.Rune()); e != EventNone {
				events = append(events, e)
			}
		case *tcell.EventResize:
			c.screen.Sync()
		case nil:
			// Screen finalized.
			return append(events, EventQuit)
		}
	}
	return events
}

// mapKey binds keys to events: arrows to their directions; Escape,
// Ctrl-C and q to quit.
func mapKey(key tcell.Key, r rune) Event {
	switch key {
	case tcell.KeyUp:
		return EventUp
	case tcell.KeyDown:
		return EventDown
	case tcell.KeyLeft:
		return EventLeft
	case tcell.KeyRight:
		return EventRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return EventQuit
	case tcell.KeyRune:
		if r == 'q' || r == 'Q' {
			return EventQuit
		}
	}
	return EventNone
}
