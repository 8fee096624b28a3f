// Package score turns tempo-annotated note tables into timed note and rest
// events.
package score

import (
	"errors"
	"fmt"
)

// Note is one entry of a score: a pitch in Hz held for Num/Den of a whole
// note. Gate is the audible percentage of that duration; the remainder is an
// implicit rest.
type Note struct {
	Pitch uint16
	Num   uint8
	Den   uint8
	Gate  uint8
}

// Score is a piece of music. Tempo is in whole notes per minute, usually
// written as quarter notes per minute over 4.
type Score struct {
	Name  string
	Tempo uint8
	Notes []Note
}

var ErrZeroTempo = errors.New("tempo must be positive")

// Validate reports scores that would make the scheduler divide by zero or
// produce negative rests.
func (s Score) Validate() error {
	if s.Tempo == 0 {
		return fmt.Errorf("%s: %w", s.Name, ErrZeroTempo)
	}
	for i, n := range s.Notes {
		if n.Den == 0 {
			return fmt.Errorf("%s: note %d: zero duration denominator", s.Name, i)
		}
		if n.Gate > 100 {
			return fmt.Errorf("%s: note %d: gate %d%% above 100%%", s.Name, i, n.Gate)
		}
	}
	return nil
}

// WholeMs is the duration of a whole note in milliseconds.
func (s Score) WholeMs() uint32 {
	return 60 * 1000 / uint32(s.Tempo)
}

// Events returns a fresh event sequence for s.
func (s Score) Events() *Events {
	return &Events{wholeMs: s.WholeMs(), notes: s.Notes}
}

// MsEvents returns a fresh per-millisecond view of s.
func (s Score) MsEvents() *MsEvents {
	return s.Events().MsEvents()
}

// MsDuration is the sum of the durations of every event of s.
func (s Score) MsDuration() uint32 {
	var ms uint32
	events := s.Events()
	for e, ok := events.Next(); ok; e, ok = events.Next() {
		ms += e.Ms
	}
	return ms
}

type EventKind uint8

const (
	NoteEvent EventKind = iota
	RestEvent
)

// Event is a note or a rest lasting Ms milliseconds. Pitch is zero for rests.
type Event struct {
	Kind  EventKind
	Pitch uint16
	Ms    uint32
}

func (e Event) MsDuration() uint32 {
	return e.Ms
}

func (e Event) String() string {
	if e.Kind == RestEvent {
		return fmt.Sprintf("rest %dms", e.Ms)
	}
	return fmt.Sprintf("note %dHz %dms", e.Pitch, e.Ms)
}

// Events yields the events of a score in order. It cannot be rewound; ask
// the Score for a new one to replay.
type Events struct {
	wholeMs uint32
	notes   []Note
	rest    uint32
}

// Next returns the next event, or false once the score is exhausted.
func (it *Events) Next() (Event, bool) {
	if it.rest > 0 {
		e := Event{Kind: RestEvent, Ms: it.rest}
		it.rest = 0
		return e, true
	}
	if len(it.notes) == 0 {
		return Event{}, false
	}
	n := it.notes[0]
	it.notes = it.notes[1:]
	ms := it.wholeMs * uint32(n.Num) / uint32(n.Den)
	noteMs := ms * uint32(n.Gate) / 100
	it.rest = ms - noteMs
	return Event{Kind: NoteEvent, Pitch: n.Pitch, Ms: noteMs}, true
}

// MsEvents converts the remaining events to a per-millisecond view.
func (it *Events) MsEvents() *MsEvents {
	return &MsEvents{events: it}
}

type MsEventKind uint8

const (
	BeginNote MsEventKind = iota
	EndNote
	Wait
)

// MsEvent is what happens at one point of the per-millisecond view. A
// BeginNote or EndNote is followed by one Wait per millisecond of its event.
type MsEvent struct {
	Kind  MsEventKind
	Pitch uint16
}

type MsEvents struct {
	events *Events
	wait   uint32
}

func (it *MsEvents) Next() (MsEvent, bool) {
	if it.wait > 0 {
		it.wait--
		return MsEvent{Kind: Wait}, true
	}
	e, ok := it.events.Next()
	if !ok {
		return MsEvent{}, false
	}
	it.wait = e.Ms
	if e.Kind == RestEvent {
		return MsEvent{Kind: EndNote}, true
	}
	return MsEvent{Kind: BeginNote, Pitch: e.Pitch}, true
}
