// Package synth is a fixed-point mono synthesizer: oscillators, envelopes and
// players producing signed 16-bit samples at a fixed rate.
//
// Nothing in this package allocates or blocks on the per-sample path. A Sound
// chain has exactly one owner at a time; none of the types here are safe for
// concurrent use.
package synth

import "math"

// Rate is the output sample rate in Hz.
const Rate = 48000

// MaxVol is the loudest volume a Sound accepts.
const MaxVol int16 = math.MaxInt16

// Sound is implemented by every synthesis unit.
type Sound interface {
	// SetFreq starts (or retargets) a note. 0 is a valid silent frequency.
	SetFreq(freq uint16)
	// SetVol sets the volume, clamped to [0, MaxVol].
	SetVol(vol int16)
	Vol() int16
	// Get returns the current sample without advancing.
	Get() int16
	// Advance moves forward one sample period.
	Advance()
	Stop()
}

// Step returns the current sample of s and advances it.
func Step(s Sound) int16 {
	v := s.Get()
	s.Advance()
	return v
}

type ActionKind uint8

const (
	ActionVol ActionKind = iota
	ActionStart
	ActionStop
)

// Action is a control change applied to a Sound by Modify.
type Action struct {
	Kind ActionKind
	Vol  int16
	Freq uint16
}

func SetVolume(vol int16) Action   { return Action{Kind: ActionVol, Vol: vol} }
func StartNote(freq uint16) Action { return Action{Kind: ActionStart, Freq: freq} }
func StopNote() Action             { return Action{Kind: ActionStop} }

// Modify applies a to s.
func Modify(s Sound, a Action) {
	switch a.Kind {
	case ActionVol:
		s.SetVol(a.Vol)
	case ActionStart:
		s.SetFreq(a.Freq)
	case ActionStop:
		s.Stop()
	}
}

// Ticks converts milliseconds to sample periods.
func Ticks(ms uint32) uint32 {
	return uint32(uint64(ms) * Rate / 1000)
}

func clampVol(v int16) int16 {
	if v < 0 {
		return 0
	}
	return v
}
