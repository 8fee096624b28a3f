package synth

import "fmt"

// TimedAction applies Action to channel Chan at millisecond Ms.
type TimedAction struct {
	Ms     uint32
	Chan   int
	Action Action
}

// Sequencer drives several sounds from a table of timed actions and sums
// their output. It ends at the last timestamp of the table; actions at that
// timestamp only mark the end and are never applied.
type Sequencer struct {
	sounds  []Sound
	actions []TimedAction

	t         uint64
	remaining uint64
}

// Sequence checks actions and returns a Sequencer owning sounds, one per
// channel. Actions must be ordered by Ms; equal timestamps apply in table
// order.
func Sequence(actions []TimedAction, sounds []Sound) (*Sequencer, error) {
	var last uint32
	for i, a := range actions {
		if a.Ms < last {
			return nil, fmt.Errorf("action %d at %dms: before previous action at %dms", i, a.Ms, last)
		}
		if a.Chan < 0 || a.Chan >= len(sounds) {
			return nil, fmt.Errorf("action %d: channel %d out of range, %d sounds", i, a.Chan, len(sounds))
		}
		last = a.Ms
	}
	return &Sequencer{
		sounds:    sounds,
		actions:   actions,
		remaining: uint64(last) * Rate / 1000,
	}, nil
}

// Len returns the exact number of samples left.
func (s *Sequencer) Len() int {
	return int(s.remaining)
}

func (s *Sequencer) Next() (int16, bool) {
	if s.remaining == 0 {
		return 0, false
	}
	if s.t%samplesPerMs == 0 {
		ms := s.t / samplesPerMs
		for len(s.actions) > 0 && uint64(s.actions[0].Ms) <= ms {
			a := s.actions[0]
			Modify(s.sounds[a.Chan], a.Action)
			s.actions = s.actions[1:]
		}
	}
	s.t++
	s.remaining--
	var sum int32
	for _, snd := range s.sounds {
		sum += int32(Step(snd))
	}
	return saturate(sum), true
}
