package synth

import "git.disy.net/goetz/chiposoft/score"

const samplesPerMs = Rate / 1000

// Player drives a Sound through the events of a score, one sample per call
// to Next. Events are applied on millisecond boundaries.
type Player struct {
	sound  Sound
	events *score.Events

	event   score.Event
	pending bool
	waitMs  uint32

	t         uint64
	remaining uint64
}

// NewPlayer returns a Player that takes ownership of s. The number of
// samples it yields is fixed by the score duration.
func NewPlayer(s Sound, sc score.Score) *Player {
	p := &Player{
		sound:     s,
		events:    sc.Events(),
		remaining: uint64(sc.MsDuration()) * Rate / 1000,
	}
	p.event, p.pending = p.events.Next()
	return p
}

// Sound returns the Sound driven by p.
func (p *Player) Sound() Sound {
	return p.sound
}

// Len returns the exact number of samples left.
func (p *Player) Len() int {
	return int(p.remaining)
}

func (p *Player) Next() (int16, bool) {
	if p.remaining == 0 {
		return 0, false
	}
	if p.t%samplesPerMs == 0 {
		for p.pending && p.waitMs == 0 {
			Modify(p.sound, actionFor(p.event))
			p.waitMs = p.event.Ms
			p.event, p.pending = p.events.Next()
		}
		if p.waitMs > 0 {
			p.waitMs--
		}
	}
	p.t++
	p.remaining--
	return Step(p.sound), true
}

func actionFor(e score.Event) Action {
	if e.Kind == score.RestEvent {
		return StopNote()
	}
	return StartNote(e.Pitch)
}

// Replay returns a factory of independent players of sc, each driving a
// fresh Sound from newSound.
func Replay(sc score.Score, newSound func() Sound) func() *Player {
	return func() *Player {
		return NewPlayer(newSound(), sc)
	}
}
