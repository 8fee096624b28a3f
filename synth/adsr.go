package synth

import "fmt"

// Phase is the state of an Adsr envelope.
type Phase uint8

const (
	PhaseStop Phase = iota
	PhaseAttack
	PhaseDecay
	PhaseSustain
	PhaseRelease
)

func (p Phase) String() string {
	switch p {
	case PhaseStop:
		return "x"
	case PhaseAttack:
		return "A"
	case PhaseDecay:
		return "D"
	case PhaseSustain:
		return "S"
	case PhaseRelease:
		return "R"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Adsr shapes the volume of the Sound it wraps with an
// attack-decay-sustain-release envelope. Adsr is itself a Sound, so envelopes
// can be nested.
//
// A new note starts its attack from whatever volume the inner sound has at
// that moment, not from zero, so retriggering never clicks.
type Adsr struct {
	sound     Sound
	attackMs  uint32
	decayMs   uint32
	sustain   int16
	releaseMs uint32

	vol        int16
	sustainVol int16

	phase     Phase
	from      int16
	total     uint32
	remaining uint32
}

// NewAdsr wraps sound. sustain is the sustain level as a fraction of the peak
// volume, over MaxVol. The wrapped sound is silenced and stopped.
func NewAdsr(sound Sound, attackMs, decayMs uint32, sustain int16, releaseMs uint32) *Adsr {
	sound.SetVol(0)
	sound.Stop()
	a := &Adsr{
		sound:     sound,
		attackMs:  attackMs,
		decayMs:   decayMs,
		sustain:   clampVol(sustain),
		releaseMs: releaseMs,
	}
	a.SetVol(MaxVol)
	return a
}

// Reconfigure changes the envelope timings and sustain level. A phase in
// progress keeps the length it started with.
func (a *Adsr) Reconfigure(attackMs, decayMs uint32, sustain int16, releaseMs uint32) {
	a.attackMs, a.decayMs, a.releaseMs = attackMs, decayMs, releaseMs
	a.sustain = clampVol(sustain)
	a.SetVol(a.vol)
}

// Phase returns the current envelope phase.
func (a *Adsr) Phase() Phase {
	return a.phase
}

// SustainVol returns the volume held during the sustain phase.
func (a *Adsr) SustainVol() int16 {
	return a.sustainVol
}

func (a *Adsr) SetFreq(freq uint16) {
	a.sound.SetFreq(freq)
	a.enter(PhaseAttack, a.sound.Vol(), Ticks(a.attackMs))
}

func (a *Adsr) Stop() {
	a.enter(PhaseRelease, a.sound.Vol(), Ticks(a.releaseMs))
}

// SetVol sets the peak volume. It takes effect at the next ramp.
func (a *Adsr) SetVol(vol int16) {
	a.vol = clampVol(vol)
	a.sustainVol = int16(int32(a.vol) * int32(a.sustain) / int32(MaxVol))
}

func (a *Adsr) Vol() int16 {
	return a.sound.Vol()
}

func (a *Adsr) Get() int16 {
	return a.sound.Get()
}

func (a *Adsr) Advance() {
	switch a.phase {
	case PhaseAttack:
		a.ramp(a.vol)
		if a.remaining == 0 {
			a.enter(PhaseDecay, a.vol, Ticks(a.decayMs))
		} else {
			a.remaining--
		}
	case PhaseDecay:
		a.ramp(a.sustainVol)
		if a.remaining == 0 {
			a.enter(PhaseSustain, a.sustainVol, 0)
		} else {
			a.remaining--
		}
	case PhaseRelease:
		a.ramp(0)
		if a.remaining == 0 {
			a.sound.SetVol(0)
			a.sound.Stop()
			a.enter(PhaseStop, 0, 0)
		} else {
			a.remaining--
		}
	}
	a.sound.Advance()
}

func (a *Adsr) enter(phase Phase, from int16, ticks uint32) {
	a.phase = phase
	a.from = from
	a.total = ticks
	a.remaining = ticks
}

// ramp sets the inner volume for the current tick of the phase. A zero
// length phase lands on the target at once.
func (a *Adsr) ramp(to int16) {
	if a.total == 0 {
		a.sound.SetVol(to)
		return
	}
	a.sound.SetVol(ComputeRatio(a.from, to, a.total-a.remaining, a.total))
}
