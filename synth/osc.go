package synth

import "fmt"

// Waveform selects the shape an Oscillator produces.
type Waveform uint8

const (
	Square Waveform = iota
	Triangle
	Sawtooth
)

func (w Waveform) String() string {
	switch w {
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	}
	return fmt.Sprintf("Waveform(%d)", uint8(w))
}

// ParseWaveform maps a name as printed by Waveform.String back to a Waveform.
func ParseWaveform(s string) (Waveform, error) {
	switch s {
	case "", "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	}
	return Square, fmt.Errorf("unknown waveform: %s", s)
}

// Oscillator is a naive periodic generator. Its period is Rate/freq samples
// rounded to the nearest integer, so a note repeats exactly.
//
// The zero value is a silent square wave oscillator.
type Oscillator struct {
	Waveform Waveform

	freq    uint16
	vol     int16
	period  uint32
	t       uint32
	stopped bool
}

// Period returns the current period in samples, 0 while silent.
func (o *Oscillator) Period() uint32 {
	return o.period
}

func (o *Oscillator) SetFreq(freq uint16) {
	o.freq = freq
	o.stopped = false
	if freq == 0 {
		o.period = 0
		return
	}
	f := uint32(freq)
	o.period = (Rate + f/2) / f
	o.t %= o.period
}

func (o *Oscillator) SetVol(vol int16) {
	o.vol = clampVol(vol)
}

func (o *Oscillator) Vol() int16 {
	return o.vol
}

func (o *Oscillator) Stop() {
	o.stopped = true
}

func (o *Oscillator) Get() int16 {
	if o.stopped || o.period == 0 {
		return 0
	}
	return int16(int32(o.shape()) * int32(o.vol) / int32(MaxVol))
}

func (o *Oscillator) Advance() {
	if o.stopped || o.period == 0 {
		return
	}
	o.t++
	if o.t >= o.period {
		o.t = 0
	}
}

// shape returns the full scale waveform value at the current position,
// in [-MaxVol, MaxVol].
func (o *Oscillator) shape() int16 {
	const full = int64(MaxVol)
	t, p := int64(o.t), int64(o.period)
	switch o.Waveform {
	case Triangle:
		x := 4 * full * t / p
		if x < 2*full {
			return int16(x - full)
		}
		return int16(3*full - x)
	case Sawtooth:
		return int16(2*full*t/p - full)
	default:
		if 2*t < p {
			return MaxVol
		}
		return -MaxVol
	}
}
