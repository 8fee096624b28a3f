package synth

import "math"

// Samples is a finite sample sequence of known length.
type Samples interface {
	// Next returns the next sample, or false once exhausted. Mixer treats an
	// exhausted sequence as silence whatever sample it returns.
	Next() (int16, bool)
	// Len returns the exact number of samples left.
	Len() int
}

// SaturatingAdd adds two samples, clamping to the int16 range.
func SaturatingAdd(a, b int16) int16 {
	return saturate(int32(a) + int32(b))
}

func saturate(s int32) int16 {
	switch {
	case s > math.MaxInt16:
		return math.MaxInt16
	case s < math.MinInt16:
		return math.MinInt16
	}
	return int16(s)
}

// Mixer sums two sequences. Once one side runs out the other passes through
// unchanged.
type Mixer struct {
	a, b Samples
}

// Mix takes ownership of a and b.
func Mix(a, b Samples) *Mixer {
	return &Mixer{a: a, b: b}
}

func (m *Mixer) Next() (int16, bool) {
	x, okA := m.a.Next()
	y, okB := m.b.Next()
	if !okA && !okB {
		return 0, false
	}
	if !okA {
		x = 0
	}
	if !okB {
		y = 0
	}
	return SaturatingAdd(x, y), true
}

func (m *Mixer) Len() int {
	a, b := m.a.Len(), m.b.Len()
	if a > b {
		return a
	}
	return b
}

// MixAll folds the given sequences into one with Mix. It returns an empty
// sequence when called without arguments.
func MixAll(ss ...Samples) Samples {
	if len(ss) == 0 {
		return FromSlice(nil)
	}
	m := ss[0]
	for _, s := range ss[1:] {
		m = Mix(m, s)
	}
	return m
}

type delayed struct {
	n int
	s Samples
}

// Delay prepends n silent samples to s.
func Delay(n int, s Samples) Samples {
	if n <= 0 {
		return s
	}
	return &delayed{n: n, s: s}
}

func (d *delayed) Next() (int16, bool) {
	if d.n > 0 {
		d.n--
		return 0, true
	}
	return d.s.Next()
}

func (d *delayed) Len() int {
	return d.n + d.s.Len()
}

type sliceSamples []int16

// FromSlice returns a sequence yielding the samples of s.
func FromSlice(s []int16) Samples {
	ss := sliceSamples(s)
	return &ss
}

func (s *sliceSamples) Next() (int16, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, true
}

func (s *sliceSamples) Len() int {
	return len(*s)
}

// Collect drains s into a slice.
func Collect(s Samples) []int16 {
	out := make([]int16, 0, s.Len())
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}
