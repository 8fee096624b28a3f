// Package spectrum finds the dominant frequency of rendered sample streams.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/ktye/fft"
)

// MaxSize caps the transform length.
const MaxSize = 1 << 16

var ErrTooShort = errors.New("need at least 2 samples")

// Peak returns the frequency in Hz of the strongest bin of the spectrum of
// samples. Only the longest power of two prefix (at most MaxSize) is used, so
// the resolution is rate/n.
func Peak(samples []int16, rate int) (float64, error) {
	n := 1
	for n*2 <= len(samples) && n*2 <= MaxSize {
		n *= 2
	}
	if n < 2 {
		return 0, ErrTooShort
	}
	f, err := fft.New(n)
	if err != nil {
		return 0, fmt.Errorf("fft of size %d: %w", n, err)
	}
	x := make([]complex128, n)
	for i := range x {
		w := (1 - math.Cos(2*math.Pi*float64(i)/float64(n))) / 2
		x[i] = complex(w*float64(samples[i]), 0)
	}
	x = f.Transform(x)
	best, bestMag := 0, 0.0
	for i := 1; i <= n/2; i++ {
		re, im := real(x[i]), imag(x[i])
		if m := re*re + im*im; m > bestMag {
			best, bestMag = i, m
		}
	}
	return float64(best) * float64(rate) / float64(n), nil
}
