package main

import (
	"math"
	"testing"

	"git.disy.net/goetz/chiposoft/spectrum"
	"git.disy.net/goetz/chiposoft/synth"
)

func TestOvertoneDemo(t *testing.T) {
	s, err := overtoneDemo(synth.Square)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 10*synth.Rate {
		t.Fatalf("Len %d", s.Len())
	}
	out := synth.Collect(s)
	if len(out) != 10*synth.Rate {
		t.Fatalf("got %d samples", len(out))
	}
	// first two seconds hold the fundamental alone
	peak, err := spectrum.Peak(out[:synth.Rate], synth.Rate)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(peak-demoBase) > 2 {
		t.Fatalf("fundamental measured at %.1fHz", peak)
	}
	var loudest int16
	for _, v := range out[:2*synth.Rate] {
		if v > loudest {
			loudest = v
		}
	}
	if loudest != demoVol {
		t.Fatalf("fundamental peaks at %d, want %d", loudest, demoVol)
	}
	for _, v := range out[6*synth.Rate:] {
		if v > demoVol+demoVol/3+demoVol/5+demoVol/7 {
			t.Fatalf("sample %d above the summed channel volumes", v)
		}
	}
}
