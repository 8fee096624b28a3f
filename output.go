package main

import (
	"encoding/binary"
	"fmt"

	"git.disy.net/goetz/chiposoft/synth"
)

// filler renders the next len(out) samples. The audio backend owns the
// filler and calls it from its own thread only.
type filler interface {
	fill(out []int16)
}

type sink interface {
	Close() error
}

func openSink(backend string, f filler) (sink, error) {
	switch backend {
	case "", "portaudio":
		return openPortAudio(f)
	case "oto":
		return openOto(f)
	}
	return nil, fmt.Errorf("unknown backend: %s", backend)
}

// int16Reader serves a filler as little endian bytes.
type int16Reader struct {
	f   filler
	buf []int16
}

func (r *int16Reader) Read(p []byte) (int, error) {
	n := len(p) / 2
	if cap(r.buf) < n {
		r.buf = make([]int16, n)
	}
	samples := r.buf[:n]
	r.f.fill(samples)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(p[2*i:], uint16(s))
	}
	return 2 * n, nil
}

// songEngine plays a mix of voices. When loop is set it rebuilds the mix
// once it runs out, otherwise it closes done and falls silent.
type songEngine struct {
	src   synth.Samples
	build func() synth.Samples
	loop  bool

	replace chan func() synth.Samples
	done    chan struct{}
	closed  bool
}

func newSongEngine(build func() synth.Samples, loop bool) *songEngine {
	return &songEngine{
		src:     build(),
		build:   build,
		loop:    loop,
		replace: make(chan func() synth.Samples, 1),
		done:    make(chan struct{}),
	}
}

// restart switches to a new arrangement at the next buffer. Called from the
// control goroutine, never from the audio callback.
func (e *songEngine) restart(build func() synth.Samples) {
	select {
	case <-e.replace:
	default:
	}
	e.replace <- build
}

func (e *songEngine) fill(out []int16) {
	select {
	case b := <-e.replace:
		e.build = b
		e.src = b()
	default:
	}
	for i := range out {
		v, ok := e.src.Next()
		if !ok && e.loop {
			e.src = e.build()
			v, ok = e.src.Next()
		}
		if !ok {
			e.finish()
		}
		out[i] = v
	}
}

func (e *songEngine) finish() {
	if !e.closed {
		e.closed = true
		close(e.done)
	}
}
