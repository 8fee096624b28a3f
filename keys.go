package main

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"git.disy.net/goetz/chiposoft/synth"
)

const numButtons = 6

// semitoneDown[n] is 10000 times the frequency ratio of n semitones down.
var semitoneDown = [...]uint64{10000, 9439, 8909, 8409, 7937, 7492, 7071}

// buttonFreq maps button states to a frequency. Buttons 0 to 2 pick an
// overtone of base (weights 1, 2 and 4), buttons 3 to 5 lower it by 2, 1 and
// 3 semitones. No overtone button means silence.
func buttonFreq(base uint16, buttons uint8) uint16 {
	bit := func(i uint) uint64 { return uint64(buttons >> i & 1) }
	overtone := bit(0) + bit(1)*2 + bit(2)*4
	down := bit(3)*2 + bit(4) + bit(5)*3
	f := uint64(base) * overtone * semitoneDown[down] / 10000
	if f > 0xffff {
		return 0xffff
	}
	return uint16(f)
}

// debouncer reports a new value only once it has been seen for more than
// limit consecutive ticks.
type debouncer struct {
	cur, next uint16
	n, limit  uint32
}

func (d *debouncer) change(v uint16) bool {
	switch {
	case v == d.cur:
		d.n = 0
		return false
	case v != d.next:
		d.next = v
		d.n = 0
		return false
	case d.n > d.limit:
		d.cur = v
		d.n = 0
		return true
	default:
		d.n++
		return false
	}
}

// keyEngine plays one envelope voice from button states. It belongs to the
// audio callback; button changes and new settings arrive over channels.
type keyEngine struct {
	sound   *synth.Adsr
	base    uint16
	buttons uint8
	deb     debouncer

	input  <-chan uint8
	reload <-chan KeysConfig
}

func newKeyEngine(c KeysConfig, w synth.Waveform, input <-chan uint8, reload <-chan KeysConfig) *keyEngine {
	k := &keyEngine{
		sound:  c.Envelope.newSound(w),
		input:  input,
		reload: reload,
	}
	k.configure(c)
	return k
}

func (k *keyEngine) configure(c KeysConfig) {
	k.base = c.BaseFreq
	k.deb.limit = synth.Ticks(c.DebounceMs)
	e := c.Envelope
	k.sound.Reconfigure(e.AttackMs, e.DecayMs, e.Sustain, e.ReleaseMs)
}

func (k *keyEngine) fill(out []int16) {
drain:
	for {
		select {
		case b := <-k.input:
			k.buttons = b
		case c := <-k.reload:
			k.configure(c)
		default:
			break drain
		}
	}
	for i := range out {
		if f := buttonFreq(k.base, k.buttons); k.deb.change(f) {
			if f == 0 {
				k.sound.Stop()
			} else {
				k.sound.SetFreq(f)
			}
		}
		out[i] = synth.Step(k.sound)
	}
}

// pressKey updates button states for a key typed in raw terminal mode:
// 1 to 6 toggle a button, space releases all of them, q or ctrl-c quit.
func pressKey(buttons uint8, key byte) (uint8, bool) {
	switch {
	case key >= '1' && key < '1'+numButtons:
		return buttons ^ 1<<(key-'1'), false
	case key == ' ':
		return 0, false
	case key == 'q' || key == 3:
		return buttons, true
	}
	return buttons, false
}

// parseButtons parses a line of six 0 or 1 characters, button 0 first.
func parseButtons(line string) (uint8, error) {
	if len(line) != numButtons {
		return 0, fmt.Errorf("want %d buttons, got %q", numButtons, line)
	}
	var b uint8
	for i := 0; i < numButtons; i++ {
		switch line[i] {
		case '1':
			b |= 1 << uint(i)
		case '0':
		default:
			return 0, fmt.Errorf("bad button state %q", line[i])
		}
	}
	return b, nil
}

func readRawKeys(r io.Reader, input chan<- uint8, quit chan<- struct{}) {
	defer close(quit)
	var buttons uint8
	buf := make([]byte, 1)
	for {
		if _, err := r.Read(buf); err != nil {
			return
		}
		b, done := pressKey(buttons, buf[0])
		if done {
			return
		}
		if b != buttons {
			buttons = b
			input <- buttons
		}
	}
}

func scanButtonLines(r io.Reader, input chan<- uint8, quit chan<- struct{}) {
	defer close(quit)
	s := bufio.NewScanner(r)
	for s.Scan() {
		b, err := parseButtons(s.Text())
		if err != nil {
			log.Printf("ignoring input: %v", err)
			continue
		}
		input <- b
	}
	if err := s.Err(); err != nil {
		log.Printf("reading buttons: %v", err)
	}
}
