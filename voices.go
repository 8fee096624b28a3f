package main

import (
	"fmt"

	"git.disy.net/goetz/chiposoft/score"
	"git.disy.net/goetz/chiposoft/synth"
)

// newSound builds an envelope wrapped oscillator.
func (c EnvelopeConfig) newSound(w synth.Waveform) *synth.Adsr {
	return synth.NewAdsr(&synth.Oscillator{Waveform: w}, c.AttackMs, c.DecayMs, c.Sustain, c.ReleaseMs)
}

type voice struct {
	replay func() *synth.Player
	delay  int
}

func (c DynamicConfig) makeVoice(v VoiceConfig) (voice, error) {
	sc, ok := score.Lookup(v.Song)
	if !ok {
		return voice{}, fmt.Errorf("unknown song: %s", v.Song)
	}
	if err := sc.Validate(); err != nil {
		return voice{}, err
	}
	w := c.waveform()
	return voice{
		replay: synth.Replay(sc, func() synth.Sound {
			s := c.Envelope.newSound(w)
			if v.Volume != nil {
				s.SetVol(*v.Volume)
			}
			return s
		}),
		delay: int(synth.Ticks(v.DelayMs)),
	}, nil
}

// arrangement returns a function building a fresh mix of the configured
// voices. When song is set it replaces the configured voices with a single
// voice playing that song.
func (c DynamicConfig) arrangement(song string) (func() synth.Samples, error) {
	configured := c.Voices
	if song != "" {
		configured = []VoiceConfig{{Song: song}}
	}
	if len(configured) == 0 {
		return nil, fmt.Errorf("no voices configured")
	}
	voices := make([]voice, 0, len(configured))
	for i, vc := range configured {
		v, err := c.makeVoice(vc)
		if err != nil {
			return nil, fmt.Errorf("voice %d: %w", i, err)
		}
		voices = append(voices, v)
	}
	return func() synth.Samples {
		streams := make([]synth.Samples, len(voices))
		for i, v := range voices {
			streams[i] = synth.Delay(v.delay, v.replay())
		}
		return synth.MixAll(streams...)
	}, nil
}
