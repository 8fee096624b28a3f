package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"git.disy.net/goetz/chiposoft/synth"
	"git.disy.net/goetz/chiposoft/wav"
)

const (
	demoChannels = 4
	demoBase     = 440
	demoVol      = synth.MaxVol / 2
)

// overtones stacks the odd harmonics of demoBase, one channel every two
// seconds, each at 1/n of the fundamental's volume, like a square wave
// built up by hand.
var overtones = []synth.TimedAction{
	{Ms: 0, Chan: 0, Action: synth.SetVolume(demoVol)},
	{Ms: 0, Chan: 1, Action: synth.SetVolume(demoVol / 3)},
	{Ms: 0, Chan: 2, Action: synth.SetVolume(demoVol / 5)},
	{Ms: 0, Chan: 3, Action: synth.SetVolume(demoVol / 7)},
	{Ms: 0, Chan: 0, Action: synth.StartNote(demoBase)},
	{Ms: 2000, Chan: 1, Action: synth.StartNote(demoBase * 3)},
	{Ms: 4000, Chan: 2, Action: synth.StartNote(demoBase * 5)},
	{Ms: 6000, Chan: 3, Action: synth.StartNote(demoBase * 7)},
	{Ms: 10000, Chan: 0, Action: synth.StopNote()},
	{Ms: 10000, Chan: 1, Action: synth.StopNote()},
	{Ms: 10000, Chan: 2, Action: synth.StopNote()},
	{Ms: 10000, Chan: 3, Action: synth.StopNote()},
}

// overtoneDemo returns a fresh sequencer over bare oscillators of waveform w.
func overtoneDemo(w synth.Waveform) (synth.Samples, error) {
	sounds := make([]synth.Sound, demoChannels)
	for i := range sounds {
		sounds[i] = &synth.Oscillator{Waveform: w}
	}
	return synth.Sequence(overtones, sounds)
}

func demo(c *Config, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	out := fs.String("out", "", "WAV file to write instead of playing")
	fs.Parse(args)
	w := c.waveform()
	s, err := overtoneDemo(w)
	if err != nil {
		return err
	}
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("can't create output: %w", err)
		}
		n, err := wav.Write(f, s)
		if err != nil {
			f.Close()
			return err
		}
		log.Printf("wrote %d samples to %s", n, *out)
		return f.Close()
	}
	// the table is checked above, later builds cannot fail
	e := newSongEngine(func() synth.Samples {
		s, _ := overtoneDemo(w)
		return s
	}, false)
	player, err := openSink(c.Backend, e)
	if err != nil {
		return err
	}
	// ignore Close error
	defer player.Close()
	signals := notifySignals()
	select {
	case <-e.done:
	case <-signals:
		log.Println("exiting")
	}
	return nil
}
