//go:build !headless

package main

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"git.disy.net/goetz/chiposoft/synth"
)

type portAudioSink struct {
	stream *portaudio.Stream
}

func openPortAudio(f filler) (sink, error) {
	err := portaudio.Initialize()
	if err != nil {
		return nil, fmt.Errorf("can't init portaudio: %w", err)
	}
	// mono out
	stream, err := portaudio.OpenDefaultStream(0, 1, synth.Rate, portaudio.FramesPerBufferUnspecified, f.fill)
	if err != nil {
		// ignore Terminate error
		portaudio.Terminate()
		return nil, fmt.Errorf("can't open default stream: %w", err)
	}
	err = stream.Start()
	if err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("can't start stream: %w", err)
	}
	return &portAudioSink{stream: stream}, nil
}

func (s *portAudioSink) Close() error {
	defer portaudio.Terminate()
	if err := s.stream.Stop(); err != nil {
		return fmt.Errorf("can't stop stream: %w", err)
	}
	return s.stream.Close()
}
