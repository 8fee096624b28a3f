//go:build !headless

package main

import (
	"fmt"

	"github.com/ebitengine/oto/v3"

	"git.disy.net/goetz/chiposoft/synth"
)

type otoSink struct {
	player *oto.Player
}

func openOto(f filler) (sink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   synth.Rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create oto context: %w", err)
	}
	<-ready
	player := ctx.NewPlayer(&int16Reader{f: f})
	player.Play()
	return &otoSink{player: player}, nil
}

func (s *otoSink) Close() error {
	return s.player.Close()
}
