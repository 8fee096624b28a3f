// Package wav writes synthesizer output as 16-bit mono PCM WAV files.
package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"git.disy.net/goetz/chiposoft/synth"
)

const (
	bitDepth  = 16
	pcmFormat = 1
	chunk     = 4096
)

// Write drains s into w as a WAV file at synth.Rate and returns the number of
// samples written. The header sizes are patched once s is exhausted, so w
// must be seekable.
func Write(w io.WriteSeeker, s synth.Samples) (int, error) {
	enc := gowav.NewEncoder(w, synth.Rate, bitDepth, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: synth.Rate},
		Data:           make([]int, 0, chunk),
		SourceBitDepth: bitDepth,
	}
	n := 0
	for {
		buf.Data = buf.Data[:0]
		for len(buf.Data) < chunk {
			v, ok := s.Next()
			if !ok {
				break
			}
			buf.Data = append(buf.Data, int(v))
		}
		// the first write also emits the data chunk header, even when empty
		if len(buf.Data) > 0 || n == 0 {
			if err := enc.Write(buf); err != nil {
				return n, fmt.Errorf("writing samples: %w", err)
			}
		}
		n += len(buf.Data)
		if len(buf.Data) < chunk {
			break
		}
	}
	if err := enc.Close(); err != nil {
		return n, fmt.Errorf("closing wav: %w", err)
	}
	return n, nil
}
