package main

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

const envelopeSchema = `close({
	attackMs?:  int & >=0 & <=60000
	decayMs?:   int & >=0 & <=60000
	sustain?:   int & >=0 & <=32767
	releaseMs?: int & >=0 & <=60000
})`

// configSchema constrains what json.Unmarshal would silently accept or
// wrap around: out of range volumes, frequencies and durations, unknown
// backends and waveforms.
const configSchema = `
backend?:     "portaudio" | "oto"
watchConfig?: bool
envelope?:    ` + envelopeSchema + `
waveform?:    "square" | "triangle" | "sawtooth" | "saw"
voices?: [...{
	song:     string
	delayMs?: int & >=0 & <=600000
	volume?:  int & >=0 & <=32767
}]
keys?: {
	baseFreq?:   int & >=0 & <=65535
	debounceMs?: int & >=0 & <=10000
	envelope?:   ` + envelopeSchema + `
}
`

func validateConfig(data []byte) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(configSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if err := schema.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
