package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"git.disy.net/goetz/chiposoft/synth"
)

const defaultConfig = `
{
	"backend": "portaudio",
	"watchConfig": true,
	"envelope": {
		"attackMs": 10,
		"decayMs": 20,
		"sustain": 21844,
		"releaseMs": 5
	},
	"waveform": "square",
	"voices": [
		{ "song": "frere-jacques" },
		{ "song": "frere-jacques", "delayMs": 3428, "volume": 21844 }
	],
	"keys": {
		"baseFreq": 262,
		"debounceMs": 50,
		"envelope": {
			"attackMs": 100,
			"decayMs": 1000,
			"sustain": 21844,
			"releaseMs": 2000
		}
	}
}
`

type EnvelopeConfig struct {
	AttackMs  uint32 `json:"attackMs"`
	DecayMs   uint32 `json:"decayMs"`
	Sustain   int16  `json:"sustain"`
	ReleaseMs uint32 `json:"releaseMs"`
}

type StaticConfig struct {
	Backend     string `json:"backend"`
	WatchConfig bool   `json:"watchConfig"`
}

type VoiceConfig struct {
	Song    string `json:"song"`
	DelayMs uint32 `json:"delayMs"`
	// Volume is the peak volume, MaxVol when absent.
	Volume *int16 `json:"volume,omitempty"`
}

type KeysConfig struct {
	BaseFreq   uint16         `json:"baseFreq"`
	DebounceMs uint32         `json:"debounceMs"`
	Envelope   EnvelopeConfig `json:"envelope"`
}

type DynamicConfig struct {
	Envelope EnvelopeConfig `json:"envelope"`
	Waveform string         `json:"waveform"`
	Voices   []VoiceConfig  `json:"voices"`
	Keys     KeysConfig     `json:"keys"`
}

type Config struct {
	StaticConfig
	DynamicConfig
}

// ReadConfig reads the config at p, writing the default config there first
// if the file does not exist.
func ReadConfig(p string) (*Config, error) {
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		err = os.WriteFile(p, []byte(defaultConfig), 0644)
		if err != nil {
			return nil, fmt.Errorf("can't write defaultConfig: %w", err)
		}
	}
	return readConfigFile(p)
}

// readConfigFile reads and parses p without creating it.
func readConfigFile(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("can't read config: %w", err)
	}
	return parseConfig(data)
}

// loadConfig reads p, or the built-in defaults when p is empty.
func loadConfig(p string) (*Config, error) {
	if p == "" {
		return parseConfig([]byte(defaultConfig))
	}
	return ReadConfig(p)
}

func parseConfig(data []byte) (*Config, error) {
	if err := validateConfig(data); err != nil {
		return nil, err
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshalling: %w", err)
	}
	return &c, nil
}

func (c DynamicConfig) waveform() synth.Waveform {
	// the schema only admits known names
	w, _ := synth.ParseWaveform(c.Waveform)
	return w
}
