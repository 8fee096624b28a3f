package main

import (
	"os"
	"path/filepath"
	"testing"

	"git.disy.net/goetz/chiposoft/synth"
)

func TestDefaultConfigUnmarshal(t *testing.T) {
	c, err := parseConfig([]byte(defaultConfig))
	if err != nil {
		t.Fatalf("error parsing default config: %v", err)
	}
	if c.Backend != "portaudio" || !c.WatchConfig {
		t.Fatalf("static config: %+v", c.StaticConfig)
	}
	if len(c.Voices) != 2 {
		t.Fatalf("expected two voices, got %d", len(c.Voices))
	}
	if c.Voices[0].Volume != nil || c.Voices[1].Volume == nil || *c.Voices[1].Volume != 21844 {
		t.Fatalf("voice volumes: %+v", c.Voices)
	}
	if c.Envelope.AttackMs != 10 || c.Keys.Envelope.ReleaseMs != 2000 {
		t.Fatalf("envelopes: %+v %+v", c.Envelope, c.Keys.Envelope)
	}
	if c.waveform() != synth.Square {
		t.Fatalf("waveform %v", c.waveform())
	}
}

func TestConfigSchemaRejects(t *testing.T) {
	for name, conf := range map[string]string{
		"backend":  `{"backend": "alsa"}`,
		"waveform": `{"waveform": "noise"}`,
		"sustain":  `{"envelope": {"sustain": 40000}}`,
		"negative": `{"envelope": {"attackMs": -1}}`,
		"volume":   `{"voices": [{"song": "third-kind", "volume": -3}]}`,
		"no song":  `{"voices": [{"delayMs": 10}]}`,
		"freq":     `{"keys": {"baseFreq": 70000}}`,
		"envelope": `{"keys": {"envelope": {"decay": 10}}}`,
		"syntax":   `{"voices": [}`,
	} {
		if _, err := parseConfig([]byte(conf)); err == nil {
			t.Errorf("%s: expected error for %s", name, conf)
		}
	}
}

func TestConfigSchemaAccepts(t *testing.T) {
	c, err := parseConfig([]byte(`{"waveform": "triangle", "voices": [{"song": "so-what", "volume": 0}], "extra": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.waveform() != synth.Triangle || *c.Voices[0].Volume != 0 {
		t.Fatalf("%+v", c)
	}
}

func TestReadConfigWritesDefault(t *testing.T) {
	p := filepath.Join(t.TempDir(), "chiposoft.json")
	c, err := ReadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if string(data) != defaultConfig {
		t.Fatal("written config differs from default")
	}
	if c.Keys.BaseFreq != 262 {
		t.Fatalf("base frequency %d", c.Keys.BaseFreq)
	}
}

func TestLoadConfigBuiltin(t *testing.T) {
	c, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Voices) == 0 {
		t.Fatal("no voices")
	}
}

func TestReadConfigFileDoesNotCreate(t *testing.T) {
	p := filepath.Join(t.TempDir(), "chiposoft.json")
	if _, err := readConfigFile(p); err == nil {
		t.Fatal("expected error for missing config")
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("config created: %v", err)
	}
}
