package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"git.disy.net/goetz/chiposoft/score"
	"git.disy.net/goetz/chiposoft/spectrum"
	"git.disy.net/goetz/chiposoft/synth"
	"git.disy.net/goetz/chiposoft/wav"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage of %s: [-config file] command [flags]

Commands:
  render -out file.wav [-song name]   render the configured voices, or one song
  play [-song name] [-loop]           play through the configured backend
  keys                                play notes from six buttons
  timeline -song name                 print the note timeline of a song
  analyze [-song name]                measure the pitch of every rendered note
  songs                               list built-in songs
  demo [-out file.wav]                play or render the four channel overtone demo

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configFile := flag.String("config", "", "Path to config, created with defaults if not found. Built-in defaults when empty.")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("can't read config: %v because: %v", *configFile, err)
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "render":
		err = render(config, args)
	case "play":
		err = play(*configFile, config, args)
	case "keys":
		err = keys(*configFile, config)
	case "timeline":
		err = timeline(args)
	case "analyze":
		err = analyze(config, args)
	case "songs":
		err = listSongs()
	case "demo":
		err = demo(config, args)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func render(c *Config, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	out := fs.String("out", "", "WAV file to write")
	song := fs.String("song", "", "song to render instead of the configured voices")
	fs.Parse(args)
	if *out == "" {
		return fmt.Errorf("-out is required")
	}
	build, err := c.arrangement(*song)
	if err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("can't create output: %w", err)
	}
	n, err := wav.Write(f, build())
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %d samples (%dms) to %s", n, n/(synth.Rate/1000), *out)
	return nil
}

func lookupSong(name string) (score.Score, error) {
	if name == "" {
		return score.Score{}, fmt.Errorf("-song is required")
	}
	sc, ok := score.Lookup(name)
	if !ok {
		return score.Score{}, fmt.Errorf("unknown song: %s", name)
	}
	return sc, sc.Validate()
}

func timeline(args []string) error {
	fs := flag.NewFlagSet("timeline", flag.ExitOnError)
	song := fs.String("song", "", "song to print")
	fs.Parse(args)
	sc, err := lookupSong(*song)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, ' ', 0)
	ms := 0
	events := sc.MsEvents()
	for e, ok := events.Next(); ok; e, ok = events.Next() {
		switch e.Kind {
		case score.BeginNote:
			fmt.Fprintf(w, "%d\ton\t%d\n", ms, e.Pitch)
		case score.EndNote:
			fmt.Fprintf(w, "%d\toff\t\n", ms)
		case score.Wait:
			ms++
		}
	}
	fmt.Fprintf(w, "%d\tend\t\n", ms)
	return w.Flush()
}

// analyze renders a song with the configured envelope and compares the
// dominant frequency of every note long enough to measure with its pitch.
func analyze(c *Config, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	song := fs.String("song", "frere-jacques", "song to analyze")
	fs.Parse(args)
	sc, err := lookupSong(*song)
	if err != nil {
		return err
	}
	samples := synth.Collect(synth.NewPlayer(c.Envelope.newSound(c.waveform()), sc))
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ms\tpitch\tmeasured\t")
	var ms uint32
	events := sc.Events()
	for e, ok := events.Next(); ok; e, ok = events.Next() {
		start, end := uint64(ms)*synth.Rate/1000, uint64(ms+e.Ms)*synth.Rate/1000
		ms += e.Ms
		if e.Kind != score.NoteEvent || e.Ms < 50 {
			continue
		}
		peak, err := spectrum.Peak(samples[start:end], synth.Rate)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%.1f\t\n", ms-e.Ms, e.Pitch, peak)
	}
	return w.Flush()
}

func listSongs() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, s := range score.Songs() {
		d := s.MsDuration()
		fmt.Fprintf(w, "%s\t%d notes\t%d:%02d\n", s.Name, len(s.Notes), d/60000, d/1000%60)
	}
	return w.Flush()
}
