package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

func notifySignals() chan os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	return signals
}

func play(path string, c *Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	song := fs.String("song", "", "song to play instead of the configured voices")
	loop := fs.Bool("loop", false, "start over at the end")
	fs.Parse(args)
	build, err := c.arrangement(*song)
	if err != nil {
		return err
	}
	e := newSongEngine(build, *loop)
	out, err := openSink(c.Backend, e)
	if err != nil {
		return err
	}
	// ignore Close error
	defer out.Close()

	signals := notifySignals()
	configs, errs, stop := watch(path, c)
	defer stop()
	for {
		select {
		case <-e.done:
			return nil
		case nc := <-configs:
			b, err := nc.arrangement(*song)
			if err != nil {
				log.Printf("keeping previous voices: %v", err)
				continue
			}
			e.restart(b)
		case err := <-errs:
			log.Printf("config error: %v", err)
		// block until SIGINT | SIGTERM
		case <-signals:
			log.Println("exiting")
			return nil
		}
	}
}

func keys(path string, c *Config) error {
	input := make(chan uint8, 16)
	reload := make(chan KeysConfig, 1)
	quit := make(chan struct{})
	e := newKeyEngine(c.Keys, c.waveform(), input, reload)
	out, err := openSink(c.Backend, e)
	if err != nil {
		return err
	}
	// ignore Close error
	defer out.Close()

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, old)
		log.Print("keys 1-6 toggle buttons, space releases all, q quits\r")
		go readRawKeys(os.Stdin, input, quit)
	} else {
		go scanButtonLines(os.Stdin, input, quit)
	}

	signals := notifySignals()
	configs, errs, stop := watch(path, c)
	defer stop()
	for {
		select {
		case <-quit:
			return nil
		case nc := <-configs:
			select {
			case <-reload:
			default:
			}
			reload <- nc.Keys
		case err := <-errs:
			log.Printf("config error: %v\r", err)
		case <-signals:
			return nil
		}
	}
}
