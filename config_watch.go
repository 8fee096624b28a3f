package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch rereads the config at path whenever it is written or replaced and
// sends it on configs. Read and validation errors go to errors, the previous
// config stays in effect. Watching stops when done is closed.
//
// The directory is watched rather than the file, so saves that write a new
// file and rename it over path are seen as well.
func Watch(path string, configs chan<- *Config, errors chan<- error, done <-chan struct{}) error {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("can't create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		// ignore close error
		watcher.Close()
		return fmt.Errorf("can't watch %s: %w", path, err)
	}
	go func() {
		// ignore close error
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				// a rename or remove of path is followed by a create once replaced
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				// never recreate the default here, the file may be mid replace
				c, err := readConfigFile(path)
				if err != nil {
					select {
					case errors <- err:
					case <-done:
						return
					}
					continue
				}
				log.Printf("reloaded %s", path)
				select {
				case configs <- c:
				case <-done:
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errors <- err:
				case <-done:
					return
				}
			case <-done:
				return
			}
		}
	}()
	return nil
}

// watch starts Watch for the live commands. The channels are nil, and so
// never ready, when there is nothing to watch.
func watch(path string, c *Config) (<-chan *Config, <-chan error, func()) {
	if path == "" || !c.WatchConfig {
		return nil, nil, func() {}
	}
	configs := make(chan *Config)
	errs := make(chan error)
	done := make(chan struct{})
	if err := Watch(path, configs, errs, done); err != nil {
		log.Printf("not watching config: %v", err)
		close(done)
		return nil, nil, func() {}
	}
	return configs, errs, func() { close(done) }
}
