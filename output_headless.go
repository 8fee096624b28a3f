//go:build headless

package main

import "errors"

var errHeadless = errors.New("built without audio output (headless)")

func openPortAudio(f filler) (sink, error) { return nil, errHeadless }

func openOto(f filler) (sink, error) { return nil, errHeadless }
