package main

import (
	"io"
	"log"
	"os"
)

// setupLogging returns a logger writing to path, or discarding when path is empty.
// The terminal belongs to tcell, so nothing is ever logged to stderr.
func setupLogging(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), f, nil
}
