// Package stream acquires input streams for the counter.
package stream

import (
	"fmt"
	"io"
	"os"
)

// Opener turns stream identifiers into open readable streams.
type Opener interface {
	Open(identifier string) (io.ReadCloser, error)
}

// FS opens identifiers as filesystem paths: regular files or named pipes.
// Opening a FIFO blocks until a writer connects, matching the usual
// mkfifo workflow.
type FS struct{}

// Open opens the stream at path.
func (FS) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stream %s: %w", path, err)
	}
	return f, nil
}
