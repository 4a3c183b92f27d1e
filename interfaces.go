package dirtree

import "github.com/brettbedarf/dirtree/engine"

// LineSource supplies command lines one at a time
type LineSource interface {
	// ReadLine returns the next line without its line terminator.
	// Returns io.EOF once the source is exhausted.
	ReadLine() (string, error)
}

// Executor runs a single command line against a tree
type Executor interface {
	Execute(line string) (engine.Result, error)
}
