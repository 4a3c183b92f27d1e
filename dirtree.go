// Package dirtree interprets CREATE, DELETE, MOVE and LIST commands against
// an in-memory directory tree.
package dirtree

import (
	"io"

	"github.com/brettbedarf/dirtree/config"
	"github.com/brettbedarf/dirtree/engine"
)

// New creates a Runner over a new, empty tree that writes to out.
func New(cfg *config.Config, out io.Writer) *Runner {
	return NewRunner(cfg, engine.New(cfg), out)
}
