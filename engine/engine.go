package engine

import (
	"fmt"
	"iter"

	"github.com/brettbedarf/dirtree/config"
	"github.com/brettbedarf/dirtree/filesystem"
)

// Result is the outcome of a successful command
type Result struct {
	Verb Verb
	// Listing is set for LIST only. It is lazy and reads the tree while it
	// is being consumed, so consume it before executing the next command.
	Listing iter.Seq[filesystem.Entry]
}

// Engine parses command lines and applies them to the tree it owns.
//
// NOTE: Engine is not safe for concurrent use; callers execute one line
// at a time.
type Engine struct {
	fs *filesystem.FileSystem
}

// New creates an Engine over a new, empty tree
func New(cfg *config.Config) *Engine {
	return &Engine{fs: filesystem.NewFS(cfg)}
}

// NewWithFS creates an Engine over an existing tree
func NewWithFS(fs *filesystem.FileSystem) *Engine {
	return &Engine{fs: fs}
}

// FS returns the tree the engine mutates
func (e *Engine) FS() *filesystem.FileSystem {
	return e.fs
}

// Execute runs a single command line. Every failure is returned as a typed
// error and leaves the tree unchanged.
func (e *Engine) Execute(line string) (Result, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return Result{}, err
	}
	return e.Apply(cmd)
}

// Apply runs an already parsed command
func (e *Engine) Apply(cmd *Command) (Result, error) {
	res := Result{Verb: cmd.Verb}
	var err error

	switch cmd.Verb {
	case VerbCreate:
		err = e.fs.Create(cmd.Paths[0])
	case VerbDelete:
		err = e.fs.Delete(cmd.Paths[0])
	case VerbMove:
		err = e.fs.Move(cmd.Paths[0], cmd.Paths[1])
	case VerbList:
		res.Listing = e.fs.List()
	default:
		return Result{}, &UnknownCommandError{Command: cmd.Raw}
	}

	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// MustExecute runs each line in order and panics on the first error.
// Intended for tests and fixtures.
func (e *Engine) MustExecute(lines ...string) {
	for _, line := range lines {
		if _, err := e.Execute(line); err != nil {
			panic(fmt.Sprintf("execute %q: %v", line, err))
		}
	}
}
