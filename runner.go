package dirtree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/brettbedarf/dirtree/config"
	"github.com/brettbedarf/dirtree/engine"
	"github.com/brettbedarf/dirtree/internal/util"
)

// Stats summarises one [Runner.Run]
type Stats struct {
	Lines    int // Lines read from the source
	Skipped  int // Blank and comment lines
	Executed int // Commands that succeeded
	Failed   int // Commands that returned an error
}

// Runner feeds lines from a [LineSource] to an [Executor] and writes
// listings and error messages to an output writer.
type Runner struct {
	cfg    *config.Config
	exec   Executor
	out    io.Writer
	runID  string
	logger util.Logger
}

// NewRunner creates a Runner. A nil cfg uses [config.NewDefaultConfig].
func NewRunner(cfg *config.Config, exec Executor, out io.Writer) *Runner {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	runID := uuid.NewString()
	return &Runner{
		cfg:    cfg,
		exec:   exec,
		out:    out,
		runID:  runID,
		logger: util.GetLogger("Runner").With().Str("run_id", runID).Logger(),
	}
}

// RunID identifies this runner in log output
func (r *Runner) RunID() string {
	return r.runID
}

// skip reports whether a trimmed line never reaches the executor
func (r *Runner) skip(line string) bool {
	if line == "" {
		return true
	}
	return r.cfg.CommentPrefix != "" && strings.HasPrefix(line, r.cfg.CommentPrefix)
}

// Run executes every line of src until it is exhausted.
//
// Command errors are written to the output as one line each and do not
// stop the run unless StopOnError is set, in which case the command error
// is returned. Read and write failures are always returned.
func (r *Runner) Run(src LineSource) (Stats, error) {
	var stats Stats
	r.logger.Debug().Msg("Run started")

	for {
		raw, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.logger.Error().Err(err).Int("line", stats.Lines+1).Msg("Failed to read command line")
			return stats, fmt.Errorf("read line %d: %w", stats.Lines+1, err)
		}
		stats.Lines++

		line := strings.TrimSpace(raw)
		if r.skip(line) {
			stats.Skipped++
			continue
		}

		if r.cfg.EchoCommands {
			if _, err := fmt.Fprintln(r.out, line); err != nil {
				return stats, err
			}
		}

		res, err := r.exec.Execute(line)
		if err != nil {
			stats.Failed++
			r.logger.Debug().Err(err).Int("line", stats.Lines).Str("command", line).Msg("Command failed")
			if _, werr := fmt.Fprintln(r.out, err.Error()); werr != nil {
				return stats, werr
			}
			if r.cfg.StopOnError {
				return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
			}
			continue
		}
		stats.Executed++
		r.logger.Trace().Str("command", line).Str("verb", res.Verb.String()).Msg("Command executed")

		if res.Listing != nil {
			if err := engine.RenderListing(r.out, res.Listing, r.cfg.ListIndent); err != nil {
				return stats, fmt.Errorf("write listing: %w", err)
			}
		}
	}

	r.logger.Info().
		Int("lines", stats.Lines).
		Int("skipped", stats.Skipped).
		Int("executed", stats.Executed).
		Int("failed", stats.Failed).
		Msg("Run finished")
	return stats, nil
}
