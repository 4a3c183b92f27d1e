package engine

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/brettbedarf/dirtree/filesystem"
)

// RenderListing writes one line per entry, indented by indent spaces for
// every depth level below the top. Top level entries are not indented.
func RenderListing(w io.Writer, entries iter.Seq[filesystem.Entry], indent int) error {
	bw := bufio.NewWriter(w)
	for e := range entries {
		bw.WriteString(strings.Repeat(" ", indent*max(e.Depth-1, 0)))
		bw.WriteString(e.Name)
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
