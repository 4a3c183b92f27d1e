package engine

import (
	"strings"

	"github.com/brettbedarf/dirtree/filesystem"
)

// Verb is the closed set of commands understood by the [Engine]
type Verb int

const (
	VerbUnknown Verb = iota
	VerbCreate
	VerbDelete
	VerbMove
	VerbList
)

var verbNames = map[string]Verb{
	"CREATE": VerbCreate,
	"DELETE": VerbDelete,
	"MOVE":   VerbMove,
	"LIST":   VerbList,
}

// ParseVerb decodes a case-sensitive verb token. Anything unrecognised is VerbUnknown.
func ParseVerb(token string) Verb {
	return verbNames[token]
}

func (v Verb) String() string {
	switch v {
	case VerbCreate:
		return "CREATE"
	case VerbDelete:
		return "DELETE"
	case VerbMove:
		return "MOVE"
	case VerbList:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// Operands is the number of path operands the verb takes, or -1 for VerbUnknown
func (v Verb) Operands() int {
	switch v {
	case VerbCreate, VerbDelete:
		return 1
	case VerbMove:
		return 2
	case VerbList:
		return 0
	default:
		return -1
	}
}

// Command is one parsed command line
type Command struct {
	Verb  Verb
	Paths []filesystem.Path
	Raw   string // whitespace-normalised command text
}

// ParseCommand splits line on whitespace, decodes the verb and checks the
// operand count. It never touches a tree.
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	raw := strings.Join(fields, " ")
	if len(fields) == 0 {
		return nil, &UnknownCommandError{Command: raw}
	}

	verb := ParseVerb(fields[0])
	if verb == VerbUnknown {
		return nil, &UnknownCommandError{Command: raw}
	}

	operands := fields[1:]
	if len(operands) != verb.Operands() {
		return nil, &ParamCountError{
			Verb:     verb,
			Expected: verb.Operands(),
			Got:      len(operands),
			Command:  raw,
		}
	}

	cmd := &Command{Verb: verb, Raw: raw, Paths: make([]filesystem.Path, 0, len(operands))}
	for _, op := range operands {
		cmd.Paths = append(cmd.Paths, filesystem.ParsePath(op))
	}
	return cmd, nil
}
