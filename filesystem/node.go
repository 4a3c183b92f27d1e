package filesystem

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// Node is one directory in the tree. It exclusively owns its children and
// keeps no reference to its parent, so the tree is only navigated top-down.
type Node struct {
	children *xsync.Map[string, *Node] // thread-safe map of child nodes by name
}

// Child pairs a child node with the name it is stored under
type Child struct {
	Name string
	Node *Node
}

// Entry is one record of a listing
type Entry struct {
	Name  string
	Depth int // 1 for children of the node the walk started from
}

// NewNode creates an empty, detached Node
func NewNode() *Node {
	return &Node{
		children: xsync.NewMap[string, *Node](),
	}
}

// Resolve walks path from n following child lookups.
// On success it returns the node and ok=true. Otherwise it returns the
// prefix of path that was actually matched.
func (n *Node) Resolve(path Path) (node *Node, matched Path, ok bool) {
	cur := n
	for i, name := range path {
		child, found := cur.children.Load(name)
		if !found {
			return nil, path[:i], false
		}
		cur = child
	}
	return cur, path, true
}

// GetChild returns a direct child by name
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	return n.children.Load(name)
}

func (n *Node) HasChild(name string) bool {
	_, ok := n.children.Load(name)
	return ok
}

// Len returns the number of direct children
func (n *Node) Len() int {
	return n.children.Size()
}

// InsertChild adds a new empty child under name and returns it.
// Returns ErrNameInUse if the name is taken.
func (n *Node) InsertChild(name string) (*Node, error) {
	child := NewNode()
	if err := n.AttachChild(name, child); err != nil {
		return nil, err
	}
	return child, nil
}

// AttachChild stores an existing subtree under name.
// Returns ErrNameInUse if the name is taken.
func (n *Node) AttachChild(name string, child *Node) error {
	if _, loaded := n.children.LoadOrStore(name, child); loaded {
		return fmt.Errorf("%q: %w", name, ErrNameInUse)
	}
	return nil
}

// RemoveChild detaches the child stored under name and returns it together
// with its whole subtree.
func (n *Node) RemoveChild(name string) (*Node, error) {
	child, ok := n.children.LoadAndDelete(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoChild)
	}
	return child, nil
}

// SortedChildren returns the direct children ordered lexicographically by name
func (n *Node) SortedChildren() []Child {
	children := make([]Child, 0, n.children.Size())
	n.children.Range(func(name string, ch *Node) bool {
		children = append(children, Child{Name: name, Node: ch})
		return true
	})
	slices.SortFunc(children, func(a, b Child) int {
		return strings.Compare(a.Name, b.Name)
	})
	return children
}

// Walk returns a lazy depth-first, pre-order traversal of n's descendants.
// Siblings are visited in lexicographic order and n itself is not yielded.
// Each level is sorted when the walk reaches it, so the sequence reflects
// the tree as it is while being consumed.
func (n *Node) Walk() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		n.walk(1, yield)
	}
}

func (n *Node) walk(depth int, yield func(Entry) bool) bool {
	for _, ch := range n.SortedChildren() {
		if !yield(Entry{Name: ch.Name, Depth: depth}) {
			return false
		}
		if !ch.Node.walk(depth+1, yield) {
			return false
		}
	}
	return true
}

// Snapshot is a structural copy of a subtree, children sorted by name
type Snapshot struct {
	Name     string
	Children []Snapshot
}

// Snapshot copies the structure of n, recording it under name
func (n *Node) Snapshot(name string) Snapshot {
	snap := Snapshot{Name: name}
	for _, ch := range n.SortedChildren() {
		snap.Children = append(snap.Children, ch.Node.Snapshot(ch.Name))
	}
	return snap
}
