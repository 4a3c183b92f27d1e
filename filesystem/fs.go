package filesystem

import (
	"fmt"
	"iter"

	"github.com/brettbedarf/dirtree/config"
)

// Operation names used in errors
const (
	OpCreate = "create"
	OpDelete = "delete"
	OpMove   = "move"
)

// FileSystem owns the root of a node tree and applies the structural
// operations to it. It keeps no global state, so independent trees can
// coexist.
//
// NOTE: FileSystem is not safe for concurrent mutation.
type FileSystem struct {
	cfg  *config.Config
	root *Node // Root of node tree; unnamed and never addressed by path
}

// NewFS creates an empty tree. A nil cfg uses [config.NewDefaultConfig].
func NewFS(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &FileSystem{cfg: cfg, root: NewNode()}
}

// Root returns the root node
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Resolve returns the node at path or a *MissingError naming the first
// unresolved prefix.
func (fs *FileSystem) Resolve(path Path) (*Node, error) {
	return fs.resolve("resolve", path, path)
}

// resolve walks target from root and reports failures against full
func (fs *FileSystem) resolve(op string, full, target Path) (*Node, error) {
	node, matched, ok := fs.root.Resolve(target)
	if !ok {
		return nil, &MissingError{
			Op:      op,
			Path:    full.String(),
			Missing: target[:len(matched)+1].String(),
		}
	}
	return node, nil
}

func validate(op string, path Path) error {
	if reason := path.Validate(); reason != "" {
		return &InvalidPathError{Op: op, Path: path.String(), Reason: reason}
	}
	return nil
}

// Create inserts an empty directory at path.
//
// The parent must already exist unless the config enables
// AutoCreateParents, in which case missing ancestors are created like
// `mkdir -p`. Either way it fails with an *ExistsError if path is taken.
func (fs *FileSystem) Create(path Path) error {
	if err := validate(OpCreate, path); err != nil {
		return err
	}
	parentPath, name := path.Split()

	if fs.cfg.AutoCreateParents {
		return fs.createAll(path)
	}

	parent, err := fs.resolve(OpCreate, path, parentPath)
	if err != nil {
		return err
	}
	if _, err := parent.InsertChild(name); err != nil {
		return &ExistsError{Op: OpCreate, Path: path.String()}
	}
	return nil
}

// createAll creates every missing segment of path. If the whole path
// already resolves nothing is touched.
func (fs *FileSystem) createAll(path Path) error {
	_, matched, ok := fs.root.Resolve(path)
	if ok {
		return &ExistsError{Op: OpCreate, Path: path.String()}
	}
	cur, _, _ := fs.root.Resolve(matched)
	for _, name := range path[len(matched):] {
		child, err := cur.InsertChild(name)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		cur = child
	}
	return nil
}

// Delete removes the directory at path together with its entire subtree.
// Non-empty directories are removed without confirmation.
func (fs *FileSystem) Delete(path Path) error {
	if err := validate(OpDelete, path); err != nil {
		return err
	}
	parentPath, name := path.Split()

	parent, err := fs.resolve(OpDelete, path, parentPath)
	if err != nil {
		return err
	}
	if _, err := parent.RemoveChild(name); err != nil {
		return &MissingError{Op: OpDelete, Path: path.String(), Missing: path.String()}
	}
	return nil
}

// movePlan holds everything a move needs once it has been validated
type movePlan struct {
	srcParent *Node
	srcName   string
	dstParent *Node
	dstName   string
}

// Move re-parents the subtree at src so it ends up at dst, keeping its
// contents. Both endpoints are validated before anything is detached, so a
// failed move leaves the tree unchanged.
func (fs *FileSystem) Move(src, dst Path) error {
	plan, err := fs.planMove(src, dst)
	if err != nil {
		return err
	}
	return fs.commitMove(plan, dst)
}

func (fs *FileSystem) planMove(src, dst Path) (*movePlan, error) {
	if err := validate(OpMove, src); err != nil {
		return nil, err
	}
	if err := validate(OpMove, dst); err != nil {
		return nil, err
	}

	srcParentPath, srcName := src.Split()
	srcParent, err := fs.resolve(OpMove, src, srcParentPath)
	if err != nil {
		return nil, err
	}
	if !srcParent.HasChild(srcName) {
		return nil, &MissingError{Op: OpMove, Path: src.String(), Missing: src.String()}
	}

	dstParentPath, dstName := dst.Split()
	dstParent, err := fs.resolve(OpMove, dst, dstParentPath)
	if err != nil {
		return nil, err
	}
	if dstParent.HasChild(dstName) {
		return nil, &ExistsError{Op: OpMove, Path: dst.String()}
	}
	// The destination parent resolved and dst itself is free, so dst can only
	// be inside src when src is a strict prefix of it.
	if dst.HasPrefix(src) {
		return nil, &InvalidPathError{
			Op:     OpMove,
			Path:   src.String(),
			Reason: fmt.Sprintf("destination %s is inside %s", dst, src),
		}
	}

	return &movePlan{
		srcParent: srcParent,
		srcName:   srcName,
		dstParent: dstParent,
		dstName:   dstName,
	}, nil
}

func (fs *FileSystem) commitMove(plan *movePlan, dst Path) error {
	node, err := plan.srcParent.RemoveChild(plan.srcName)
	if err != nil {
		return fmt.Errorf("move detach %s: %w", plan.srcName, err)
	}
	if err := plan.dstParent.AttachChild(plan.dstName, node); err != nil {
		// restore so the failed move stays invisible
		_ = plan.srcParent.AttachChild(plan.srcName, node)
		return &ExistsError{Op: OpMove, Path: dst.String()}
	}
	return nil
}

// List returns a lazy depth-first, pre-order listing of the whole tree.
// Children are visited in lexicographic order and the root is not listed.
func (fs *FileSystem) List() iter.Seq[Entry] {
	return fs.root.Walk()
}

// Snapshot returns a structural copy of the whole tree
func (fs *FileSystem) Snapshot() Snapshot {
	return fs.root.Snapshot("")
}
